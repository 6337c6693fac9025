//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"library-service/internal/domain/checkable"
	"library-service/internal/handler/api"
	reqdto "library-service/internal/handler/dto/request"
	resdto "library-service/internal/handler/dto/response"
	"library-service/internal/handler/middleware"
	"library-service/internal/pkg/errs"
	"library-service/internal/usecase/readmodel"
	"library-service/tests/common/builder"
	"library-service/tests/common/httptest"
	"library-service/tests/common/testutil"
	usecasemock "library-service/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckableHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCheckables *usecasemock.MockCheckableService
	mockLibraries  *usecasemock.MockLibraryService
}

func (s *CheckableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckables = usecasemock.NewMockCheckableService(s.mockCtrl)
	s.mockLibraries = usecasemock.NewMockLibraryService(s.mockCtrl)
	h := api.NewCheckableHandler(s.mockCheckables, s.mockLibraries)

	s.router.GET("/checkables", h.List)
	s.router.POST("/checkables", h.Create)
	s.router.GET("/checkables/:isbn", h.Get)
	s.router.GET("/checkables/:isbn/availability", h.Availability)
	s.router.GET("/kinds/:kind/checkable", h.GetByKind)
}

func (s *CheckableHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckableHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckableHandlerTestSuite))
}

func (s *CheckableHandlerTestSuite) TestList() {
	s.Run("success: returns catalogue in order", func() {
		catalogue := builder.Catalogue(s.T())
		s.mockCheckables.EXPECT().GetAll(gomock.Any()).Return(catalogue, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables", nil, "")

		var res []resdto.CheckableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 8)
		s.Equal("1-0", res[0].ISBN)
		s.Equal("BOOK", res[0].MediaType)
		s.Equal("science_kit", res[4].Kind)
		s.Empty(res[4].Author)
	})

	s.Run("error: store failure is a 500", func() {
		s.mockCheckables.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CheckableHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		c := builder.NewCheckableBuilder().Build(s.T())
		s.mockCheckables.EXPECT().GetByISBN(gomock.Any(), "1-0").Return(c, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables/1-0", nil, "")

		var res resdto.CheckableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.FromCheckable(c), res)
	})

	s.Run("error: not found carries the lookup message", func() {
		notFound := errs.Newf(errs.ErrCheckableNotFound, "Checkable with isbn: %s was not found", "9-9")
		s.mockCheckables.EXPECT().GetByISBN(gomock.Any(), "9-9").Return(checkable.Checkable{}, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables/9-9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Checkable with isbn: 9-9 was not found")
	})
}

func (s *CheckableHandlerTestSuite) TestGetByKind() {
	s.Run("success: kind is parsed case-insensitively", func() {
		kit := builder.NewCheckableBuilder().AsScienceKit().WithISBN("2-0").WithTitle("Anatomy Model").Build(s.T())
		s.mockCheckables.EXPECT().GetByKind(gomock.Any(), checkable.KindScienceKit).Return(kit, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/kinds/SCIENCE_KIT/checkable", nil, "")

		var res resdto.CheckableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("2-0", res.ISBN)
	})

	s.Run("error: unknown kind is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/kinds/vinyl/checkable", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid kind")
	})

	s.Run("error: no checkable of kind", func() {
		notFound := errs.Newf(errs.ErrCheckableNotFound, "Checkable of kind: %s was not found", checkable.KindTicket)
		s.mockCheckables.EXPECT().GetByKind(gomock.Any(), checkable.KindTicket).Return(checkable.Checkable{}, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/kinds/ticket/checkable", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Checkable of kind: ticket was not found")
	})
}

func (s *CheckableHandlerTestSuite) TestCreate() {
	url := "/checkables"
	reqBody := builder.NewCheckableBuilder().BuildDTO()

	s.Run("success: returns 201", func() {
		want := builder.NewCheckableBuilder().Build(s.T())
		s.mockCheckables.EXPECT().Save(gomock.Any(), want).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.CheckableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("The White Whale", res.Title)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing kind", mutate: testutil.Field("kind", nil)},
			{name: "unknown kind", mutate: testutil.Field("kind", "vinyl")},
			{name: "missing isbn", mutate: testutil.Field("isbn", nil)},
			{name: "isbn too long", mutate: testutil.Field("isbn", strings.Repeat("1", 65))},
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "unknown media type", mutate: testutil.Field("media_type", "VINYL")},
			{name: "media without media type", mutate: testutil.Field("media_type", nil)},
			{name: "ticket with author", mutate: testutil.Field("kind", "ticket")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: duplicate isbn is a 409", func() {
		exists := errs.Newf(errs.ErrResourceExists, "Checkable with isbn: %s already exists!", "1-0")
		s.mockCheckables.EXPECT().Save(gomock.Any(), gomock.Any()).Return(exists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Checkable with isbn: 1-0 already exists!")
	})
}

func (s *CheckableHandlerTestSuite) TestAvailability() {
	s.Run("success: libraries in order", func() {
		s.mockLibraries.EXPECT().GetLibrariesWithAvailableCheckout(gomock.Any(), "1-0").
			Return([]readmodel.LibraryAvailableCheckouts{
				{Amount: 2, LibraryName: "Eastside"},
				{Amount: 5, LibraryName: "Westside"},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables/1-0/availability", nil, "")

		var res []resdto.LibraryAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]resdto.LibraryAvailabilityResponse{
			{LibraryName: "Eastside", Amount: 2},
			{LibraryName: "Westside", Amount: 5},
		}, res)
	})

	s.Run("success: none available is an empty array", func() {
		s.mockLibraries.EXPECT().GetLibrariesWithAvailableCheckout(gomock.Any(), "3-1").
			Return([]readmodel.LibraryAvailableCheckouts{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables/3-1/availability", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: unknown isbn", func() {
		notFound := errs.Newf(errs.ErrCheckableNotFound, "Checkable with isbn: %s was not found", "9-9")
		s.mockLibraries.EXPECT().GetLibrariesWithAvailableCheckout(gomock.Any(), "9-9").Return(nil, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkables/9-9/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "was not found")
	})
}
