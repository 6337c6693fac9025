//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"library-service/internal/domain/checkable"
	"library-service/internal/domain/library"
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

type LibraryHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockLibraries  *usecasemock.MockLibraryService
	mockCheckables *usecasemock.MockCheckableService
	whale          checkable.Checkable
}

func (s *LibraryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLibraries = usecasemock.NewMockLibraryService(s.mockCtrl)
	s.mockCheckables = usecasemock.NewMockCheckableService(s.mockCtrl)
	h := api.NewLibraryHandler(s.mockLibraries, s.mockCheckables)
	s.whale = builder.NewCheckableBuilder().Build(s.T())

	s.router.GET("/libraries", h.List)
	s.router.POST("/libraries", h.Create)
	s.router.GET("/libraries/:name", h.Get)
	s.router.GET("/libraries/:name/checkables/:isbn", h.CheckableAmount)
	s.router.GET("/libraries/:name/overdue-checkouts", h.OverdueCheckouts)
}

func (s *LibraryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLibraryHandlerSuite(t *testing.T) {
	suite.Run(t, new(LibraryHandlerTestSuite))
}

func (s *LibraryHandlerTestSuite) TestList() {
	s.Run("success: empty stock renders as empty arrays", func() {
		lib := builder.NewLibraryBuilder("Eastside").Build(s.T())
		s.mockLibraries.EXPECT().GetLibraries(gomock.Any()).Return([]*library.Library{lib}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{"name":"Eastside","checkables":[],"cards":[]}]`, rec.Body.String())
	})
}

func (s *LibraryHandlerTestSuite) TestGet() {
	s.Run("success: nested aggregate", func() {
		due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		lib := builder.NewLibraryBuilder("Eastside").
			WithStock(s.whale, 3).
			WithCard("Ada", s.whale, due).
			Build(s.T())
		s.mockLibraries.EXPECT().GetLibraryByName(gomock.Any(), "Eastside").Return(lib, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Eastside", nil, "")

		var res resdto.LibraryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Eastside", res.Name)
		s.Require().Len(res.Checkables, 1)
		s.Equal(3, res.Checkables[0].Amount)
		s.Require().Len(res.Cards, 1)
		s.Equal("Ada", res.Cards[0].Patron.Name)
		s.Require().Len(res.Cards[0].Checkouts, 1)
		s.True(res.Cards[0].Checkouts[0].DueDate.Equal(due))
	})

	s.Run("error: not found uses the exact message", func() {
		notFound := errs.Newf(errs.ErrLibraryNotFound, "Library with the name: %s was not found", "Nowhere")
		s.mockLibraries.EXPECT().GetLibraryByName(gomock.Any(), "Nowhere").Return(nil, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Nowhere", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Library with the name: Nowhere was not found")
	})
}

func (s *LibraryHandlerTestSuite) TestCreate() {
	url := "/libraries"
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := builder.NewLibraryBuilder("Eastside").WithStock(s.whale, 2).WithCard("Ada", s.whale, due)
	want := b.Build(s.T())
	reqBody := b.BuildDTO()

	s.Run("success: resolves isbns and saves the aggregate", func() {
		s.mockCheckables.EXPECT().GetByISBN(gomock.Any(), "1-0").Return(s.whale, nil).Times(2)
		s.mockLibraries.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lib *library.Library) error {
				s.True(want.Equal(lib), "saved library differs from payload")
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LibraryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(resdto.FromLibrary(want).Name, res.Name)
		s.Equal(want.Cards()[0].ID(), res.Cards[0].ID)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "empty name", mutate: testutil.Field("name", "")},
			{name: "negative amount", mutate: testutil.Field("checkables", []map[string]any{{"isbn": "1-0", "amount": -1}})},
			{name: "missing amount", mutate: testutil.Field("checkables", []map[string]any{{"isbn": "1-0"}})},
			{name: "patron without name", mutate: testutil.Field("cards", []map[string]any{{"patron": map[string]any{}}})},
			{name: "bad patron email", mutate: testutil.Field("cards", []map[string]any{{"patron": map[string]any{"name": "Ada", "email": "nope"}}})},
			{name: "checkout without due date", mutate: testutil.Field("cards", []map[string]any{{
				"patron":    map[string]any{"name": "Ada"},
				"checkouts": []map[string]any{{"isbn": "1-0"}},
			}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unknown isbn is a 404", func() {
		notFound := errs.Newf(errs.ErrCheckableNotFound, "Checkable with isbn: %s was not found", "1-0")
		s.mockCheckables.EXPECT().GetByISBN(gomock.Any(), "1-0").Return(checkable.Checkable{}, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Checkable with isbn: 1-0 was not found")
	})

	s.Run("error: existing name is a 409", func() {
		s.mockCheckables.EXPECT().GetByISBN(gomock.Any(), "1-0").Return(s.whale, nil).Times(2)
		exists := errs.Newf(errs.ErrResourceExists, "Library with name: %s already exists!", "Eastside")
		s.mockLibraries.EXPECT().Save(gomock.Any(), gomock.Any()).Return(exists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Library with name: Eastside already exists!")
	})
}

func (s *LibraryHandlerTestSuite) TestCheckableAmount() {
	s.Run("success: unstocked checkable reports zero", func() {
		zero, err := library.NewCheckableAmount(s.whale, 0)
		s.Require().NoError(err)
		s.mockLibraries.EXPECT().GetCheckableAmount(gomock.Any(), "Eastside", "1-0").Return(zero, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Eastside/checkables/1-0", nil, "")

		var res resdto.CheckableAmountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(0, res.Amount)
		s.Equal("1-0", res.Checkable.ISBN)
	})

	s.Run("error: unknown library", func() {
		notFound := errs.Newf(errs.ErrLibraryNotFound, "Library with the name: %s was not found", "Nowhere")
		s.mockLibraries.EXPECT().GetCheckableAmount(gomock.Any(), "Nowhere", "1-0").Return(library.CheckableAmount{}, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Nowhere/checkables/1-0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Library with the name: Nowhere was not found")
	})
}

func (s *LibraryHandlerTestSuite) TestOverdueCheckouts() {
	s.Run("success", func() {
		due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		lib := builder.NewLibraryBuilder("Eastside").WithCard("Ada", s.whale, due).Build(s.T())
		card := lib.Cards()[0]
		s.mockLibraries.EXPECT().GetOverdueCheckouts(gomock.Any(), "Eastside").
			Return([]readmodel.OverdueCheckout{{Patron: card.Patron(), Checkout: card.Checkouts()[0]}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Eastside/overdue-checkouts", nil, "")

		var res []resdto.OverdueCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal("Ada", res[0].Patron.Name)
		s.Equal(card.Checkouts()[0].ID(), res[0].Checkout.ID)
	})

	s.Run("success: none overdue is an empty array", func() {
		s.mockLibraries.EXPECT().GetOverdueCheckouts(gomock.Any(), "Eastside").Return([]readmodel.OverdueCheckout{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/libraries/Eastside/overdue-checkouts", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}
