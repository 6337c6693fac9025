//go:build unit

package handler_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"library-service/internal/domain/staff"
	"library-service/internal/handler"
	"library-service/internal/handler/api"
	"library-service/internal/handler/middleware"
	"library-service/internal/pkg/config"
	"library-service/internal/pkg/cookie"
	"library-service/internal/pkg/jwt"
	"library-service/internal/usecase/readmodel"
	"library-service/tests/common/builder"
	"library-service/tests/common/httptest"
	usecasemock "library-service/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockValidator  *usecasemock.MockTokenValidator
	mockLibraries  *usecasemock.MockLibraryService
	mockCheckables *usecasemock.MockCheckableService
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockLibraries = usecasemock.NewMockLibraryService(s.mockCtrl)
	s.mockCheckables = usecasemock.NewMockCheckableService(s.mockCtrl)
	mockAuth := usecasemock.NewMockAuthUseCase(s.mockCtrl)

	cfg := config.NewTestConfig()
	h := handler.NewHandlers(
		api.NewAuthHandler(mockAuth, cfg, jwt.NewService(cfg.JWT.Secret, time.Hour)),
		api.NewCheckableHandler(s.mockCheckables, s.mockLibraries),
		api.NewLibraryHandler(s.mockLibraries, s.mockCheckables),
	)
	s.Require().NoError(handler.NewRouter(s.router, cfg, h, middleware.NewAuthMiddleware(s.mockValidator)))
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
}

func (s *RouterTestSuite) TestCORSAllowedOrigin() {
	req := nethttptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Credentials": "true",
	})
}

func (s *RouterTestSuite) TestReadsArePublic() {
	s.mockCheckables.EXPECT().GetAll(gomock.Any()).Return(builder.Catalogue(s.T()), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkables", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestWritesRequireAuth() {
	protected := []struct {
		method string
		path   string
		body   any
	}{
		{method: http.MethodPost, path: "/api/checkables", body: builder.NewCheckableBuilder().BuildDTO()},
		{method: http.MethodPost, path: "/api/libraries", body: builder.NewLibraryBuilder("Eastside").BuildDTO()},
		{method: http.MethodGet, path: "/api/libraries/Eastside/overdue-checkouts"},
	}

	for _, p := range protected {
		s.Run("missing token: "+p.method+" "+p.path, func() {
			rec := httptest.PerformRequest(s.T(), s.router, p.method, p.path, p.body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
		})

		s.Run("invalid token: "+p.method+" "+p.path, func() {
			s.mockValidator.EXPECT().ValidateToken("bad").Return(uuid.Nil, staff.Role(""), errors.New("invalid"))

			rec := httptest.PerformRequest(s.T(), s.router, p.method, p.path, p.body, "bad")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
		})
	}
}

func (s *RouterTestSuite) TestBearerTokenReachesHandler() {
	s.mockValidator.EXPECT().ValidateToken("good").Return(uuid.New(), staff.RoleLibrarian, nil)
	s.mockLibraries.EXPECT().GetOverdueCheckouts(gomock.Any(), "Eastside").Return([]readmodel.OverdueCheckout{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/libraries/Eastside/overdue-checkouts", nil, "good")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestCookieTokenReachesHandler() {
	s.mockValidator.EXPECT().ValidateToken("from-cookie").Return(uuid.New(), staff.RoleAdmin, nil)
	s.mockLibraries.EXPECT().GetOverdueCheckouts(gomock.Any(), "Eastside").Return([]readmodel.OverdueCheckout{}, nil)

	cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}
	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/libraries/Eastside/overdue-checkouts", nil, cookies, "")
	s.Equal(http.StatusOK, rec.Code)
}
