package api

import (
	"net/http"

	reqdto "library-service/internal/handler/dto/request"
	resdto "library-service/internal/handler/dto/response"
	"library-service/internal/handler/httperr"
	"library-service/internal/pkg/config"
	"library-service/internal/pkg/cookie"
	"library-service/internal/pkg/jwt"
	"library-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	jwtService  *jwt.Service
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
		jwtService:  jwtService,
	}
}

// @Summary Staff login
// @Description Login with username and password. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}

	res, err := resdto.FromLoginResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, res)
}

// @Summary Staff logout
// @Description Clears the access token cookie. Tokens are stateless and stay valid until they expire.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
