package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-service/internal/handler/api"
	reqdto "library-service/internal/handler/dto/request"
	"library-service/internal/handler/middleware"
	"library-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Checkable *api.CheckableHandler
	Library   *api.LibraryHandler
}

func NewHandlers(auth *api.AuthHandler, checkables *api.CheckableHandler, libraries *api.LibraryHandler) Handlers {
	return Handlers{Auth: auth, Checkable: checkables, Library: libraries}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		addRoutes(apiGroup.Group("/checkables"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Checkable.List},
			{Method: http.MethodPost, Path: "", Handler: h.Checkable.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:isbn", Handler: h.Checkable.Get},
			{Method: http.MethodGet, Path: "/:isbn/availability", Handler: h.Checkable.Availability},
		})

		addRoutes(apiGroup.Group("/kinds"), []route{
			{Method: http.MethodGet, Path: "/:kind/checkable", Handler: h.Checkable.GetByKind},
		})

		addRoutes(apiGroup.Group("/libraries"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Library.List},
			{Method: http.MethodPost, Path: "", Handler: h.Library.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Library.Get},
			{Method: http.MethodGet, Path: "/:name/checkables/:isbn", Handler: h.Library.CheckableAmount},
			{Method: http.MethodGet, Path: "/:name/overdue-checkouts", Handler: h.Library.OverdueCheckouts, Mw: requireAuth},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
