package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Reservation     *api.ReservationHandler
	ReservationTime *api.ReservationTimeHandler
	Theme           *api.ThemeHandler
	Member          *api.MemberHandler
}

func NewHandlers(
	reservation *api.ReservationHandler,
	reservationTime *api.ReservationTimeHandler,
	theme *api.ThemeHandler,
	member *api.MemberHandler,
) Handlers {
	return Handlers{
		Reservation:     reservation,
		ReservationTime: reservationTime,
		Theme:           theme,
		Member:          member,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group("/reservations"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Reservation.FindAll},
		{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
	})

	addRoutes(engine.Group("/times"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.ReservationTime.FindAll},
		{Method: http.MethodPost, Path: "", Handler: h.ReservationTime.Create},
		{Method: http.MethodGet, Path: "/available", Handler: h.ReservationTime.FindAvailable},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.ReservationTime.Delete},
	})

	addRoutes(engine.Group("/themes"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Theme.FindAll},
		{Method: http.MethodPost, Path: "", Handler: h.Theme.Create},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Theme.Delete},
	})

	addRoutes(engine.Group("/members"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Member.FindAll},
		{Method: http.MethodPost, Path: "", Handler: h.Member.SignUp},
	})
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
