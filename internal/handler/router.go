package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tutor-booking/internal/handler/api"
	"tutor-booking/internal/handler/middleware"
	"tutor-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Admin   *api.AdminHandler
	Health  *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := middleware.RegisterBookingValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: h.Health.Check},
			{Method: http.MethodGet, Path: "/price", Handler: h.Booking.Price},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Submit},
			{Method: http.MethodPost, Path: "/checkout-sessions", Handler: h.Payment.CreateCheckout},
			{Method: http.MethodPost, Path: "/checkout-sessions/:id/confirm", Handler: h.Payment.Confirm},
			{Method: http.MethodGet, Path: "/verify-session", Handler: h.Payment.Verify},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Payment.Webhook},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/reconcile", Handler: h.Admin.Reconcile},
				{Method: http.MethodGet, Path: "/locks", Handler: h.Admin.Locks},
				{Method: http.MethodPost, Path: "/locks/sweep", Handler: h.Admin.SweepLocks},
				{Method: http.MethodGet, Path: "/snapshots", Handler: h.Admin.Snapshots},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
