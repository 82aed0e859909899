package components

import (
	"tutor-booking/internal/handler"
	"tutor-booking/internal/handler/api"
	"tutor-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	admin *api.AdminHandler,
	health *api.HealthHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking: booking,
		Payment: payment,
		Admin:   admin,
		Health:  health,
	}
}
