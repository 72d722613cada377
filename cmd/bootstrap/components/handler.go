package components

import (
	"space-booking-api/internal/handler"
	"space-booking-api/internal/handler/api"
	"space-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpaceHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
