package components

import (
	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewFactory,
		usecase.NewAuthUseCase,
		usecase.NewSpaceUseCase,
		usecase.NewBookingUseCase,
		usecase.NewTokenValidator,
	),
)
