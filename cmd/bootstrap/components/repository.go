package components

import (
	repo_impl "space-booking-api/internal/infra/repository"
	"space-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewSpaceRepository,
			fx.As(new(usecase.SpaceRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewBlockRepository,
			fx.As(new(usecase.BlockRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
	),
)
