package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/config"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/readmodel"
	"space-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("time slot conflict")
	ErrBookingForbidden = errors.New("booking belongs to another user")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*readmodel.BookingListRM, error)
	FindWindowsBySpace(ctx context.Context, spaceID uuid.UUID) ([]booking.ReservationWindow, error)
	FindWindowsBySpaceTx(ctx context.Context, tx pgx.Tx, spaceID uuid.UUID) ([]booking.ReservationWindow, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.ReservationStatus) error
	LockSpace(ctx context.Context, tx pgx.Tx, spaceID uuid.UUID) error
}

type CreateBookingParams struct {
	SpaceID    uuid.UUID
	GuestID    uuid.UUID
	Start      time.Time
	End        time.Time
	Guests     int
	CouponCode *string
	Note       *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*readmodel.BookingRM, error)
	GetUserBookings(ctx context.Context, guestID uuid.UUID) ([]*readmodel.BookingListRM, error)
	CancelBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	spaceRepo   SpaceRepository
	blockRepo   BlockRepository
	couponRepo  CouponRepository
	factory     *booking.Factory
	pricing     config.PricingConfig
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	blockRepo BlockRepository,
	couponRepo CouponRepository,
	factory *booking.Factory,
	cfg config.Config,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		spaceRepo:   spaceRepo,
		blockRepo:   blockRepo,
		couponRepo:  couponRepo,
		factory:     factory,
		pricing:     cfg.Pricing,
		db:          db,
		clock:       clock,
	}
}

// CreateBooking books a space. The availability re-check and the insert run
// in one transaction holding a per-space advisory lock, so two concurrent
// requests for the same space serialize and the loser sees the winner's row.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	spaceRM, err := b.findSpace(ctx, params.SpaceID)
	if err != nil {
		return nil, err
	}

	coupons, couponID, err := resolveCouponSnapshots(ctx, b.couponRepo, b.clock, params.CouponCode, params.SpaceID)
	if err != nil {
		return nil, err
	}

	blocks, err := b.blockRepo.FindBySpace(ctx, params.SpaceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load blocked periods")
	}

	interval, err := booking.NewInterval(params.Start, params.End)
	if err != nil {
		return nil, ErrInvalidInterval
	}

	note := ""
	if params.Note != nil {
		note = strings.TrimSpace(*params.Note)
	}

	return shared.RunInTx(ctx, b.db, func(tx pgx.Tx) (*readmodel.BookingRM, error) {
		if lockErr := b.bookingRepo.LockSpace(ctx, tx, params.SpaceID); lockErr != nil {
			return nil, errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		existing, txErr := b.bookingRepo.FindWindowsBySpaceTx(ctx, tx, params.SpaceID)
		if txErr != nil {
			return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		bookingEntity, createErr := b.factory.CreateBooking(
			booking.SpaceSpec{
				ID:           spaceRM.ID,
				MaxGuests:    spaceRM.MaxGuests,
				Rates:        spaceRM.RateSheet(),
				Policy:       spaceRM.Policy(),
				ExtraCharges: spaceRM.ExtraCharges,
			},
			params.GuestID,
			interval,
			params.Guests,
			existing,
			blocks,
			couponID,
			booking.QuoteContext{
				BuyerFees:  b.pricing.BuyerFees,
				SellerFees: b.pricing.SellerFees,
				TaxPercent: b.pricing.TaxPercent,
				Coupons:    coupons,
			},
			note,
		)
		if createErr != nil {
			var rejection *booking.Rejection
			if errors.As(createErr, &rejection) {
				return nil, rejection
			}
			return nil, errs.Mark(createErr, ErrDomainValidationFailed)
		}

		bookingRM, insertErr := b.bookingRepo.Create(ctx, tx, bookingEntity)
		if insertErr != nil {
			if infra.IsKind(insertErr, infra.KindConflict) {
				return nil, ErrBookingConflict
			}
			return nil, errs.Mark(insertErr, ErrDatabaseOperationFailed)
		}

		return bookingRM, nil
	})
}

func (b *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*readmodel.BookingRM, error) {
	bookingRM, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if bookingRM.GuestID != requesterID {
		return nil, ErrBookingForbidden
	}

	return bookingRM, nil
}

func (b *bookingUseCaseImpl) GetUserBookings(ctx context.Context, guestID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	bookings, err := b.bookingRepo.FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user bookings")
	}

	return bookings, nil
}

func (b *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	bookingRM, err := b.GetBooking(ctx, id, requesterID)
	if err != nil {
		return err
	}

	interval, err := booking.NewInterval(bookingRM.Start, bookingRM.End)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	entity := booking.ReconstructBooking(
		bookingRM.ID,
		bookingRM.SpaceID,
		bookingRM.GuestID,
		interval,
		booking.ReservationStatus(bookingRM.Status),
		bookingRM.Guests,
		bookingRM.CouponID,
		bookingRM.Price,
		"",
		bookingRM.CreatedAt,
		bookingRM.UpdatedAt,
	)

	if err := entity.Cancel(b.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	_, err = shared.RunInTx(ctx, b.db, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, b.bookingRepo.UpdateStatus(ctx, tx, entity.ID(), entity.Status())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (b *bookingUseCaseImpl) findSpace(ctx context.Context, id uuid.UUID) (*readmodel.SpaceRM, error) {
	spaceRM, err := b.spaceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Wrap(err, "failed to find space")
	}
	return spaceRM, nil
}
