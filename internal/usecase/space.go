package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/domain/coupon"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/config"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrSpaceNotFound   = errors.New("space not found")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrInvalidCoupon   = errors.New("invalid or expired coupon")
	ErrInvalidInterval = errors.New("invalid time interval")
	ErrBookingInPast   = errors.New("selected times are in the past")
)

type SpaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SpaceRM, error)
}

type BlockRepository interface {
	FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]booking.Block, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*readmodel.CouponRM, error)
}

// VerifyParams is one availability-and-price probe against a space.
type VerifyParams struct {
	Start      time.Time
	End        time.Time
	Guests     int
	CouponCode *string
}

// QuoteResult is the outcome of a probe: either a rejection reason or a
// full price breakdown.
type QuoteResult struct {
	Available bool                    `json:"available"`
	Reason    *string                 `json:"reason,omitempty"`
	Message   *string                 `json:"message,omitempty"`
	Price     *booking.PriceBreakdown `json:"price,omitempty"`
}

type SpaceUseCase interface {
	GetSpace(ctx context.Context, id uuid.UUID) (*readmodel.SpaceRM, error)
	VerifySelectedTimes(ctx context.Context, spaceID uuid.UUID, params VerifyParams) (*QuoteResult, error)
	GetCalendar(ctx context.Context, spaceID uuid.UUID, from, to time.Time) ([]readmodel.CalendarEntryRM, error)
}

type spaceUseCaseImpl struct {
	spaceRepo   SpaceRepository
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	couponRepo  CouponRepository
	pricing     config.PricingConfig
	clock       clock.Clock
}

func NewSpaceUseCase(
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	couponRepo CouponRepository,
	cfg config.Config,
	clock clock.Clock,
) SpaceUseCase {
	return &spaceUseCaseImpl{
		spaceRepo:   spaceRepo,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		couponRepo:  couponRepo,
		pricing:     cfg.Pricing,
		clock:       clock,
	}
}

func (s *spaceUseCaseImpl) GetSpace(ctx context.Context, id uuid.UUID) (*readmodel.SpaceRM, error) {
	spaceRM, err := s.spaceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Wrap(err, "failed to find space")
	}
	return spaceRM, nil
}

// VerifySelectedTimes checks whether the requested interval can be booked
// and, when it can, prices it. Availability refusals come back inside the
// QuoteResult; only infrastructure faults surface as errors.
func (s *spaceUseCaseImpl) VerifySelectedTimes(ctx context.Context, spaceID uuid.UUID, params VerifyParams) (*QuoteResult, error) {
	spaceRM, err := s.GetSpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	interval, err := booking.NewInterval(params.Start, params.End)
	if err != nil {
		return nil, ErrInvalidInterval
	}

	if interval.Start().Before(s.clock.Now()) {
		return nil, ErrBookingInPast
	}

	reservations, err := s.bookingRepo.FindWindowsBySpace(ctx, spaceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load existing bookings")
	}

	blocks, err := s.blockRepo.FindBySpace(ctx, spaceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load blocked periods")
	}

	if rejection := booking.CheckAvailability(booking.AvailabilityQuery{
		SpaceID:      spaceID,
		Candidate:    interval,
		Policy:       spaceRM.Policy(),
		Reservations: reservations,
		Blocks:       blocks,
	}); rejection != nil {
		reason := string(rejection.Reason)
		message := rejection.Message
		return &QuoteResult{Available: false, Reason: &reason, Message: &message}, nil
	}

	coupons, _, err := resolveCouponSnapshots(ctx, s.couponRepo, s.clock, params.CouponCode, spaceID)
	if err != nil {
		return nil, err
	}

	breakdown, err := booking.ComputePrice(spaceRM.RateSheet(), interval, booking.QuoteContext{
		ExtraCharges: spaceRM.ExtraCharges,
		BuyerFees:    s.pricing.BuyerFees,
		SellerFees:   s.pricing.SellerFees,
		TaxPercent:   s.pricing.TaxPercent,
		Coupons:      coupons,
		Guests:       params.Guests,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to compute price")
	}

	return &QuoteResult{Available: true, Price: &breakdown}, nil
}

func (s *spaceUseCaseImpl) GetCalendar(ctx context.Context, spaceID uuid.UUID, from, to time.Time) ([]readmodel.CalendarEntryRM, error) {
	if _, err := s.GetSpace(ctx, spaceID); err != nil {
		return nil, err
	}

	window, err := booking.NewInterval(from, to)
	if err != nil {
		return nil, ErrInvalidInterval
	}

	reservations, err := s.bookingRepo.FindWindowsBySpace(ctx, spaceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load existing bookings")
	}

	blocks, err := s.blockRepo.FindBySpace(ctx, spaceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load blocked periods")
	}

	entries := make([]readmodel.CalendarEntryRM, 0, len(reservations)+len(blocks))
	for _, r := range reservations {
		if !r.Status.Blocking() || !window.Overlaps(r.Interval) {
			continue
		}
		entries = append(entries, readmodel.CalendarEntryRM{
			Kind:  "booking",
			Start: r.Interval.Start(),
			End:   r.Interval.End(),
		})
	}
	for _, b := range blocks {
		if !window.Overlaps(b.Interval) {
			continue
		}
		entries = append(entries, readmodel.CalendarEntryRM{
			Kind:  "block",
			Start: b.Interval.Start(),
			End:   b.Interval.End(),
		})
	}

	return entries, nil
}

// resolveCouponSnapshots turns an optional coupon code into engine
// snapshots. A nil code yields no coupons; a code that does not exist or
// does not apply is a client error.
func resolveCouponSnapshots(ctx context.Context, couponRepo CouponRepository, clk clock.Clock, code *string, spaceID uuid.UUID) ([]booking.CouponSnapshot, *uuid.UUID, error) {
	if code == nil {
		return nil, nil, nil
	}

	// Codes are stored uppercase.
	couponRM, err := couponRepo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(*code)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrCouponNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to find coupon")
	}

	couponEntity, err := coupon.NewCoupon(
		couponRM.ID,
		couponRM.Code,
		couponRM.DiscountType,
		couponRM.Amount,
		couponRM.SpaceID,
		couponRM.ValidFrom,
		couponRM.ValidTo,
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create coupon")
	}

	if err := couponEntity.ValidateUsage(clk.Now(), spaceID); err != nil {
		return nil, nil, ErrInvalidCoupon
	}

	id := couponEntity.ID()
	return []booking.CouponSnapshot{couponEntity.Snapshot()}, &id, nil
}
