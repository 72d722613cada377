//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/config"
	"space-booking-api/internal/usecase"
	"space-booking-api/tests/common/builder"
	usecasemock "space-booking-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpaceUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	spaceRepo   *usecasemock.MockSpaceRepository
	bookingRepo *usecasemock.MockBookingRepository
	blockRepo   *usecasemock.MockBlockRepository
	couponRepo  *usecasemock.MockCouponRepository
	clock       *clock.MockClock
	useCase     usecase.SpaceUseCase
}

func (s *SpaceUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.spaceRepo = usecasemock.NewMockSpaceRepository(s.mockCtrl)
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.blockRepo = usecasemock.NewMockBlockRepository(s.mockCtrl)
	s.couponRepo = usecasemock.NewMockCouponRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))

	s.useCase = usecase.NewSpaceUseCase(
		s.spaceRepo, s.bookingRepo, s.blockRepo, s.couponRepo,
		config.NewTestConfig(), s.clock,
	)
}

func (s *SpaceUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpaceUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SpaceUseCaseTestSuite))
}

func (s *SpaceUseCaseTestSuite) params(start time.Time, hours int) usecase.VerifyParams {
	return usecase.VerifyParams{
		Start:  start,
		End:    start.Add(time.Duration(hours) * time.Hour),
		Guests: 2,
	}
}

func (s *SpaceUseCaseTestSuite) TestVerifySelectedTimes() {
	ctx := context.Background()
	spaceBuilder := builder.NewSpaceBuilder()
	spaceRM := spaceBuilder.BuildReadModel()
	spaceID := spaceRM.ID
	start := s.clock.Now().Add(time.Hour)

	s.Run("free slot is priced", func() {
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).Return(nil, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return(nil, nil)

		result, err := s.useCase.VerifySelectedTimes(ctx, spaceID, s.params(start, 3))
		s.Require().NoError(err)
		s.True(result.Available)
		s.Require().NotNil(result.Price)
		// 3 hours * 1500 cents, plus 10% service fee and 13% tax
		s.Equal(int64(4500), result.Price.Price)
		s.Equal(int64(450), result.Price.GuestFee)
		s.Positive(result.Price.Tax)
	})

	s.Run("conflicting booking reported inside the result", func() {
		occupied := booking.ReservationWindow{
			ID:       uuid.New(),
			Interval: s.mustInterval(start, start.Add(5*time.Hour)),
			Status:   booking.StatusBooked,
		}
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).Return([]booking.ReservationWindow{occupied}, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return(nil, nil)

		result, err := s.useCase.VerifySelectedTimes(ctx, spaceID, s.params(start, 3))
		s.Require().NoError(err)
		s.False(result.Available)
		s.Require().NotNil(result.Reason)
		s.Equal(string(booking.ReasonReservationConflict), *result.Reason)
		s.Nil(result.Price)
	})

	s.Run("valid coupon reduces the payable amount", func() {
		couponRM := builder.NewCouponBuilder().BuildReadModel()
		code := couponRM.Code
		params := s.params(start, 3)
		params.CouponCode = &code

		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).Return(nil, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return(nil, nil)
		s.couponRepo.EXPECT().FindByCode(ctx, code).Return(couponRM, nil)

		result, err := s.useCase.VerifySelectedTimes(ctx, spaceID, params)
		s.Require().NoError(err)
		s.True(result.Available)
		s.Equal(int64(1000), result.Price.Discount)
		s.Equal(result.Price.PriceAfterTax-1000, result.Price.PayableAmount)
	})

	s.Run("unknown coupon code", func() {
		code := "NOSUCH"
		params := s.params(start, 3)
		params.CouponCode = &code

		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).Return(nil, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return(nil, nil)
		s.couponRepo.EXPECT().FindByCode(ctx, code).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := s.useCase.VerifySelectedTimes(ctx, spaceID, params)
		s.Require().ErrorIs(err, usecase.ErrCouponNotFound)
	})

	s.Run("expired coupon", func() {
		expired := builder.NewCouponBuilder().
			WithValidity(s.clock.Now().Add(-72*time.Hour), s.clock.Now().Add(-time.Hour)).
			BuildReadModel()
		code := expired.Code
		params := s.params(start, 3)
		params.CouponCode = &code

		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).Return(nil, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return(nil, nil)
		s.couponRepo.EXPECT().FindByCode(ctx, code).Return(expired, nil)

		_, err := s.useCase.VerifySelectedTimes(ctx, spaceID, params)
		s.Require().ErrorIs(err, usecase.ErrInvalidCoupon)
	})

	s.Run("unknown space", func() {
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := s.useCase.VerifySelectedTimes(ctx, spaceID, s.params(start, 3))
		s.Require().ErrorIs(err, usecase.ErrSpaceNotFound)
	})

	s.Run("slot in the past", func() {
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)

		_, err := s.useCase.VerifySelectedTimes(ctx, spaceID, s.params(s.clock.Now().Add(-2*time.Hour), 3))
		s.Require().ErrorIs(err, usecase.ErrBookingInPast)
	})

	s.Run("inverted interval", func() {
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)

		params := usecase.VerifyParams{Start: start, End: start.Add(-time.Hour)}
		_, err := s.useCase.VerifySelectedTimes(ctx, spaceID, params)
		s.Require().ErrorIs(err, usecase.ErrInvalidInterval)
	})
}

func (s *SpaceUseCaseTestSuite) TestGetCalendar() {
	ctx := context.Background()
	spaceRM := builder.NewSpaceBuilder().BuildReadModel()
	spaceID := spaceRM.ID
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	s.Run("merges bookings and blocks inside the range", func() {
		inRange := booking.ReservationWindow{
			ID:       uuid.New(),
			Interval: s.mustInterval(from.Add(24*time.Hour), from.Add(27*time.Hour)),
			Status:   booking.StatusBooked,
		}
		cancelled := booking.ReservationWindow{
			ID:       uuid.New(),
			Interval: s.mustInterval(from.Add(48*time.Hour), from.Add(51*time.Hour)),
			Status:   booking.StatusCancelled,
		}
		outOfRange := booking.ReservationWindow{
			ID:       uuid.New(),
			Interval: s.mustInterval(to.Add(time.Hour), to.Add(4*time.Hour)),
			Status:   booking.StatusBooked,
		}
		block := booking.Block{Interval: s.mustInterval(from.Add(96*time.Hour), from.Add(120*time.Hour))}

		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)
		s.bookingRepo.EXPECT().FindWindowsBySpace(ctx, spaceID).
			Return([]booking.ReservationWindow{inRange, cancelled, outOfRange}, nil)
		s.blockRepo.EXPECT().FindBySpace(ctx, spaceID).Return([]booking.Block{block}, nil)

		entries, err := s.useCase.GetCalendar(ctx, spaceID, from, to)
		s.Require().NoError(err)
		s.Require().Len(entries, 2)
		s.Equal("booking", entries[0].Kind)
		s.Equal(inRange.Interval.Start(), entries[0].Start)
		s.Equal("block", entries[1].Kind)
	})

	s.Run("inverted range", func() {
		s.spaceRepo.EXPECT().FindByID(ctx, spaceID).Return(spaceRM, nil)

		_, err := s.useCase.GetCalendar(ctx, spaceID, to, from)
		s.Require().ErrorIs(err, usecase.ErrInvalidInterval)
	})
}

func (s *SpaceUseCaseTestSuite) mustInterval(start, end time.Time) booking.Interval {
	iv, err := booking.NewInterval(start, end)
	s.Require().NoError(err)
	return iv
}
