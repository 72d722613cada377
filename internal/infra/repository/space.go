package repository

import (
	"context"
	"encoding/json"
	"errors"

	"space-booking-api/internal/infra"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpaceRepository struct {
	db *pgxpool.Pool
}

func NewSpaceRepository(db *pgxpool.Pool) *SpaceRepository {
	return &SpaceRepository{db: db}
}

const findSpaceByIDQuery = `
SELECT
    id, host_id, name, max_guests,
    hourly_rate, daily_rate, weekly_rate, monthly_rate,
    discounted_hourly, discounted_daily, discounted_weekly, discounted_monthly,
    listing_price, sale_price, hours_per_day,
    min_stay_hours, available_from_hour, available_to_hour,
    extra_charges, created_at, updated_at
FROM spaces
WHERE id = $1
`

func (r *SpaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SpaceRM, error) {
	var rm readmodel.SpaceRM
	var extraCharges []byte

	err := r.db.QueryRow(ctx, findSpaceByIDQuery, id).Scan(
		&rm.ID, &rm.HostID, &rm.Name, &rm.MaxGuests,
		&rm.HourlyRate, &rm.DailyRate, &rm.WeeklyRate, &rm.MonthlyRate,
		&rm.DiscountedHourly, &rm.DiscountedDaily, &rm.DiscountedWeekly, &rm.DiscountedMonthly,
		&rm.ListingPrice, &rm.SalePrice, &rm.HoursPerDay,
		&rm.MinStayHours, &rm.AvailableFromHour, &rm.AvailableToHour,
		&extraCharges, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	if len(extraCharges) > 0 {
		if err := json.Unmarshal(extraCharges, &rm.ExtraCharges); err != nil {
			return nil, infra.WrapRepoErr("failed to decode extra charges", err)
		}
	}

	return &rm, nil
}
