package repository

import (
	"context"
	"errors"

	"space-booking-api/internal/infra"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

const findCouponByCodeQuery = `
SELECT id, code, discount_type, amount, space_id, valid_from, valid_to
FROM coupons
WHERE code = $1
`

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*readmodel.CouponRM, error) {
	var rm readmodel.CouponRM

	err := r.db.QueryRow(ctx, findCouponByCodeQuery, code).Scan(
		&rm.ID, &rm.Code, &rm.DiscountType, &rm.Amount,
		&rm.SpaceID, &rm.ValidFrom, &rm.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return &rm, nil
}
