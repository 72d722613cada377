package repository

import (
	"context"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BlockRepository struct {
	db *pgxpool.Pool
}

func NewBlockRepository(db *pgxpool.Pool) *BlockRepository {
	return &BlockRepository{db: db}
}

const findBlocksBySpaceQuery = `
SELECT lower(slot), upper(slot)
FROM space_blocks
WHERE space_id = $1
`

func (r *BlockRepository) FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]booking.Block, error) {
	rows, err := r.db.Query(ctx, findBlocksBySpaceQuery, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find space blocks", err)
	}
	defer rows.Close()

	var blocks []booking.Block
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan space block", err)
		}

		interval, err := booking.NewInterval(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored block has invalid slot", err)
		}
		blocks = append(blocks, booking.Block{Interval: interval})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate space blocks", err)
	}

	return blocks, nil
}
