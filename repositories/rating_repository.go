package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gsf/tournament-tracker/models"
)

var ErrRatingSystemNotFound = errors.New("rating system not found")

type RatingRepository interface {
	GetSystemByCode(ctx context.Context, exec SQLExecutor, code string) (*models.RatingSystem, error)
	Upsert(ctx context.Context, exec SQLExecutor, memberID, systemID, rating int, effectiveDate time.Time, source string) error
}

type postgresRatingRepository struct {
	db *sql.DB
}

func NewPostgresRatingRepository(db *sql.DB) RatingRepository {
	return &postgresRatingRepository{db: db}
}

func (r *postgresRatingRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresRatingRepository) GetSystemByCode(ctx context.Context, exec SQLExecutor, code string) (*models.RatingSystem, error) {
	executor := r.getExecutor(exec)

	rs := &models.RatingSystem{}
	err := executor.QueryRowContext(ctx,
		`SELECT id, code, name FROM rating_systems WHERE code = $1`, code,
	).Scan(&rs.ID, &rs.Code, &rs.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRatingSystemNotFound
		}
		return nil, err
	}
	return rs, nil
}

// Upsert appends one point to the member's rating series. A second
// write for the same (member, system, effective date) overwrites the
// rating value: same-day re-imports are last-write-wins.
func (r *postgresRatingRepository) Upsert(ctx context.Context, exec SQLExecutor, memberID, systemID, rating int, effectiveDate time.Time, source string) error {
	executor := r.getExecutor(exec)

	_, err := executor.ExecContext(ctx, `
		INSERT INTO member_ratings (member_id, system_id, rating, effective_date, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (member_id, system_id, effective_date) DO UPDATE
			SET rating = EXCLUDED.rating`,
		memberID, systemID, rating, effectiveDate, source,
	)
	return err
}
