package repositories

import (
	"context"
	"database/sql"
)

type EntryRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, tournamentID, memberID, divisionID, playerNumber int, seedRating *int) error
}

type postgresEntryRepository struct {
	db *sql.DB
}

func NewPostgresEntryRepository(db *sql.DB) EntryRepository {
	return &postgresEntryRepository{db: db}
}

func (r *postgresEntryRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// Upsert registers the member for the tournament. An existing
// (tournament, member) entry is left untouched, so re-imports never
// move a player between divisions or renumber them.
func (r *postgresEntryRepository) Upsert(ctx context.Context, exec SQLExecutor, tournamentID, memberID, divisionID, playerNumber int, seedRating *int) error {
	executor := r.getExecutor(exec)

	_, err := executor.ExecContext(ctx, `
		INSERT INTO tournament_entries
			(tournament_id, member_id, division_id, player_number, seed_rating, confirmed)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (tournament_id, member_id) DO NOTHING`,
		tournamentID, memberID, divisionID, playerNumber, seedRating,
	)
	return err
}
