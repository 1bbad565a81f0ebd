package repositories

import (
	"context"
	"database/sql"

	"github.com/gsf/tournament-tracker/models"
)

type ImportLogRepository interface {
	Create(ctx context.Context, exec SQLExecutor, log *models.ImportLog) error
}

type postgresImportLogRepository struct {
	db *sql.DB
}

func NewPostgresImportLogRepository(db *sql.DB) ImportLogRepository {
	return &postgresImportLogRepository{db: db}
}

func (r *postgresImportLogRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresImportLogRepository) Create(ctx context.Context, exec SQLExecutor, log *models.ImportLog) error {
	executor := r.getExecutor(exec)

	return executor.QueryRowContext(ctx, `
		INSERT INTO tsh_import_log (tournament_id, source_file, rows_affected, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		log.TournamentID, log.SourceFile, log.RowsAffected, log.Notes,
	).Scan(&log.ID, &log.CreatedAt)
}
