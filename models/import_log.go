package models

import "time"

// ImportLog is one append-only audit row per importer invocation.
type ImportLog struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	SourceFile   string    `json:"source_file"`
	RowsAffected int       `json:"rows_affected"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
