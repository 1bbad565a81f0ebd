package models

import "time"

// TournamentStatus mirrors the tournament status values stored in the
// database.
type TournamentStatus string

const (
	TournamentStatusScheduled TournamentStatus = "scheduled"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
	TournamentStatusCanceled  TournamentStatus = "canceled"
)

// Tournament is one external event. The name is the natural dedup key:
// imports upsert by it.
type Tournament struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	MaxRounds *int             `json:"max_rounds,omitempty"`
	Status    TournamentStatus `json:"status"`
	DateStart *time.Time       `json:"date_start,omitempty"`
	Location  *string          `json:"location,omitempty"`
}

// TournamentSummary is one list row with the distinct entrant count.
type TournamentSummary struct {
	Tournament
	PlayerCount int `json:"player_count"`
}

// TournamentDetail is the tournament view: divisions plus each
// division's final-round standings.
type TournamentDetail struct {
	Tournament
	Divisions []Division    `json:"divisions"`
	Standings []StandingRow `json:"standings"`
}
