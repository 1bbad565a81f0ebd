package models

// Division is a bracket within a tournament. Unique per
// (tournament_id, name).
type Division struct {
	ID           int    `json:"id"`
	TournamentID int    `json:"tournament_id"`
	Name         string `json:"name"`
	MaxRounds    *int   `json:"max_rounds,omitempty"`
}
