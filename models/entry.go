package models

import "time"

// TournamentEntry is a member's registration in one tournament. The
// (tournament_id, member_id) unique constraint enforces one division
// per member per event.
type TournamentEntry struct {
	ID           int  `json:"id"`
	TournamentID int  `json:"tournament_id"`
	MemberID     int  `json:"member_id"`
	DivisionID   int  `json:"division_id"`
	PlayerNumber int  `json:"player_number"`
	SeedRating   *int `json:"seed_rating,omitempty"`
	Confirmed    bool `json:"confirmed"`
}

// MemberTournamentResult is one row of a member's tournament history:
// the event joined to the member's final-round standing in their
// division. The standing fields are nil when no standings were ever
// recorded for that division.
type MemberTournamentResult struct {
	TournamentID int        `json:"id"`
	Name         string     `json:"name"`
	DateStart    *time.Time `json:"date_start,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Wins         *int       `json:"wins"`
	Losses       *int       `json:"losses"`
	Spread       *int       `json:"spread"`
	Rank         *int       `json:"rank"`
}
