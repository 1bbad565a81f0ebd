package models

import "time"

// Game is the recorded result of a pairing. At most one per pairing;
// absent while the game is unplayed.
type Game struct {
	ID        int `json:"id"`
	PairingID int `json:"pairing_id"`
	Score1    int `json:"score1"`
	Score2    int `json:"score2"`
}

// HistoryGame is one completed game from a member's perspective. Won is
// derived from the scores depending on which seat the member held.
type HistoryGame struct {
	Round      int        `json:"round"`
	Board      int        `json:"board"`
	Score1     int        `json:"score1"`
	Score2     int        `json:"score2"`
	Opponent   *string    `json:"opponent"`
	Tournament string     `json:"tournament"`
	DateStart  *time.Time `json:"date_start,omitempty"`
	Division   string     `json:"division"`
	Won        bool       `json:"won"`
}
