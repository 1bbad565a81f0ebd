package models

// Pairing is a scheduled match in a given round/board of a division.
// Player2 is nil for a bye.
type Pairing struct {
	ID         int  `json:"id"`
	DivisionID int  `json:"division_id"`
	Round      int  `json:"round"`
	Board      int  `json:"board"`
	Player1ID  int  `json:"player1_id"`
	Player2ID  *int `json:"player2_id,omitempty"`
}

// ResultRow is one pairing of a tournament joined to player names and,
// when the game has been played, its score. Player2 and score fields
// are nil for byes and unplayed games.
type ResultRow struct {
	Round       int     `json:"round"`
	Board       int     `json:"board"`
	Player1ID   int     `json:"player1_id"`
	Player2ID   *int    `json:"player2_id"`
	Player1Name string  `json:"player1_name"`
	Player2Name *string `json:"player2_name"`
	Score1      *int    `json:"score1"`
	Score2      *int    `json:"score2"`
	Division    string  `json:"division"`
}
