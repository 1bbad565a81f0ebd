package models

// Standing is a member's cumulative result within a division as of a
// given round. One row per (division, round, member); the final
// standing is the row with the maximum round.
type Standing struct {
	ID         int  `json:"id"`
	MemberID   int  `json:"member_id"`
	DivisionID int  `json:"division_id"`
	Round      int  `json:"round"`
	Wins       int  `json:"wins"`
	Losses     int  `json:"losses"`
	Spread     int  `json:"spread"`
	Rating     *int `json:"rating,omitempty"`
	Rank       *int `json:"rank,omitempty"`
}

// StandingRow is a final-round standing joined to member and division
// names for the tournament detail view.
type StandingRow struct {
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Spread   int    `json:"spread"`
	Rating   *int   `json:"rating,omitempty"`
	Rank     *int   `json:"rank,omitempty"`
	Division string `json:"division"`
	Round    int    `json:"round"`
}
