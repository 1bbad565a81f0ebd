package models

import "time"

// WespaSystemCode is the system the importer records seed ratings
// under and the default for ranking requests.
const WespaSystemCode = "wespa"

// RatingSystem is static reference data ("wespa", national systems, ...).
type RatingSystem struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// MemberRating is one point of a member's rating time series. At most
// one row exists per (member, system, effective date).
type MemberRating struct {
	ID            int       `json:"id"`
	MemberID      int       `json:"member_id"`
	SystemID      int       `json:"system_id"`
	Rating        int       `json:"rating"`
	EffectiveDate time.Time `json:"effective_date"`
	Source        string    `json:"source"`
}

// RatingHistoryEntry is a rating row joined to its system, as served in
// the member detail view.
type RatingHistoryEntry struct {
	Rating        int       `json:"rating"`
	EffectiveDate time.Time `json:"effective_date"`
	Source        string    `json:"source"`
	SystemCode    string    `json:"code"`
	SystemName    string    `json:"name"`
}

// RankingEntry is one row of the per-system ranking: the member's
// latest rating in that system plus how many tournaments they have
// entered overall.
type RankingEntry struct {
	MemberID          int       `json:"id"`
	Name              string    `json:"name"`
	Region            *string   `json:"region,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	Rating            int       `json:"rating"`
	EffectiveDate     time.Time `json:"effective_date"`
	System            string    `json:"system"`
	TournamentsPlayed int       `json:"tournaments_played"`
}
