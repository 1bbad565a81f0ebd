package models

import "time"

// MemberStatus mirrors the member status values stored in the database.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusSuspended MemberStatus = "suspended"
)

// Member is a federation member. Members are never deleted, only
// transitioned to another status.
type Member struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Region     *string      `json:"region,omitempty"`
	Status     MemberStatus `json:"status"`
	PhotoURL   *string      `json:"photo_url,omitempty"`
	JoinedDate *time.Time   `json:"joined_date,omitempty"`
}

// MemberSummary is one roster row: the member plus their most recent
// rating across all rating systems (nil if the member has none).
type MemberSummary struct {
	Member
	Rating       *int    `json:"rating"`
	RatingSystem *string `json:"rating_system"`
}

// MemberDetail is the full member view with rating history (newest
// first) and per-tournament final results.
type MemberDetail struct {
	Member
	Ratings     []RatingHistoryEntry     `json:"ratings"`
	Tournaments []MemberTournamentResult `json:"tournaments"`
}
