package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}

func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusAccepted || s == MatchStatusRejected
}

// CanTransitionTo allows only pending -> accepted and pending -> rejected.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	return s == MatchStatusPending && next.IsTerminal()
}

// ResponseOption is the mentor's answer to a request. The numeric values are
// part of the public API.
type ResponseOption int

const (
	ResponseAccept ResponseOption = 1
	ResponseReject ResponseOption = 2
)

// TargetStatus returns the status the option moves a pending match to.
func (o ResponseOption) TargetStatus() (MatchStatus, bool) {
	switch o {
	case ResponseAccept:
		return MatchStatusAccepted, true
	case ResponseReject:
		return MatchStatusRejected, true
	}
	return "", false
}

// Match is a mentoring request and its lifecycle state. It is created by the
// mentee and only ever mutated by the mentor.
type Match struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	MentorID    uuid.UUID   `json:"mentor_id" db:"mentor_id"`
	MenteeID    uuid.UUID   `json:"mentee_id" db:"mentee_id"`
	Subject     string      `json:"subject" db:"subject"`
	Content     string      `json:"content" db:"content"`
	Status      MatchStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty" db:"responded_at"`
}

func (m *Match) HasUser(userID uuid.UUID) bool {
	return m.MentorID == userID || m.MenteeID == userID
}

func (m *Match) GetOtherUserID(userID uuid.UUID) (uuid.UUID, bool) {
	if m.MentorID == userID {
		return m.MenteeID, true
	}
	if m.MenteeID == userID {
		return m.MentorID, true
	}
	return uuid.Nil, false
}

// MatchSummary is a match as shown on a user's activity page.
type MatchSummary struct {
	ID            uuid.UUID   `json:"id"`
	MentorID      uuid.UUID   `json:"mentor_id"`
	MenteeID      uuid.UUID   `json:"mentee_id"`
	CounterpartID uuid.UUID   `json:"counterpart_id"`
	Counterpart   string      `json:"counterpart_name,omitempty"`
	Subject       string      `json:"subject"`
	Content       string      `json:"content"`
	Status        MatchStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	RespondedAt   *time.Time  `json:"responded_at,omitempty"`
}

// Activity is the four-way partition of a user's matches.
type Activity struct {
	Pending   []MatchSummary `json:"pending"`
	Accepted  []MatchSummary `json:"accepted"`
	Rejected  []MatchSummary `json:"rejected"`
	Requested []MatchSummary `json:"requested"`
}
