package models

import "time"

// EventKind distinguishes clock-in from clock-out events.
type EventKind string

const (
	KindEnter EventKind = "enter"
	KindExit  EventKind = "exit"
)

// Label returns the user-facing Persian label for the kind.
func (k EventKind) Label() string {
	if k == KindEnter {
		return "ورود"
	}
	return "خروج"
}

// AttendanceEvent is one append-only ledger entry. Per-account history
// is ordered by OccurredAt.
type AttendanceEvent struct {
	ID         string    `db:"id"`
	AccountID  string    `db:"account_id"`
	Kind       EventKind `db:"kind"`
	OccurredAt time.Time `db:"occurred_at"`
}
