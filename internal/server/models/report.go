package models

import "time"

// Report groups ledger events per account over a half-open period.
// An empty Groups slice is a valid outcome, distinct from a lookup
// failure for the requested account.
type Report struct {
	Start  time.Time
	End    time.Time
	Single bool // single-account scope omits account columns in tables
	Groups []ReportGroup
}

// ReportGroup holds one account's events, ascending by OccurredAt.
type ReportGroup struct {
	Account *Account
	Events  []*AttendanceEvent
}

// Empty reports whether the period contained no events for the scope.
func (r *Report) Empty() bool {
	return len(r.Groups) == 0
}

// Table is a format-agnostic tabular projection of a report: a header
// row plus one row per event. Serialization (xlsx, text) stays external.
type Table struct {
	Header []string
	Rows   [][]string
}

// Attachment is an exported artifact delivered by the presentation
// layer alongside reply texts.
type Attachment struct {
	Name    string
	Content []byte
}
