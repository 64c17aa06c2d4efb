package session

// State is the position of one caller inside a multi-step flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingPeriodToken
	StateAwaitingReportScope
	StateAwaitingTargetAccount
	StateAwaitingNewDisplayName
)

// Flow tags what the awaited input is for.
type Flow int

const (
	FlowNone Flow = iota
	FlowSelfMonthly
	FlowAdminMonthly
	FlowRename
)

// Session is the tagged state-machine variant held per caller. The
// zero value is Idle.
type Session struct {
	State State
	Flow  Flow

	// period collected by StateAwaitingPeriodToken
	Year  int
	Month int

	// account id collected by StateAwaitingTargetAccount (rename flow)
	TargetID string
}
