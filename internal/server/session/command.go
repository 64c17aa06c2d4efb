// Package session drives the per-caller conversational state machine.
// It consumes decoded Commands, runs the business services, and
// produces Replies; translating chat payloads to Commands and Replies
// to messages is the transport adapter's job.
package session

import "github.com/mohammaddehghani/telegramrepbot/internal/server/models"

// Intent is the decoded meaning of an inbound message.
type Intent int

const (
	// IntentText is free-form text, consumed by Awaiting states.
	IntentText Intent = iota

	IntentStart
	IntentClockIn
	IntentClockOut
	IntentDailyReport
	IntentMonthlyReport
	IntentCancel

	// privileged intents
	IntentAdminMenu
	IntentListAccounts
	IntentDailyReportAll
	IntentMonthlyReportFor
	IntentRename
	IntentExport

	// direct slash commands with structured arguments
	IntentSetName
	IntentReportMonth
)

// Command is one decoded inbound chat event for one caller.
type Command struct {
	CallerID int64
	FullName string
	Handle   string
	Intent   Intent
	Text     string
	Args     []string
}

// Menu hints which reply keyboard the presentation layer should show.
type Menu int

const (
	MenuNone Menu = iota
	MenuMain
	MenuAdmin
)

// Reply is the outcome of handling one Command: text blocks, optional
// export artifacts, and a keyboard hint.
type Reply struct {
	Texts       []string
	Attachments []models.Attachment
	Menu        Menu
}

func textReply(texts ...string) Reply {
	return Reply{Texts: texts}
}

func menuReply(menu Menu, texts ...string) Reply {
	return Reply{Texts: texts, Menu: menu}
}
