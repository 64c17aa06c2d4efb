package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/jalalix"
	"github.com/mohammaddehghani/telegramrepbot/internal/logging"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

// Identity is the slice of the identity registry the handler needs.
type Identity interface {
	RegisterOrGet(ctx context.Context, externalID int64, fullName, handle string) (*models.Account, error)
	SetDisplayName(ctx context.Context, accountID, name string) error
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	ResolveTarget(ctx context.Context, text string) (*models.Account, error)
	Label(acc *models.Account) string
}

// Access is the privileged-caller gate.
type Access interface {
	IsPrivileged(ctx context.Context, externalID int64) (bool, error)
}

// Ledger records attendance events.
type Ledger interface {
	Record(ctx context.Context, accountID string, kind models.EventKind, at time.Time) (*models.AttendanceEvent, error)
}

// Reporter aggregates ledger events into reports.
type Reporter interface {
	Daily(ctx context.Context, accountID *string, ref time.Time) (*models.Report, error)
	Monthly(ctx context.Context, accountID *string, year, month int) (*models.Report, error)
}

// Exporter produces the full-export artifacts.
type Exporter interface {
	FullExport(ctx context.Context) ([]models.Attachment, error)
}

// Handler executes one Command at a time per caller against the
// injected session store and services.
type Handler struct {
	identity Identity
	access   Access
	ledger   Ledger
	reports  Reporter
	exports  Exporter
	sessions Store
	logger   logging.Logger
	now      func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(identity Identity, access Access, ledger Ledger, reports Reporter, exports Exporter, sessions Store, logger logging.Logger) *Handler {
	return &Handler{
		identity: identity,
		access:   access,
		ledger:   ledger,
		reports:  reports,
		exports:  exports,
		sessions: sessions,
		logger:   logger,
		now:      jalalix.Now,
	}
}

// Handle runs one decoded command through the state machine. Every
// error is translated to a user-facing reply here; none escapes.
func (h *Handler) Handle(ctx context.Context, cmd Command) Reply {
	account, err := h.identity.RegisterOrGet(ctx, cmd.CallerID, cmd.FullName, cmd.Handle)
	if err != nil {
		h.logger.Error(ctx, "register failed", "caller", cmd.CallerID, "err", err)
		return textReply(msgInternalError)
	}

	if cmd.Intent == IntentCancel {
		h.sessions.Reset(cmd.CallerID)
		return menuReply(MenuMain, msgBackToMenu)
	}

	sess := h.sessions.Get(cmd.CallerID)
	if sess.State != StateIdle && cmd.Intent == IntentText {
		return h.continueFlow(ctx, account, cmd, sess)
	}
	// a recognized command interrupts any pending flow
	if sess.State != StateIdle {
		h.sessions.Reset(cmd.CallerID)
	}

	return h.dispatch(ctx, account, cmd)
}

func (h *Handler) dispatch(ctx context.Context, account *models.Account, cmd Command) Reply {
	switch cmd.Intent {
	case IntentStart:
		return menuReply(MenuMain, msgGreeting)

	case IntentClockIn:
		return h.record(ctx, account, models.KindEnter)
	case IntentClockOut:
		return h.record(ctx, account, models.KindExit)

	case IntentDailyReport:
		report, err := h.reports.Daily(ctx, &account.ID, h.now())
		if err != nil {
			return h.failure(ctx, "daily report", err)
		}
		return textReply(h.renderReport(report, msgDailySelfHeader))

	case IntentMonthlyReport:
		h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingPeriodToken, Flow: FlowSelfMonthly})
		return textReply(msgAskPeriod)

	case IntentAdminMenu:
		if denied := h.gate(ctx, cmd.CallerID, msgNotAdmin); denied != nil {
			return *denied
		}
		return menuReply(MenuAdmin, msgAdminPanel)

	case IntentListAccounts:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		return h.listAccounts(ctx)

	case IntentDailyReportAll:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		report, err := h.reports.Daily(ctx, nil, h.now())
		if err != nil {
			return h.failure(ctx, "daily report all", err)
		}
		return textReply(h.renderReport(report, msgDailyAllHeader))

	case IntentMonthlyReportFor:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingPeriodToken, Flow: FlowAdminMonthly})
		return textReply(msgAskPeriod)

	case IntentRename:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingTargetAccount, Flow: FlowRename})
		return textReply(msgAskTarget)

	case IntentExport:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		attachments, err := h.exports.FullExport(ctx)
		if err != nil {
			return h.failure(ctx, "full export", err)
		}
		return Reply{Texts: []string{msgExportHeader}, Attachments: attachments}

	case IntentSetName:
		return h.setNameCommand(ctx, cmd)

	case IntentReportMonth:
		return h.reportMonthCommand(ctx, cmd)
	}

	// unrecognized free text outside a flow is ignored
	return Reply{}
}

// continueFlow feeds free text into the caller's pending flow.
func (h *Handler) continueFlow(ctx context.Context, account *models.Account, cmd Command, sess Session) Reply {
	text := strings.TrimSpace(cmd.Text)

	switch sess.State {
	case StateAwaitingPeriodToken:
		year, month, err := jalalix.ParsePeriodToken(text)
		if err != nil {
			return textReply(msgBadPeriod)
		}
		if sess.Flow == FlowSelfMonthly {
			h.sessions.Reset(cmd.CallerID)
			return h.monthlyReply(ctx, &account.ID, account, year, month)
		}
		h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingReportScope, Flow: sess.Flow, Year: year, Month: month})
		return textReply(msgAskScope)

	case StateAwaitingReportScope:
		switch text {
		case scopeTokenAll:
			if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
				return *denied
			}
			h.sessions.Reset(cmd.CallerID)
			return h.monthlyReply(ctx, nil, nil, sess.Year, sess.Month)
		case scopeTokenSingle:
			h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingTargetAccount, Flow: sess.Flow, Year: sess.Year, Month: sess.Month})
			return textReply(msgAskTarget)
		default:
			return textReply(msgBadScope)
		}

	case StateAwaitingTargetAccount:
		target, err := h.identity.ResolveTarget(ctx, text)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
				return textReply(msgTargetNotFound)
			}
			return h.failure(ctx, "resolve target", err)
		}
		if sess.Flow == FlowRename {
			h.sessions.Put(cmd.CallerID, Session{State: StateAwaitingNewDisplayName, Flow: FlowRename, TargetID: target.ID})
			return textReply(msgAskNewName)
		}
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		h.sessions.Reset(cmd.CallerID)
		return h.monthlyReply(ctx, &target.ID, target, sess.Year, sess.Month)

	case StateAwaitingNewDisplayName:
		if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
			return *denied
		}
		if err := h.identity.SetDisplayName(ctx, sess.TargetID, text); err != nil {
			if errors.Is(err, common.ErrorValidation) {
				return textReply(msgBadNewName)
			}
			return h.failure(ctx, "rename", err)
		}
		h.sessions.Reset(cmd.CallerID)
		return textReply(fmt.Sprintf(msgRenamed, strings.TrimSpace(text)))
	}

	return Reply{}
}

// --- immediate operations ---

func (h *Handler) record(ctx context.Context, account *models.Account, kind models.EventKind) Reply {
	at := h.now()
	event, err := h.ledger.Record(ctx, account.ID, kind, at)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyRecorded) {
			if kind == models.KindEnter {
				return textReply(msgEnterDuplicate)
			}
			return textReply(msgExitDuplicate)
		}
		return h.failure(ctx, "record", err)
	}

	date, clock := jalalix.Civil(event.OccurredAt)
	if kind == models.KindEnter {
		return textReply(fmt.Sprintf(msgEnterRecorded, date, clock))
	}
	return textReply(fmt.Sprintf(msgExitRecorded, date, clock))
}

func (h *Handler) listAccounts(ctx context.Context) Reply {
	accounts, err := h.identity.ListAccounts(ctx)
	if err != nil {
		return h.failure(ctx, "list accounts", err)
	}

	lines := []string{msgUsersHeader}
	for _, acc := range accounts {
		handle := acc.Handle
		if handle != "" {
			handle = "@" + handle
		}
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s", acc.ExternalID, h.identity.Label(acc), handle))
	}
	return textReply(strings.Join(lines, "\n"))
}

func (h *Handler) monthlyReply(ctx context.Context, accountID *string, target *models.Account, year, month int) Reply {
	report, err := h.reports.Monthly(ctx, accountID, year, month)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return textReply(msgTargetNotFound)
		}
		return h.failure(ctx, "monthly report", err)
	}

	label := scopeTokenAll
	if target != nil {
		label = h.identity.Label(target)
	}
	header := fmt.Sprintf(msgMonthlyHeader, label, year, month)
	return textReply(h.renderReport(report, header))
}

// --- direct slash commands ---

func (h *Handler) setNameCommand(ctx context.Context, cmd Command) Reply {
	if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
		return *denied
	}
	if len(cmd.Args) < 2 {
		return textReply(msgSetNameUsage)
	}

	target, err := h.identity.ResolveTarget(ctx, cmd.Args[0])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
			return textReply(msgTargetNotFound)
		}
		return h.failure(ctx, "resolve target", err)
	}

	name := strings.TrimSpace(strings.Join(cmd.Args[1:], " "))
	if err := h.identity.SetDisplayName(ctx, target.ID, name); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return textReply(msgBadNewName)
		}
		return h.failure(ctx, "rename", err)
	}
	return textReply(fmt.Sprintf(msgRenamed, name))
}

func (h *Handler) reportMonthCommand(ctx context.Context, cmd Command) Reply {
	if denied := h.gate(ctx, cmd.CallerID, msgAdminsOnly); denied != nil {
		return *denied
	}
	if len(cmd.Args) < 1 {
		return textReply(msgReportMonthUsage)
	}

	target, err := h.identity.ResolveTarget(ctx, cmd.Args[0])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
			return textReply(msgTargetNotFound)
		}
		return h.failure(ctx, "resolve target", err)
	}

	year, month := jalalix.Period(h.now())
	if len(cmd.Args) > 1 {
		year, month, err = jalalix.ParsePeriodToken(cmd.Args[1])
		if err != nil {
			return textReply(msgBadPeriod)
		}
	}

	return h.monthlyReply(ctx, &target.ID, target, year, month)
}

// --- helpers ---

// gate returns a denial reply for non-privileged callers, nil otherwise.
func (h *Handler) gate(ctx context.Context, callerID int64, denial string) *Reply {
	ok, err := h.access.IsPrivileged(ctx, callerID)
	if err != nil {
		r := h.failure(ctx, "gate", err)
		return &r
	}
	if !ok {
		r := menuReply(MenuMain, denial)
		return &r
	}
	return nil
}

func (h *Handler) renderReport(report *models.Report, header string) string {
	if report.Empty() {
		return msgNothing
	}

	lines := []string{header}
	for _, group := range report.Groups {
		for _, ev := range group.Events {
			date, clock := jalalix.Civil(ev.OccurredAt)
			if report.Single {
				lines = append(lines, fmt.Sprintf("%s | %s | %s", date, clock, ev.Kind.Label()))
			} else {
				lines = append(lines, fmt.Sprintf("%s | %s | %s | %s", h.identity.Label(group.Account), date, clock, ev.Kind.Label()))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) failure(ctx context.Context, op string, err error) Reply {
	h.logger.Error(ctx, "operation failed", "op", op, "err", err)
	return textReply(msgInternalError)
}
