package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/session"
)

// Reply-keyboard button captions. These are the exact strings the
// keyboards below send back, so classification matches on them.
const (
	btnClockIn       = "ثبت ورود"
	btnClockOut      = "ثبت خروج"
	btnDailyReport   = "گزارش روزانه"
	btnMonthlyReport = "گزارش ماهانه"
	btnAdmin         = "ادمین"
	btnListAccounts  = "لیست کاربران"
	btnRename        = "تعیین نام نمایشی"
	btnDailyAll      = "گزارش روزانه همه"
	btnMonthlyFor    = "گزارش ماهانه کاربر"
	btnExport        = "دریافت بکاپ"
	btnBack          = "بازگشت"
)

var buttonIntents = map[string]session.Intent{
	btnClockIn:       session.IntentClockIn,
	btnClockOut:      session.IntentClockOut,
	btnDailyReport:   session.IntentDailyReport,
	btnMonthlyReport: session.IntentMonthlyReport,
	btnAdmin:         session.IntentAdminMenu,
	btnListAccounts:  session.IntentListAccounts,
	btnRename:        session.IntentRename,
	btnDailyAll:      session.IntentDailyReportAll,
	btnMonthlyFor:    session.IntentMonthlyReportFor,
	btnExport:        session.IntentExport,
	btnBack:          session.IntentCancel,
}

// classify decodes an incoming message into a session.Command.
func classify(msg *tgbotapi.Message) session.Command {
	cmd := session.Command{
		CallerID: msg.From.ID,
		FullName: strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName),
		Handle:   msg.From.UserName,
		Text:     msg.Text,
	}

	if msg.IsCommand() {
		cmd.Args = strings.Fields(msg.CommandArguments())
		switch msg.Command() {
		case "start":
			cmd.Intent = session.IntentStart
		case "setname":
			cmd.Intent = session.IntentSetName
		case "report_month":
			cmd.Intent = session.IntentReportMonth
		case "backup":
			cmd.Intent = session.IntentExport
		default:
			cmd.Intent = session.IntentText
		}
		return cmd
	}

	if intent, ok := buttonIntents[strings.TrimSpace(msg.Text)]; ok {
		cmd.Intent = intent
		return cmd
	}

	cmd.Intent = session.IntentText
	return cmd
}

var mainKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnClockIn),
		tgbotapi.NewKeyboardButton(btnClockOut),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnDailyReport),
		tgbotapi.NewKeyboardButton(btnMonthlyReport),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnAdmin),
	),
)

var adminKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnListAccounts),
		tgbotapi.NewKeyboardButton(btnRename),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnDailyAll),
		tgbotapi.NewKeyboardButton(btnMonthlyFor),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnExport),
		tgbotapi.NewKeyboardButton(btnBack),
	),
)

// keyboard maps a reply's menu to the markup to attach, if any.
func keyboard(menu session.Menu) any {
	switch menu {
	case session.MenuMain:
		return mainKeyboard
	case session.MenuAdmin:
		return adminKeyboard
	default:
		return nil
	}
}
