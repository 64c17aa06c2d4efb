package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/session"
)

func message(text string, entities ...tgbotapi.MessageEntity) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text:     text,
		Entities: entities,
		From: &tgbotapi.User{
			ID:        42,
			FirstName: "علی",
			LastName:  "رضایی",
			UserName:  "ali",
		},
		Chat: &tgbotapi.Chat{ID: 42},
	}
}

func slashMessage(text string) *tgbotapi.Message {
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}
	return message(text, tgbotapi.MessageEntity{Type: "bot_command", Offset: 0, Length: cmdLen})
}

func TestClassifyButtons(t *testing.T) {
	tests := []struct {
		text string
		want session.Intent
	}{
		{btnClockIn, session.IntentClockIn},
		{btnClockOut, session.IntentClockOut},
		{btnDailyReport, session.IntentDailyReport},
		{btnMonthlyReport, session.IntentMonthlyReport},
		{btnAdmin, session.IntentAdminMenu},
		{btnListAccounts, session.IntentListAccounts},
		{btnRename, session.IntentRename},
		{btnDailyAll, session.IntentDailyReportAll},
		{btnMonthlyFor, session.IntentMonthlyReportFor},
		{btnExport, session.IntentExport},
		{btnBack, session.IntentCancel},
	}
	for _, tt := range tests {
		got := classify(message(tt.text))
		if got.Intent != tt.want {
			t.Errorf("classify(%q) intent = %v, want %v", tt.text, got.Intent, tt.want)
		}
	}
}

func TestClassifySlashCommands(t *testing.T) {
	tests := []struct {
		text     string
		want     session.Intent
		wantArgs int
	}{
		{"/start", session.IntentStart, 0},
		{"/setname 12 علی رضایی", session.IntentSetName, 3},
		{"/report_month 12 1403-05", session.IntentReportMonth, 2},
		{"/backup", session.IntentExport, 0},
		{"/unknown", session.IntentText, 0},
	}
	for _, tt := range tests {
		got := classify(slashMessage(tt.text))
		if got.Intent != tt.want {
			t.Errorf("classify(%q) intent = %v, want %v", tt.text, got.Intent, tt.want)
		}
		if len(got.Args) != tt.wantArgs {
			t.Errorf("classify(%q) args = %v, want %d", tt.text, got.Args, tt.wantArgs)
		}
	}
}

func TestClassifyFreeText(t *testing.T) {
	got := classify(message("1403-05"))
	if got.Intent != session.IntentText {
		t.Errorf("intent = %v, want text", got.Intent)
	}
	if got.Text != "1403-05" {
		t.Errorf("text = %q", got.Text)
	}
	if got.CallerID != 42 || got.Handle != "ali" {
		t.Errorf("caller not carried over: %+v", got)
	}
	if got.FullName != "علی رضایی" {
		t.Errorf("full name = %q", got.FullName)
	}
}

func TestKeyboardSelection(t *testing.T) {
	if keyboard(session.MenuNone) != nil {
		t.Error("no menu must attach no keyboard")
	}
	if keyboard(session.MenuMain) == nil {
		t.Error("main menu must attach a keyboard")
	}
	if keyboard(session.MenuAdmin) == nil {
		t.Error("admin menu must attach a keyboard")
	}
}
