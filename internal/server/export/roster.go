package export

import (
	"fmt"
	"strings"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

// Roster renders the plain-text companion of a full export: one line
// per account plus the granted admin ids.
func Roster(accounts []*models.Account, grants []int64, codeWidth int) []byte {
	var b strings.Builder

	b.WriteString("users:\n")
	for _, acc := range accounts {
		handle := acc.Handle
		if handle != "" {
			handle = "@" + handle
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", acc.ExternalID, acc.Code(codeWidth), acc.Label(codeWidth), handle)
	}

	b.WriteString("admins:\n")
	for _, id := range grants {
		fmt.Fprintf(&b, "%d\n", id)
	}

	return []byte(b.String())
}
