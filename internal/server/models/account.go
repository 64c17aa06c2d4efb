package models

import (
	"fmt"
	"strconv"
	"time"
)

// Account is the internal representation of an external caller. Created
// on first contact, mutated only by an admin rename, never deleted.
type Account struct {
	ID           string    `db:"id"`
	ExternalID   int64     `db:"external_id"`
	FullName     string    `db:"full_name"`
	Handle       string    `db:"handle"`
	DisplayName  string    `db:"display_name"`
	EmployeeCode int64     `db:"employee_code"`
	CreatedAt    time.Time `db:"created_at"`
}

// Label resolves the name shown for the account: display name, then full
// name, then the zero-padded employee code, then the external id. First
// non-empty wins.
func (a *Account) Label(codeWidth int) string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.FullName != "" {
		return a.FullName
	}
	if a.EmployeeCode > 0 {
		return a.Code(codeWidth)
	}
	return strconv.FormatInt(a.ExternalID, 10)
}

// Code renders the employee code zero-padded to the given width, or ""
// when no code has been assigned.
func (a *Account) Code(width int) string {
	if a.EmployeeCode <= 0 {
		return ""
	}
	return fmt.Sprintf("%0*d", width, a.EmployeeCode)
}
