// Package jalalix adapts absolute instants to the Jalali (Persian)
// calendar: civil rendering, day and month interval boundaries, and
// period-token parsing. All arithmetic is anchored to a fixed UTC+03:30
// offset with no daylight-saving rules.
package jalalix

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaacov/go-persian-calendar"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
)

// tehran is a fixed offset on purpose: local days must not shift with
// historical DST rules of the IANA database.
var tehran = time.FixedZone("Asia/Tehran", 12600)

const (
	dateLayout = "yyyy/MM/dd"
	timeLayout = "HH:mm:ss"
)

// Location returns the fixed local offset used for all calendar math.
func Location() *time.Location {
	return tehran
}

// Now returns the current instant in the local offset.
func Now() time.Time {
	return time.Now().In(tehran)
}

// Civil renders t as Jalali date and time strings, "YYYY/MM/DD" and
// "HH:MM:SS".
func Civil(t time.Time) (string, string) {
	pt := ptime.New(t.In(tehran))
	return pt.Format(dateLayout), pt.Format(timeLayout)
}

// Period returns the Jalali year and month containing t.
func Period(t time.Time) (int, int) {
	pt := ptime.New(t.In(tehran))
	return pt.Year(), int(pt.Month())
}

// DayBounds returns the half-open interval [start, end) of the local
// calendar day containing t. The offset is fixed, so a day is exactly
// 24 hours.
func DayBounds(t time.Time) (time.Time, time.Time) {
	pt := ptime.New(t.In(tehran))
	start := ptime.Date(pt.Year(), pt.Month(), pt.Day(), 0, 0, 0, 0, tehran).Time()
	return start, start.Add(24 * time.Hour)
}

// LocalDay returns the Gregorian date string (YYYY-MM-DD) of the local
// day containing t. Used as the dedup key column in the ledger.
func LocalDay(t time.Time) string {
	start, _ := DayBounds(t)
	return start.Format("2006-01-02")
}

// MonthBounds returns the half-open interval [start, end) of the given
// Jalali month. Month lengths (31/30/29-or-30) and the 12→1 year
// rollover come from constructing first-of-month instants, never from
// hand-rolled leap rules.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if year < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: year %d out of range", common.ErrorValidation, year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d out of range", common.ErrorValidation, month)
	}

	start := ptime.Date(year, ptime.Month(month), 1, 0, 0, 0, 0, tehran)

	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	end := ptime.Date(nextYear, ptime.Month(nextMonth), 1, 0, 0, 0, 0, tehran)

	return start.Time(), end.Time(), nil
}

// ParsePeriodToken parses a Jalali "YYYY-MM" token. Malformed or
// out-of-range input yields common.ErrorValidation.
func ParsePeriodToken(text string) (int, int, error) {
	yearPart, monthPart, found := strings.Cut(strings.TrimSpace(text), "-")
	if !found {
		return 0, 0, fmt.Errorf("%w: expected YYYY-MM, got %q", common.ErrorValidation, text)
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q is not numeric", common.ErrorValidation, yearPart)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q is not numeric", common.ErrorValidation, monthPart)
	}
	if year < 1 {
		return 0, 0, fmt.Errorf("%w: year %d out of range", common.ErrorValidation, year)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d out of range", common.ErrorValidation, month)
	}

	return year, month, nil
}
