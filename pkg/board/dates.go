package board

import (
	"strings"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

const frenchDateLayout = "02/01/2006"

// EnsureDDMMYYYY converts ISO timestamps and YYYY-MM-DD dates to DD-MM-YYYY.
// Anything else is returned unchanged.
func EnsureDDMMYYYY(s string) string {
	if s == "" {
		return s
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return s
	}
	if len(parts[0]) == 4 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// ToInputDateFormat converts DD-MM-YYYY to the YYYY-MM-DD form used by date pickers.
func ToInputDateFormat(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) == 3 && len(parts[0]) == 2 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// ParseDue reads a due date in any format EnsureDDMMYYYY accepts.
func ParseDue(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := ticket.ParseDueDate(EnsureDDMMYYYY(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatFR renders a due date as DD/MM/YYYY, or "" when absent or unreadable.
func FormatFR(due *string) string {
	if due == nil {
		return ""
	}
	t, ok := ParseDue(*due)
	if !ok {
		return ""
	}
	return t.Format(frenchDateLayout)
}

// IsOverdue reports whether t is due before the start of now's day and not yet done.
// Tickets without a due date are never overdue.
func IsOverdue(t Ticket, now time.Time) bool {
	if t.Status == ticket.StatusDone || t.DueDate == nil {
		return false
	}
	due, ok := ParseDue(*t.DueDate)
	if !ok {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
