package ticket

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DueDateLayout is the wire format of ticket due dates (DD-MM-YYYY).
const DueDateLayout = "02-01-2006"

var (
	dueDatePattern    = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	ErrInvalidDueDate = errors.New("due date must use the DD-MM-YYYY format")
)

// ParseDueDate parses a DD-MM-YYYY string, surrounding spaces ignored, into midnight UTC of that day.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dueDatePattern.MatchString(s) {
		return time.Time{}, ErrInvalidDueDate
	}
	t, err := time.Parse(DueDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return t, nil
}

// FormatDueDate renders a stored due date in wire format, nil stays nil.
func FormatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DueDateLayout)
	return &s
}

// ValidDueDate reports whether s is a well-formed, existing calendar date.
func ValidDueDate(s string) bool {
	_, err := ParseDueDate(s)
	return err == nil
}
