package board

import (
	"sort"
	"strings"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

type SortField string

const (
	SortTitle     SortField = "title"
	SortPriority  SortField = "priority"
	SortStatus    SortField = "status"
	SortDueDate   SortField = "due_date"
	SortType      SortField = "type_id"
	SortCreatedAt SortField = "created_at"
)

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// All disables the type or status filter.
const All = "all"

// View holds the dashboard filters and sort order.
type View struct {
	Search    string
	TypeID    string
	Status    string
	SortField SortField
	SortDir   SortDir
}

// NewView returns the dashboard defaults: no filter, due date ascending.
func NewView() View {
	return View{TypeID: All, Status: All, SortField: SortDueDate, SortDir: Asc}
}

// ToggleSort flips the direction when field is already the sort key, otherwise sorts by
// field ascending.
func (v *View) ToggleSort(field SortField) {
	if v.SortField == field {
		if v.SortDir == Asc {
			v.SortDir = Desc
		} else {
			v.SortDir = Asc
		}
		return
	}
	v.SortField = field
	v.SortDir = Asc
}

func (v View) matches(t Ticket) bool {
	if v.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(v.Search)) {
		return false
	}
	if v.TypeID != "" && v.TypeID != All && t.TypeID != v.TypeID {
		return false
	}
	if v.Status != "" && v.Status != All && string(t.Status) != v.Status {
		return false
	}
	return true
}

// Apply filters tickets and returns them sorted. The input slice is left untouched.
func (v View) Apply(tickets []Ticket) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if v.matches(t) {
			out = append(out, t)
		}
	}
	if v.SortField == "" {
		return out
	}

	desc := v.SortDir == Desc
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := sortKey(out[i], v.SortField)
		b, bok := sortKey(out[j], v.SortField)
		// missing values go last whatever the direction
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		}
		c := a.compare(b)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

type key struct {
	s string
	n int64
}

func (k key) compare(o key) int {
	if k.n != o.n {
		if k.n < o.n {
			return -1
		}
		return 1
	}
	return strings.Compare(k.s, o.s)
}

func statusIndex(s ticket.Status) int {
	for i, st := range ticket.Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// sortKey returns the comparable value of field, ok=false when the ticket has none.
func sortKey(t Ticket, field SortField) (key, bool) {
	switch field {
	case SortTitle:
		return key{s: t.Title}, true
	case SortPriority:
		r := t.Priority.Rank()
		return key{n: int64(r)}, r >= 0
	case SortStatus:
		i := statusIndex(t.Status)
		return key{n: int64(i)}, i >= 0
	case SortDueDate:
		if t.DueDate == nil {
			return key{}, false
		}
		d, ok := ParseDue(*t.DueDate)
		return key{n: d.Unix()}, ok
	case SortType:
		return key{s: t.TypeID}, t.TypeID != ""
	case SortCreatedAt:
		return key{n: t.CreatedAt.UnixNano()}, !t.CreatedAt.IsZero()
	}
	return key{}, false
}
