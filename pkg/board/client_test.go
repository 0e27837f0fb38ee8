package board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu      sync.Mutex
	calls   map[string]int
	tickets []Ticket
	updates []TicketInput
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   status < 400,
		"message":   message,
		"data":      data,
		"timestamp": "2025-01-01T00:00:00.000Z",
	})
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[r.Method+" "+r.URL.Path]++

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "tok", Path: "/", HttpOnly: true})
		writeEnvelope(w, http.StatusOK, "Login successful", map[string]string{"id": "u1", "email": "jane@example.com", "pseudo": "jane", "role": "USER"})
	case r.Method == http.MethodGet && r.URL.Path == "/auth/me":
		if c, err := r.Cookie("accessToken"); err != nil || c.Value != "tok" {
			writeEnvelope(w, http.StatusUnauthorized, "Access token missing", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "User fetched", map[string]string{"id": "u1", "pseudo": "jane"})
	case r.Method == http.MethodGet && r.URL.Path == "/tickets":
		writeEnvelope(w, http.StatusOK, "Tickets fetched", f.tickets)
	case r.Method == http.MethodGet && r.URL.Path == "/type-tickets":
		writeEnvelope(w, http.StatusOK, "Ticket types fetched", []TicketType{{ID: "t1", Name: "incident"}})
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/tickets/"):
		var in TicketInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "Invalid input", nil)
			return
		}
		f.updates = append(f.updates, in)
		id := strings.TrimPrefix(r.URL.Path, "/tickets/")
		for i := range f.tickets {
			if f.tickets[i].ID == id {
				f.tickets[i].Status = in.Status
			}
		}
		writeEnvelope(w, http.StatusOK, "Ticket updated", map[string]string{"id": id})
	case r.Method == http.MethodDelete && r.URL.Path == "/tickets/missing":
		writeEnvelope(w, http.StatusNotFound, "Ticket not found", nil)
	default:
		writeEnvelope(w, http.StatusNotFound, "no route", nil)
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeAPI) sentUpdates() []TicketInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TicketInput(nil), f.updates...)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls: make(map[string]int),
		tickets: []Ticket{
			{ID: "a", Title: "Printer", Description: "jam", Status: ticket.StatusToDo, Priority: ticket.PriorityHigh, DueDate: strp("2025-12-31"), TypeID: "t1"},
			{ID: "b", Title: "VPN", Description: "down", Status: ticket.StatusDone, Priority: ticket.PriorityLow, TypeID: "t1"},
		},
	}
}

func TestClientLoginKeepsSessionCookie(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.Me(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	u, err := c.Login(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jane", u.Pseudo)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
}

func TestClientCachesCollections(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.Tickets(ctx)
		require.NoError(t, err)
		_, err = c.TicketTypes(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, api.count("GET /tickets"))
	assert.Equal(t, 1, api.count("GET /type-tickets"))

	next, err := c.CycleStatus(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, next)

	tickets, err := c.Tickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.count("GET /tickets"))
	assert.Equal(t, ticket.StatusInProgress, tickets[0].Status)

	_, err = c.TicketTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("GET /type-tickets"))
}

func TestClientMoveToSendsFullRecord(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.MoveTo(ctx, "a", ticket.StatusDone))
	updates := api.sentUpdates()
	require.Len(t, updates, 1)
	sent := updates[0]
	assert.Equal(t, "Printer", sent.Title)
	assert.Equal(t, "jam", sent.Description)
	assert.Equal(t, ticket.PriorityHigh, sent.Priority)
	assert.Equal(t, ticket.StatusDone, sent.Status)
	assert.Equal(t, "t1", sent.TypeID)
	require.NotNil(t, sent.DueDate)
	assert.Equal(t, "31-12-2025", *sent.DueDate)

	next, err := c.CycleStatus(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusToDo, next)
	updates = api.sentUpdates()
	require.Len(t, updates, 2)
	assert.Nil(t, updates[1].DueDate)

	assert.ErrorIs(t, c.MoveTo(ctx, "zzz", ticket.StatusDone), ErrTicketNotCached)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.DeleteTicket(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Ticket not found", apiErr.Message)
}

func TestClientDiscardsFetchOverlappingMutation(t *testing.T) {
	api := newFakeAPI()
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hold := false
		if r.Method == http.MethodGet && r.URL.Path == "/tickets" {
			once.Do(func() { hold = true })
		}
		if !hold {
			api.ServeHTTP(w, r)
			return
		}
		// served from a snapshot, outside api's call counter
		api.mu.Lock()
		snapshot := append([]Ticket(nil), api.tickets...)
		api.mu.Unlock()
		close(started)
		<-release
		writeEnvelope(w, http.StatusOK, "Tickets fetched", snapshot)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	fetched := make(chan error, 1)
	go func() {
		_, err := c.Tickets(ctx)
		fetched <- err
	}()
	<-started

	in := TicketInput{Title: "Printer", Description: "jam", Priority: ticket.PriorityHigh, Status: ticket.StatusDone, TypeID: "t1"}
	require.NoError(t, c.UpdateTicket(ctx, "a", in))

	close(release)
	require.NoError(t, <-fetched)

	tickets, err := c.Tickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("GET /tickets"))
	assert.Equal(t, ticket.StatusDone, tickets[0].Status)

	// a later fetch with no overlapping mutation is cached again
	_, err = c.Tickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("GET /tickets"))
}
