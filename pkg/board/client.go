package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
)

// Cache keys, one per collection.
const (
	TicketsKey     = "tickets"
	TicketTypesKey = "typeTickets"
)

var ErrTicketNotCached = errors.New("ticket not found in the board")

// APIError is a non-2xx reply from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the ticket API and caches the ticket and ticket type collections.
// Session cookies are kept in the underlying resty cookie jar.
type Client struct {
	http *resty.Client

	mu      sync.Mutex
	tickets []Ticket
	types   []TicketType
	fresh   map[string]bool
	gen     map[string]uint64
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
		fresh: make(map[string]bool),
		gen:   make(map[string]uint64),
	}
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			return &APIError{Status: resp.StatusCode(), Message: resp.String()}
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if resp.IsError() || !env.Success {
		return &APIError{Status: resp.StatusCode(), Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s data: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (user.PublicUser, error) {
	var u user.PublicUser
	err := c.call(ctx, http.MethodPost, "/auth/login", user.LoginInput{Email: email, Password: password}, &u)
	return u, err
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.call(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.Invalidate(TicketsKey)
	c.Invalidate(TicketTypesKey)
	return err
}

// Refresh rotates the session using the refresh cookie held in the jar.
func (c *Client) Refresh(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/auth/refresh", nil, nil)
}

func (c *Client) Me(ctx context.Context) (user.PublicUser, error) {
	var u user.PublicUser
	err := c.call(ctx, http.MethodGet, "/auth/me", nil, &u)
	return u, err
}

// Invalidate marks a cached collection stale so the next read refetches it.
// A fetch already in flight for key will not mark it fresh again.
func (c *Client) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fresh, key)
	c.gen[key]++
}

// Tickets returns the cached ticket collection, fetching it when stale.
func (c *Client) Tickets(ctx context.Context) ([]Ticket, error) {
	c.mu.Lock()
	if c.fresh[TicketsKey] {
		out := append([]Ticket(nil), c.tickets...)
		c.mu.Unlock()
		return out, nil
	}
	gen := c.gen[TicketsKey]
	c.mu.Unlock()

	var list []Ticket
	if err := c.call(ctx, http.MethodGet, "/tickets", nil, &list); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen[TicketsKey] == gen {
		c.tickets = list
		c.fresh[TicketsKey] = true
	}
	c.mu.Unlock()
	return append([]Ticket(nil), list...), nil
}

// TicketTypes returns the ticket types. Once fetched they stay cached for the session.
func (c *Client) TicketTypes(ctx context.Context) ([]TicketType, error) {
	c.mu.Lock()
	if c.fresh[TicketTypesKey] {
		out := append([]TicketType(nil), c.types...)
		c.mu.Unlock()
		return out, nil
	}
	gen := c.gen[TicketTypesKey]
	c.mu.Unlock()

	var list []TicketType
	if err := c.call(ctx, http.MethodGet, "/type-tickets", nil, &list); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen[TicketTypesKey] == gen {
		c.types = list
		c.fresh[TicketTypesKey] = true
	}
	c.mu.Unlock()
	return append([]TicketType(nil), list...), nil
}

func (c *Client) CreateTicket(ctx context.Context, in TicketInput) (string, error) {
	var out ticket.IDDTO
	if err := c.call(ctx, http.MethodPost, "/tickets", in, &out); err != nil {
		return "", err
	}
	c.Invalidate(TicketsKey)
	return out.ID, nil
}

func (c *Client) UpdateTicket(ctx context.Context, id string, in TicketInput) error {
	if err := c.call(ctx, http.MethodPut, "/tickets/"+id, in, nil); err != nil {
		return err
	}
	c.Invalidate(TicketsKey)
	return nil
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	if err := c.call(ctx, http.MethodDelete, "/tickets/"+id, nil, nil); err != nil {
		return err
	}
	c.Invalidate(TicketsKey)
	return nil
}

func (c *Client) find(ctx context.Context, id string) (Ticket, error) {
	tickets, err := c.Tickets(ctx)
	if err != nil {
		return Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return Ticket{}, ErrTicketNotCached
}

// MoveTo sets the ticket's status, resending every other field unchanged.
func (c *Client) MoveTo(ctx context.Context, id string, status ticket.Status) error {
	t, err := c.find(ctx, id)
	if err != nil {
		return err
	}
	in := InputFrom(t)
	in.Status = status
	return c.UpdateTicket(ctx, id, in)
}

// CycleStatus advances the ticket to its next status and returns it.
func (c *Client) CycleStatus(ctx context.Context, id string) (ticket.Status, error) {
	t, err := c.find(ctx, id)
	if err != nil {
		return "", err
	}
	next := NextStatus(t.Status)
	in := InputFrom(t)
	in.Status = next
	if err := c.UpdateTicket(ctx, id, in); err != nil {
		return "", err
	}
	return next, nil
}
