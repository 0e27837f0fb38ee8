// Command ticketctl is a terminal client for the ticket board.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/pkg/board"
	"github.com/spf13/pflag"
)

const usage = `ticketctl: terminal client for the ticket board.

Usage:
  ticketctl [flags] <command> [args]

Commands:
  dashboard            list tickets with stats (filters: --search --type --status --sort --desc)
  kanban               show the three-column board
  cycle <id>           advance a ticket to its next status
  move <id> <status>   set a ticket's status (TO_DO, IN_PROGRESS, DONE)
  login                check credentials given by --email and --password

Flags:
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		server   string
		email    string
		password string
		view     = board.NewView()
		sortBy   string
		desc     bool
	)

	flagSet := pflag.NewFlagSet("ticketctl", pflag.ContinueOnError)
	flagSet.StringVar(&server, "server", envOr("IFRIT_API_URL", "http://localhost:3000"), "API base URL")
	flagSet.StringVar(&email, "email", "", "account email (login)")
	flagSet.StringVar(&password, "password", "", "account password (login)")
	flagSet.StringVar(&view.Search, "search", "", "case-insensitive title filter")
	flagSet.StringVar(&view.TypeID, "type", board.All, "ticket type id filter")
	flagSet.StringVar(&view.Status, "status", board.All, "status filter")
	flagSet.StringVar(&sortBy, "sort", string(board.SortDueDate), "sort field: title, priority, status, due_date, type_id, created_at")
	flagSet.BoolVar(&desc, "desc", false, "sort descending")
	flagSet.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	view.SortField = board.SortField(sortBy)
	if desc {
		view.SortDir = board.Desc
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		flagSet.Usage()
		return fmt.Errorf("missing command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := board.NewClient(server)

	switch rest[0] {
	case "dashboard":
		tickets, err := client.Tickets(ctx)
		if err != nil {
			return err
		}
		types, err := client.TicketTypes(ctx)
		if err != nil {
			return err
		}
		fmt.Println(renderDashboard(view.Apply(tickets), board.ComputeStats(tickets, time.Now()), types))
	case "kanban":
		tickets, err := client.Tickets(ctx)
		if err != nil {
			return err
		}
		types, err := client.TicketTypes(ctx)
		if err != nil {
			return err
		}
		fmt.Println(renderKanban(board.Kanban(tickets, types, time.Now())))
	case "cycle":
		if len(rest) != 2 {
			return fmt.Errorf("usage: ticketctl cycle <id>")
		}
		next, err := client.CycleStatus(ctx, rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", rest[1], next)
	case "move":
		if len(rest) != 3 {
			return fmt.Errorf("usage: ticketctl move <id> <status>")
		}
		status := ticket.Status(rest[2])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", rest[2])
		}
		if err := client.MoveTo(ctx, rest[1], status); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", rest[1], status)
	case "login":
		if email == "" || password == "" {
			return fmt.Errorf("--email and --password are required")
		}
		u, err := client.Login(ctx, email, password)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s <%s> (%s)\n", u.Pseudo, u.Email, u.Role)
	default:
		flagSet.Usage()
		return fmt.Errorf("unknown command %q", rest[0])
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
