package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/pkg/board"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(22)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(36)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8")).
			Width(34)
)

var priorityColors = map[ticket.Priority]lipgloss.Color{
	ticket.PriorityLow:    lipgloss.Color("10"),
	ticket.PriorityMedium: lipgloss.Color("11"),
	ticket.PriorityHigh:   lipgloss.Color("9"),
}

func priorityBadge(p ticket.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColors[p]).Render(string(p))
}

func renderDashboard(tickets []board.Ticket, stats board.Stats, types []board.TicketType) string {
	names := make(map[string]string, len(types))
	for _, tt := range types {
		names[tt.ID] = tt.Name
	}

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("Total Tickets\n%d", stats.Total)),
		statStyle.Render(fmt.Sprintf("In Progress\n%d", stats.InProgress)),
		statStyle.Render(overdueStyle.Render(fmt.Sprintf("Overdue\n%d", stats.Overdue))),
	)

	var b strings.Builder
	b.WriteString(boxes)
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-36s  %-30s  %-12s  %-8s  %-11s  %s", "ID", "TITLE", "STATUS", "PRIORITY", "DUE", "TYPE")))
	b.WriteString("\n")
	if len(tickets) == 0 {
		b.WriteString(mutedStyle.Render("no tickets"))
		return b.String()
	}
	for _, t := range tickets {
		due := board.FormatFR(t.DueDate)
		if due == "" {
			due = "-"
		}
		title := t.Title
		if r := []rune(title); len(r) > 30 {
			title = string(r[:29]) + "…"
		}
		fmt.Fprintf(&b, "%-36s  %-30s  %-12s  %-8s  %-11s  %s\n",
			t.ID, title, t.Status, priorityBadge(t.Priority), due, names[t.TypeID])
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderKanban(cols []board.Column) string {
	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		var b strings.Builder
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", col.Title, col.Count)))
		if len(col.Cards) == 0 {
			b.WriteString("\n" + mutedStyle.Render("Aucun ticket"))
		}
		for _, card := range col.Cards {
			due := card.DueDate
			if due != "" {
				due = "Échéance: " + due
				if card.Overdue {
					due = overdueStyle.Render(due)
				}
			}
			body := fmt.Sprintf("%s\n%s\n[%s] %s\n%s",
				card.Title, mutedStyle.Render(card.Description), card.TypeName, priorityBadge(card.Priority), due)
			b.WriteString("\n" + cardStyle.Render(body))
		}
		rendered = append(rendered, columnStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
