package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"quote-crm/backend/internal/domain/quote"
)

var (
	pillBase = lipgloss.NewStyle().Padding(0, 1)

	statusColors = map[quote.Status]lipgloss.Color{
		quote.StatusDraft:    lipgloss.Color("245"),
		quote.StatusSent:     lipgloss.Color("33"),
		quote.StatusAccepted: lipgloss.Color("34"),
		quote.StatusDeclined: lipgloss.Color("161"),
		quote.StatusExpired:  lipgloss.Color("214"),
	}

	approvalColors = map[quote.ApprovalState]lipgloss.Color{
		quote.ApprovalNotRequired: lipgloss.Color("245"),
		quote.ApprovalRequested:   lipgloss.Color("214"),
		quote.ApprovalApproved:    lipgloss.Color("34"),
		quote.ApprovalDeclined:    lipgloss.Color("161"),
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func statusPill(s quote.Status) string {
	return pillBase.Foreground(statusColors[s]).Render(string(s))
}

func approvalPill(s quote.ApprovalState) string {
	return pillBase.Foreground(approvalColors[s]).Render(string(s))
}

func renderTable(quotes []quote.Quote) string {
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, quoteRow(q))
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "CUSTOMER", "VALUE", "STATUS", "APPROVAL", "START").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
