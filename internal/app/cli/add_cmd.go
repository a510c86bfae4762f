package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quote-crm/backend/internal/domain/quote"
)

func newAddCmd(s *state) *cobra.Command {
	var (
		currency string
		status   string
	)
	q := quote.Draft(time.Now())

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Currency = quote.ParseCurrency(currency)
			q.Status = quote.ParseStatus(status)
			saved, err := s.app.Book.Save(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.Title, "title", "", "quote title")
	f.StringVar(&q.Customer, "customer", "", "customer name")
	f.StringVar(&q.Contact, "contact", "", "customer contact")
	f.Float64Var(&q.Value, "value", 0, "quote value")
	f.StringVar(&currency, "currency", string(quote.GBP), "GBP, USD or EUR")
	f.Float64Var(&q.Probability, "probability", q.Probability, "win probability (0-100)")
	f.StringVar(&status, "status", string(quote.StatusDraft), "Draft, Sent, Accepted, Declined or Expired")
	f.StringVar(&q.Originator, "originator", "", "quote owner")
	f.StringVar(&q.StartDate, "start", q.StartDate, "start date (YYYY-MM-DD)")
	f.StringVar(&q.ValidUntil, "valid-until", q.ValidUntil, "valid until (YYYY-MM-DD)")
	f.StringVar(&q.Notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}
