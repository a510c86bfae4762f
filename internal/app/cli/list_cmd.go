package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quote-crm/backend/internal/domain/quote"
)

func newListCmd(s *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes := s.app.Book.List()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(quotes)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(quotes)
			case "table", "":
				if len(quotes) == 0 {
					fmt.Fprintln(out, "No quotes yet.")
					return nil
				}
				fmt.Fprintln(out, renderTable(quotes))
				return nil
			}
			return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, yaml")
	return cmd
}

func quoteRow(q quote.Quote) []string {
	return []string{
		q.ID,
		q.Title,
		q.Customer,
		quote.FormatMoney(q.Value, q.Currency),
		statusPill(q.Status),
		approvalPill(q.Approval.State),
		q.StartDate,
	}
}
