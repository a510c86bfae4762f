package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quote-crm/backend/internal/infra/spreadsheet"
)

func newImportCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import quotes from an .xlsx, .csv or .json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := spreadsheet.Read(args[0], f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			res, err := s.app.Book.Import(cmd.Context(), rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows: %d new, %d updated (%d quotes total)\n",
				res.Rows, res.Created, res.Updated, res.Total)
			return nil
		},
	}
}
