package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quote-crm/backend/internal/domain/quote/pdf"
)

func newExportCmd(s *state) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export one quote as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := s.app.Book.Get(args[0])
			if err != nil {
				return err
			}
			b, err := s.app.PDF.Generate(q)
			if err != nil {
				return fmt.Errorf("generating pdf: %w", err)
			}
			path := filepath.Join(outDir, pdf.FileName(q))
			if err := os.WriteFile(path, b, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the PDF to")
	return cmd
}
