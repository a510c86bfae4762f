package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quote-crm/backend/internal/app"
	"quote-crm/backend/internal/app/config"
	"quote-crm/backend/internal/app/logging"
)

// state is shared by all subcommands. The app is opened lazily in
// PersistentPreRunE so --help never touches storage.
type state struct {
	cfg    config.Config
	app    *app.App
	dbPath string
	driver string
}

// close releases the storage handle if one was opened. It runs whether or
// not the command succeeded.
func (s *state) close() {
	if s.app != nil {
		s.app.Close()
		s.app = nil
	}
}

// Execute runs the command line in args and always closes storage before
// returning.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return execute(ctx, &state{}, args, stdout, stderr)
}

func execute(ctx context.Context, s *state, args []string, stdout, stderr io.Writer) error {
	defer s.close()

	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// newRootCmd builds the "quotecrm" command tree.
func newRootCmd(s *state) *cobra.Command {
	root := &cobra.Command{
		Use:           "quotecrm",
		Short:         "Manage sales quotes: import sheets, edit, export PDFs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if s.driver != "" {
				cfg.StorageDriver = s.driver
			}
			if s.dbPath != "" {
				cfg.SQLitePath = s.dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("opening quote book: %w", err)
			}
			s.cfg = cfg
			s.app = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&s.dbPath, "db", "", "SQLite file (overrides SQLITE_PATH)")
	root.PersistentFlags().StringVar(&s.driver, "storage", "", "storage driver: sqlite, postgres or memory (overrides STORAGE_DRIVER)")

	root.AddCommand(
		newServeCmd(s),
		newListCmd(s),
		newImportCmd(s),
		newExportCmd(s),
		newAddCmd(s),
	)
	return root
}
