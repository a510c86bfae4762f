package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"quote-crm/backend/internal/app/config"
	apphttp "quote-crm/backend/internal/app/http"
	"quote-crm/backend/internal/domain/quote/book"
	"quote-crm/backend/internal/domain/quote/pdf"
	pdfgen "quote-crm/backend/internal/domain/quote/pdf/gofpdf"
	"quote-crm/backend/internal/infra/db/postgres"
	"quote-crm/backend/internal/infra/db/sqlite"
	"quote-crm/backend/internal/infra/storage"
)

// App is the wired process: configuration, the quote book and its storage.
type App struct {
	Cfg   config.Config
	Book  *book.Book
	PDF   pdf.Generator
	close func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := storage.New(kv)

	b, err := book.Open(ctx, store.Load, store.Save)
	if err != nil {
		closeKV()
		return nil, err
	}
	log.Info().Str("driver", cfg.StorageDriver).Int("quotes", len(b.List())).Msg("quote book loaded")

	return &App{
		Cfg:   cfg,
		Book:  b,
		PDF:   pdfgen.New(cfg.PDFFontDir),
		close: closeKV,
	}, nil
}

func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

// Serve runs the HTTP API until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(a.Cfg, a.Book, a.PDF),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.Cfg.HTTPAddr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func openKV(ctx context.Context, cfg config.Config) (storage.KV, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		return db, db.Close, nil
	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil
	case config.DriverSQLite, "":
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		return db, func() {
			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("closing sqlite")
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
