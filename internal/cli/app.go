package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sandeepkv93/shoplist/internal/config"
	"github.com/sandeepkv93/shoplist/internal/ident"
	"github.com/sandeepkv93/shoplist/internal/intent"
	"github.com/sandeepkv93/shoplist/internal/logging"
	"github.com/sandeepkv93/shoplist/internal/seed"
	"github.com/sandeepkv93/shoplist/internal/storage"
	"github.com/sandeepkv93/shoplist/internal/store"
)

// session is one wired instance: store, dispatcher and the recorder they
// render into.
type session struct {
	Store      *store.Store
	Dispatcher *intent.Dispatcher
	Screen     *intent.Recorder
	Logger     *slog.Logger
	closers    []func() error
}

func openSession(ctx context.Context, cfg config.RuntimeConfig) (*session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	s := &session{}
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s.Logger = logger
	s.closers = append(s.closers, closeLog)

	repo, err := s.openRepository(cfg.Backend)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	ids, err := ident.New(cfg.IDScheme)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	st, err := store.New(repo, ids)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	entries, err := seed.Load(cfg.SeedFile)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := st.Seed(ctx, entries); err != nil {
		_ = s.Close()
		return nil, err
	}

	s.Store = st
	s.Screen = intent.NewRecorder()
	s.Dispatcher, err = intent.NewDispatcher(st, s.Screen, logger, intent.Policy{
		TrimInput:        cfg.TrimInput,
		RejectBlankNames: cfg.RejectBlankNames,
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := s.Dispatcher.Render(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	logger.Info("session started",
		slog.String("backend", cfg.Backend),
		slog.String("ids", cfg.IDScheme),
		slog.Int("seed_items", len(entries)),
	)
	return s, nil
}

func (s *session) openRepository(backend string) (storage.Repository, error) {
	switch backend {
	case config.BackendSQLite:
		repo, err := storage.OpenSQLite(storage.MemoryDSN)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, repo.Close)
		return repo, nil
	case config.BackendMemory, "":
		return storage.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
