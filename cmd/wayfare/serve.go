package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wayfare/internal/api"
	"wayfare/internal/cmdlog"
	"wayfare/internal/config"
	"wayfare/internal/logging"
	"wayfare/internal/metrics"
	"wayfare/internal/search"
	"wayfare/internal/store"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(ctx context.Context, args []string) error {
	fs, common := newFlagSet("serve")
	addr := fs.String("addr", "", "listen address (overrides config)")
	snapshot := fs.Bool("snapshot", false, "serve from an in-memory copy of the dataset")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *snapshot {
		cfg.Server.Snapshot = true
	}

	return cmdlog.Run("serve", func() error {
		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.Server.Addr {
			metrics.StartServer(cfg.Metrics.Addr)
		}

		profiles, err := profilesFrom(cfg)
		if err != nil {
			return err
		}
		src, err := serveSource(ctx, cfg, db)
		if err != nil {
			return err
		}
		srv := api.NewServer(search.New(src, profiles), db, cfg.Server.RPS, cfg.Server.Burst)
		hs := &http.Server{Addr: cfg.Server.Addr, Handler: srv.Routes(), ReadHeaderTimeout: 5 * time.Second}

		errc := make(chan error, 1)
		go func() { errc <- hs.ListenAndServe() }()
		logging.Info("api_listening", map[string]any{"addr": cfg.Server.Addr, "db": cfg.Storage.DBPath})

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}
		logging.Info("api_shutdown", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	})
}

// serveSource picks SQL-backed queries or, with server.snapshot, an in-memory
// copy read once at startup.
func serveSource(ctx context.Context, cfg config.Config, db *store.DB) (search.Source, error) {
	if !cfg.Server.Snapshot {
		return db, nil
	}
	snap, err := search.Load(ctx, db)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"rows": len(snap)}
	if len(snap) == 0 {
		logging.Warn("snapshot_empty", fields)
	} else {
		logging.Info("snapshot_loaded", fields)
	}
	return snap, nil
}
