package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gyaneshwarpardhi/fintrack/internal/api"
	"github.com/gyaneshwarpardhi/fintrack/internal/config"
	"github.com/gyaneshwarpardhi/fintrack/internal/store"
)

func main() {
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides PORT and server.addr)")
	cfgPath := flag.String("config", "configs/fintrack.yaml", "Path to YAML config")
	flag.Parse()

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()

	// ── Logging ──────────────────────────────────────────────────────────────
	level := new(slog.LevelVar)
	lvl, _ := config.ParseLevel(cfg.Log.Level)
	level.Set(lvl)
	slog.SetDefault(slog.New(newLogHandler(os.Stdout, cfg.Log.Format, level)))

	// ── Stores ───────────────────────────────────────────────────────────────
	txs := store.NewTransactionStore()
	evs := store.NewEventStore()

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.AppConfig) {
		if l, err := config.ParseLevel(newCfg.Log.Level); err == nil {
			level.Set(l)
		}
		if restartNeeded(cfg, newCfg) {
			slog.Warn("server settings changed; restart to apply them")
		}
		slog.Info("config reloaded", "version", newCfg.Version, "level", newCfg.Log.Level)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	addr := listenAddr(*addrFlag, os.Getenv("PORT"), cfg.Server.Addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.New(txs, evs, loader),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutMs) * time.Millisecond,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutMs) * time.Millisecond,
	}

	go func() {
		slog.Info("server starting", "addr", addr, "legacy_routes", cfg.Server.LegacyRoutesEnabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	slog.Info("goodbye", "transactions", txs.Len(), "events", evs.Len())
}

func newLogHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// listenAddr picks the first of: flag, PORT env, config.
func listenAddr(flagAddr, port, cfgAddr string) string {
	switch {
	case flagAddr != "":
		return flagAddr
	case port != "":
		return ":" + port
	default:
		return cfgAddr
	}
}

// restartNeeded reports whether settings fixed at startup differ.
func restartNeeded(old, cur *config.AppConfig) bool {
	return old.Server.Addr != cur.Server.Addr ||
		old.Server.ReadTimeoutMs != cur.Server.ReadTimeoutMs ||
		old.Server.WriteTimeoutMs != cur.Server.WriteTimeoutMs ||
		old.Server.IdleTimeoutMs != cur.Server.IdleTimeoutMs ||
		old.Server.LegacyRoutesEnabled() != cur.Server.LegacyRoutesEnabled() ||
		old.Log.Format != cur.Log.Format ||
		!slices.Equal(old.Server.CORSOrigins, cur.Server.CORSOrigins)
}
