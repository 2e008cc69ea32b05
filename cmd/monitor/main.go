package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
	"github.com/kbdware/pocket-guard/go-monitor/internal/deviceshell"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
	"github.com/kbdware/pocket-guard/go-monitor/internal/monitor"
)

// #region main
func main() {
	dbPath := envOr("POCKETGUARD_DB", "pocket_guard.db")
	shellAddr := envOr("POCKETGUARD_SHELL_ADDR", "localhost:50061")

	snap := config.FromEnv()
	for _, cfg := range []config.DetectorConfig{snap.Proximity, snap.AmbientLight, snap.Idle} {
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid detector config: %v", err)
		}
	}
	cfgs := config.NewStore(snap)

	store, err := journal.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer store.Close()

	sessionID, err := store.StartSession(time.Now())
	if err != nil {
		log.Fatalf("failed to start session: %v", err)
	}

	shell, err := deviceshell.NewClient(shellAddr)
	if err != nil {
		log.Fatalf("failed to connect to device shell at %s: %v", shellAddr, err)
	}
	defer shell.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := monitor.NewSession(ctx, shell, cfgs, store, monitor.DefaultOptions())
	if err != nil {
		log.Fatalf("failed to wire session: %v", err)
	}

	log.Printf("pocket guard monitor ready, session %s", sessionID)
	log.Printf("  DB: %s | Shell: %s", dbPath, shellAddr)
	if enabled, err := shell.FeatureEnabled(ctx); err == nil {
		log.Printf("  always-on display enabled: %v", enabled)
	}
	log.Printf("  proximity: %+v", snap.Proximity)
	log.Printf("  ambient light: %+v", snap.AmbientLight)
	log.Printf("  idle: %+v", snap.Idle)

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("session failed: %v", err)
	}
	log.Println("shutting down")
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
