package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutoriz/internal/api"
	"github.com/abhisek/tutoriz/internal/classify"
	"github.com/abhisek/tutoriz/internal/config"
	"github.com/abhisek/tutoriz/internal/learnpath"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP tutoring server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, restores learner state from the latest
// snapshot, wires the orchestrator and serves HTTP until interrupted. A
// fresh snapshot is written on shutdown.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg := config.Load()
	logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))))
	log := logger.Default()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		log.Warn("load snapshot: %v", err)
	}
	var snapData *store.SnapshotData
	if snap != nil {
		snapData = &snap.Data
	}
	masterySvc := mastery.NewService(snapData, eventRepo)

	registry := restorePaths(snap)

	sessions := session.NewMemoryStore(cfg.SessionTTL)
	reapCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()
	sessions.StartReaper(reapCtx, cfg.ReapInterval, log)

	provider, err := newLLMProvider(ctx, eventRepo)
	if err != nil {
		return err
	}

	srv := &api.Server{
		Tutor: tutor.New(tutor.Config{
			Sessions:   sessions,
			Provider:   provider,
			Mastery:    masterySvc,
			Events:     eventRepo,
			Classifier: classify.New(provider),
			MaxTokens:  cfg.MaxTokens,
		}),
		Mastery:  masterySvc,
		Paths:    learnpath.New(),
		Registry: registry,
	}

	httpSrv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     srv.Routes(),
		ReadTimeout: 15 * time.Second,
		// Generous write timeout: turn streams stay open while the
		// model produces the reply.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening on %s (db %s)", cfg.Addr, dbPath)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("received %s, shutting down", sig)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown: %v", err)
	}

	saveSnapshot(shutdownCtx, st, masterySvc, registry, cfg.SnapshotKeep, log)
	return nil
}

// newLLMProvider builds the provider from TUTORIZ_* env config, falling
// back to probing the standard provider API key variables.
func newLLMProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("configure LLM provider: %w", err)
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}

// saveSnapshot captures mastery records and learning paths. Failures are
// logged, not fatal: the event log can rebuild solve counts on next start.
func saveSnapshot(ctx context.Context, st *store.Store, masterySvc *mastery.Service, registry *learnpath.Registry, keep int, log *logger.Logger) {
	seq, err := st.Sequence(ctx)
	if err != nil {
		log.Warn("read event sequence: %v", err)
		return
	}

	paths := registry.All()
	data := store.SnapshotData{
		Version: 1,
		Mastery: masterySvc.SnapshotData(),
		Paths:   make([]store.LearningPathData, 0, len(paths)),
	}
	for _, p := range paths {
		data.Paths = append(data.Paths, learnpath.ToData(p))
	}

	snap := &store.Snapshot{Sequence: seq, Timestamp: time.Now(), Data: data}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		log.Warn("save snapshot: %v", err)
		return
	}
	if err := st.SnapshotRepo().Prune(ctx, keep); err != nil {
		log.Warn("prune snapshots: %v", err)
	}
	log.Info("snapshot saved at sequence %d", seq)
}
