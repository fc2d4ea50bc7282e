package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutoriz/internal/classify"
	"github.com/abhisek/tutoriz/internal/config"
	"github.com/abhisek/tutoriz/internal/learnpath"
	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat [problem]",
	Short: "Work through a problem in the terminal",
	Long:  "Chat starts a tutoring session for one problem and streams the tutor's replies to stdout. Type 'quit' to stop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, strings.Join(args, " "))
	},
}

func init() {
	chatCmd.Flags().String("owner", "", "Learner identifier (defaults to the guest learner)")
	chatCmd.Flags().String("mode", "standard", "Difficulty mode: gentle, standard or challenge")
}

func runChat(cmd *cobra.Command, problemText string) error {
	ctx := cmd.Context()

	// Keep the terminal clean; only warnings and errors surface.
	logger.SetDefault(logger.New(logger.WithLevel(logger.WARN), logger.WithOutput(os.Stderr)))
	cfg := config.Load()

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
		return fmt.Errorf("load snapshot: %w", err)
	}
	var snapData *store.SnapshotData
	if snap != nil {
		snapData = &snap.Data
	}
	masterySvc := mastery.NewService(snapData, eventRepo)

	provider, err := newLLMProvider(ctx, eventRepo)
	if err != nil {
		return err
	}

	orch := tutor.New(tutor.Config{
		Sessions:   session.NewMemoryStore(cfg.SessionTTL),
		Provider:   provider,
		Mastery:    masterySvc,
		Events:     eventRepo,
		Classifier: classify.New(provider),
		MaxTokens:  cfg.MaxTokens,
	})

	in := bufio.NewScanner(os.Stdin)
	if problemText == "" {
		fmt.Print("Problem: ")
		if !in.Scan() {
			return in.Err()
		}
		problemText = strings.TrimSpace(in.Text())
	}

	ownerID, _ := cmd.Flags().GetString("owner")
	mode, _ := cmd.Flags().GetString("mode")

	sess, opening, err := orch.Initialize(ctx, session.Problem{Text: problemText}, session.NormalizeMode(mode), ownerID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	fmt.Printf("\n[%s]\n\ntutor> %s\n", sess.Problem.Type, opening)

	for {
		fmt.Print("\nyou> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		if err := streamReply(cmd, orch, sess.ID, line, ownerID); err != nil {
			fmt.Fprintln(os.Stderr, "tutor unavailable:", err)
			continue
		}

		sig, _, err := orch.DetectCompletion(ctx, sess.ID, ownerID)
		if err == nil && sig.IsCompleted {
			fmt.Println("\nProblem solved — well done!")
			break
		}
	}

	if err := orch.Clear(ctx, sess.ID, ownerID); err != nil && !errors.Is(err, tutor.ErrSessionNotFound) {
		return err
	}

	// Carry existing learning paths through unchanged so the snapshot
	// written here doesn't drop them.
	saveSnapshot(ctx, st, masterySvc, restorePaths(snap), cfg.SnapshotKeep, logger.Default())
	return nil
}

// restorePaths rebuilds a path registry from a snapshot, which may be nil.
func restorePaths(snap *store.Snapshot) *learnpath.Registry {
	registry := learnpath.NewRegistry()
	if snap != nil {
		for _, d := range snap.Data.Paths {
			registry.Put(learnpath.FromData(d))
		}
	}
	return registry
}

// streamReply prints tutor fragments as they arrive.
func streamReply(cmd *cobra.Command, orch *tutor.Orchestrator, sessionID, message, ownerID string) error {
	stream, err := orch.ProcessTurnStreaming(cmd.Context(), sessionID, message, "", ownerID)
	if err != nil {
		return err
	}
	defer stream.Close()

	fmt.Print("\ntutor> ")
	for {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			fmt.Println()
			return err
		}
		fmt.Print(frag)
	}
}
