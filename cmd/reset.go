package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation check")
}

func runReset(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	if ok, _ := cmd.Flags().GetBool("yes"); !ok {
		fmt.Printf("This deletes all events, snapshots and mastery records in %s.\nRe-run with --yes to confirm.\n", dbPath)
		return nil
	}

	// SQLite keeps WAL sidecar files next to the database.
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	fmt.Println("Learner data deleted.")
	return nil
}
