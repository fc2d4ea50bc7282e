package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show concept mastery statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func init() {
	statsCmd.Flags().String("owner", "", "Learner identifier (defaults to the guest learner)")
}

func runStats(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		fmt.Println("No practice recorded yet.")
		return nil
	}

	ownerID, _ := cmd.Flags().GetString("owner")
	svc := mastery.NewService(&snap.Data, nil)
	records := svc.RecordsFor(ownerID)
	if len(records) == 0 {
		fmt.Println("No practice recorded yet.")
		return nil
	}

	sorted := make([]*mastery.Record, 0, len(records))
	for _, r := range records {
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Mastery > sorted[j].Mastery })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONCEPT\tMASTERY\tATTEMPTED\tSOLVED\tAVG HINTS")
	for _, r := range sorted {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\n", r.Name, r.Mastery, r.ProblemsAttempted, r.ProblemsSolved, r.AvgHintsUsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if needs := svc.NeedingPractice(ownerID, 70); len(needs) > 0 {
		fmt.Println("\nNeeds practice:")
		for _, r := range needs {
			fmt.Printf("  %s (%d)\n", r.Name, r.Mastery)
		}
	}
	return nil
}
