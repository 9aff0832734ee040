package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent moods and learning activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, cleanup, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if svcs.ident.Current() == nil {
			fmt.Println("Not signed in. Run `edumood login <email>` first.")
			return nil
		}

		ctx := cmd.Context()
		if err := svcs.journal.Refresh(ctx); err != nil {
			return fmt.Errorf("load mood history: %w", err)
		}
		if err := svcs.progress.Refresh(ctx); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Println("Recent moods:")
		events := svcs.journal.History()
		if len(events) == 0 {
			fmt.Println("  (none)")
		}
		for _, ev := range events {
			fmt.Printf("  %s %-8s %s\n", ev.Emoji, ev.Label, ev.Timestamp.Format("Jan 2 15:04"))
		}

		fmt.Println("\nLearning activity:")
		records := svcs.progress.History()
		if len(records) == 0 {
			fmt.Println("  (none)")
		}
		for _, rec := range records {
			mark := " "
			if rec.Completed {
				mark = "✓"
			}
			fmt.Printf("  %s %s (%s)\n", mark, rec.ContentTitle, rec.ContentType)
		}
		return nil
	},
}
