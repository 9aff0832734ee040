package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
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

		if err := svcs.progress.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		st := svcs.progress.CompletionStats()
		fmt.Printf("Started:    %d\n", st.Total)
		fmt.Printf("Completed:  %d\n", st.Completed)
		fmt.Printf("Completion: %d%%\n", st.CompletionRate)
		return nil
	},
}
