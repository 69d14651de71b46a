package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsLimit int

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "max number of sessions to list")
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded study sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		app := newApp(cmd)
		if err := app.Init(); err != nil {
			return err
		}

		sessions, err := app.Sessions(sessionsLimit)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions yet — run 'studytrack start' first")
			return nil
		}

		fmt.Fprintf(out, "%-6s %-12s %s\n", "ID", "DATE", "MINUTES")
		fmt.Fprintln(out, "─────────────────────────────")
		for _, s := range sessions {
			fmt.Fprintf(out, "%-6d %-12s %.2f\n", s.ID, s.Date, s.DurationMinutes)
		}
		return nil
	},
}
