package cmd

import (
	"fmt"

	"studytrack/internal/stats"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(goalsCmd)
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List the hour goals for each period",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-8s %-10s %-8s %s\n", "PERIOD", "LABEL", "HOURS", "WINDOW")
		fmt.Fprintln(out, "──────────────────────────────────────")
		for _, g := range stats.Goals() {
			fmt.Fprintf(out, "%-8s %-10s %-8d %s\n", g.Period, g.Label, g.Hours, formatDays(g.Days))
		}
	},
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
