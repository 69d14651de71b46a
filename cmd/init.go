package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the session database in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		app := newApp(cmd)
		dbPath, journalPath := app.Paths()

		if _, err := os.Stat(dbPath); err == nil {
			fmt.Fprintf(out, "Already initialized: %s exists\n", dbPath)
			return nil
		}

		if err := app.Init(); err != nil {
			return fmt.Errorf("init failed: %w", err)
		}

		fmt.Fprintf(out, "Session database created at %s\n", dbPath)
		fmt.Fprintf(out, "Journal will be written to %s\n", journalPath)
		return nil
	},
}
