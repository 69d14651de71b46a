package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run one timed study session (p = pause, r = resume, s = stop)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp(cmd)
		if err := app.Init(); err != nil {
			return err
		}
		_, err := app.StartSession()
		return err
	},
}
