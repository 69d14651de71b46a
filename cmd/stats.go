package cmd

import (
	"fmt"

	"studytrack/internal/stats"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var statsCopy bool

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsCopy, "copy", false, "copy the report to the clipboard")
}

var statsCmd = &cobra.Command{
	Use:       "stats <week|month|year>",
	Short:     "Show progress against the goal for a period",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(stats.Week), string(stats.Month), string(stats.Year)},
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := stats.ParsePeriod(args[0])
		if err != nil {
			return err
		}

		app := newApp(cmd)
		if err := app.Init(); err != nil {
			return err
		}
		rep, err := app.Report(period)
		if err != nil {
			return err
		}
		if err := rep.Render(cmd.OutOrStdout()); err != nil {
			return err
		}

		if statsCopy {
			if err := clipboard.WriteAll(rep.String()); err != nil {
				log.Warn().Err(err).Msg("clipboard unavailable")
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Report copied to clipboard!")
			}
		}
		return nil
	},
}
