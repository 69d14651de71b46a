package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print the study journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).ReadJournal()
	},
}

var journalAddCmd = &cobra.Command{
	Use:   "add \"what you studied\"",
	Short: "Append a note to the journal without timing a session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note := strings.Join(args, " ")
		if err := newApp(cmd).AddNote(note); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Note saved to journal")
		return nil
	},
}
