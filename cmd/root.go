package cmd

import (
	"fmt"
	"os"

	"studytrack/internal/clock"
	"studytrack/internal/config"
	"studytrack/internal/logger"
	"studytrack/internal/menu"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "studytrack",
	Short: "Study-time tracker: time sessions, keep a journal, check progress against goals",
	Long: `studytrack times study sessions with pause and resume, stores their durations
in a local database, appends a short note for each session to a text journal,
and reports progress against fixed weekly, monthly and yearly hour goals.

Run without a subcommand for the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "directory holding the database and journal (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	dir := dataDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	loaded, err := config.Load(dir)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	cfg = loaded

	logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: logger.IsTerminal(os.Stderr),
	})
	log.Debug().Str("db", cfg.DBPath()).Str("journal", cfg.JournalPath()).Msg("config loaded")
	return nil
}

func newApp(cmd *cobra.Command) *menu.App {
	return menu.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), clock.System{})
}
