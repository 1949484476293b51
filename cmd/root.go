package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/intrack/internal/config"
	"github.com/Tiliavir/intrack/internal/logging"
	"github.com/Tiliavir/intrack/internal/storage"
)

var logLevel string

// Set up once per invocation by PersistentPreRunE.
var (
	base   string
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "intrack",
	Short: "intrack – a file-based internship application tracker",
	Long: `intrack keeps track of internship applications, their tasks and deadlines.
All data is stored as a human-readable JSON file in ~/.intrack/
(override with INTRACK_HOME).

Arguments use the same prefixes as the interactive shell, e.g.
  intrack setdeadline 1 /selecttask 2 /deadline 20/04/2024`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(deleteTaskCmd)
	rootCmd.AddCommand(setDeadlineCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(calendarCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()

	var err error
	base, err = storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err = config.Load(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	l, err := logging.New(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger = l
	logger.Debug("configuration loaded", zap.String("base", base), zap.String("level", level))
	return nil
}
