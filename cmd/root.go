// Package cmd provides the CLI commands for the tomato application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tomato",
	Short: "tomato - a Pomodoro timer for the terminal",
	Long: `tomato is a single work/break countdown timer for the terminal.

Run "tomato" with no arguments to open the timer screen. The timer keeps
its place across restarts, suspends and sleeps: it is always computed from
the wall clock, never from counted ticks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{longRunning: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimerScreen,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = cleanupServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.tomato/tomato.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.tomato/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tomato\nVersion: {{.Version}}\nBuilt: %s (%s)\n", BuildDate, GitCommit))

	// Add subcommands
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// runTimerScreen opens the fullscreen timer.
func runTimerScreen(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	app.timer.Foreground()
	if err := tui.Run(ctx, app.timer, &app.config.Theme); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	// Leaving the screen hides the timer: a running interval keeps its
	// deadline and is reconciled on the next launch.
	app.timer.Background()
	return nil
}
