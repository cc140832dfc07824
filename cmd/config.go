package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/config"
)

var (
	configNotifications string
	configSound         string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the configuration file",
	Long: `Show the configuration file and its values. Use --notifications and
--sound to switch desktop alerts and the completion chime on or off.

Work and break minutes in the file only seed a fresh timer; use
"tomato set" to change the lengths of the current timer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		changed := false

		if cmd.Flags().Changed("notifications") {
			v, err := parseOnOff(configNotifications)
			if err != nil {
				return fmt.Errorf("invalid --notifications: %w", err)
			}
			cfg.Notifications.Enabled = v
			changed = true
		}
		if cmd.Flags().Changed("sound") {
			v, err := parseOnOff(configSound)
			if err != nil {
				return fmt.Errorf("invalid --sound: %w", err)
			}
			cfg.Notifications.Sound = v
			changed = true
		}

		out := cmd.OutOrStdout()
		if changed {
			if err := config.Save(app.configPath, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(out, "✅ Configuration saved.")
		}

		printConfig(out, app.configPath, cfg)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configNotifications, "notifications", "", "Desktop notifications: on or off")
	configCmd.Flags().StringVar(&configSound, "sound", "", "Completion chime: on or off")
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config file:    %s\n", path)
	fmt.Fprintf(w, "  Data dir:       %s\n", cfg.Storage.DataDir)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Work minutes:   %d\n", cfg.Timer.WorkMinutes)
	fmt.Fprintf(w, "  Break minutes:  %d\n", cfg.Timer.BreakMinutes)
	fmt.Fprintf(w, "  Notifications:  %s\n", onOff(cfg.Notifications.Enabled))
	fmt.Fprintf(w, "  Sound:          %s\n", onOff(cfg.Notifications.Sound))
	fmt.Fprintf(w, "  Log level:      %s\n", cfg.Log.Level)
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%q: must be on or off", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
