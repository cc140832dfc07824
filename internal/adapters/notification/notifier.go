// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message string) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, send: desktopNotify}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	return n.send(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}
