package notification

import (
	"testing"

	"github.com/xvierd/tomato/internal/config"
)

type sent struct {
	title, message string
}

func newRecording(cfg *config.NotificationConfig) (*Notifier, *[]sent) {
	var calls []sent
	n := New(cfg)
	n.send = func(title, message string) error {
		calls = append(calls, sent{title, message})
		return nil
	}
	return n, &calls
}

func TestNotifier_Notify(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.NotificationConfig
		want int
	}{
		{"enabled", &config.NotificationConfig{Enabled: true}, 1},
		{"disabled", &config.NotificationConfig{Enabled: false}, 0},
		{"no config", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, calls := newRecording(tt.cfg)
			if err := n.Notify("Work complete", "Time for a break!"); err != nil {
				t.Fatalf("Notify() error = %v", err)
			}
			if len(*calls) != tt.want {
				t.Errorf("sent %d notifications, want %d", len(*calls), tt.want)
			}
		})
	}
}
