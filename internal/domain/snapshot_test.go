package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestSnapshot_Validate(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{"idle", DefaultTimerState().Snapshot(), false},
		{"running", Snapshot{Active: true, Mode: ModeBreak, StartTime: &now, TotalSeconds: 300, WorkMinutes: 25, BreakMinutes: 5}, false},
		{"unknown mode", Snapshot{Mode: "nap"}, true},
		{"negative minutes", Snapshot{Mode: ModeWork, WorkMinutes: -1}, true},
		{"negative total", Snapshot{Mode: ModeWork, TotalSeconds: -1}, true},
		{"minutes above one day", Snapshot{Mode: ModeWork, WorkMinutes: MaxDurationMinutes + 1}, true},
		{"total above one day", Snapshot{Active: true, Mode: ModeWork, StartTime: &now, TotalSeconds: MaxDurationMinutes*60 + 1, WorkMinutes: 25, BreakMinutes: 5}, true},
		{"active without start", Snapshot{Active: true, Mode: ModeWork}, true},
		{"start without active", Snapshot{Mode: ModeWork, StartTime: &now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrCorruptSnapshot) {
				t.Errorf("Validate() error = %v, want ErrCorruptSnapshot", err)
			}
		})
	}
}

func TestSnapshot_Equal(t *testing.T) {
	a := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	b := a.In(time.FixedZone("CET", 3600))

	s1 := Snapshot{Active: true, Mode: ModeWork, StartTime: &a, TotalSeconds: 1500}
	s2 := Snapshot{Active: true, Mode: ModeWork, StartTime: &b, TotalSeconds: 1500}
	if !s1.Equal(s2) {
		t.Error("same instant in different zones should be equal")
	}

	s3 := s2
	s3.TotalSeconds = 1499
	if s1.Equal(s3) {
		t.Error("different totals should not be equal")
	}

	if s1.Equal(Snapshot{Active: true, Mode: ModeWork, TotalSeconds: 1500}) {
		t.Error("nil and non-nil start times should not be equal")
	}
}

func TestSnapshot_JSONFieldNames(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	snap := Snapshot{Active: true, Mode: ModeWork, StartTime: &now, TotalSeconds: 1500, WorkMinutes: 25, BreakMinutes: 5}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"is_active", "mode", "start_time", "total_duration_seconds", "work_duration_minutes", "break_duration_minutes"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}

func TestMode(t *testing.T) {
	if ModeWork.Next() != ModeBreak || ModeBreak.Next() != ModeWork {
		t.Error("Next() should alternate work and break")
	}
	if _, err := ParseMode("lunch"); err == nil {
		t.Error("ParseMode(lunch) should fail")
	}
	if m, err := ParseMode("break"); err != nil || m != ModeBreak {
		t.Errorf("ParseMode(break) = %v, %v", m, err)
	}
	if ModeWork.CompletionMessage() != "Time for a break!" {
		t.Errorf("work completion message = %q", ModeWork.CompletionMessage())
	}
	if ModeBreak.CompletionMessage() != "Break is over. Back to work!" {
		t.Errorf("break completion message = %q", ModeBreak.CompletionMessage())
	}
}
