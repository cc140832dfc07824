package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/xvierd/tomato/internal/domain"
)

func TestStartCmd(t *testing.T) {
	t.Run("start command structure", func(t *testing.T) {
		if startCmd.Use != "start" {
			t.Errorf("startCmd.Use = %q, want %q", startCmd.Use, "start")
		}
	})

	t.Run("starts a full work interval", func(t *testing.T) {
		env := testEnv(t)

		out, err := runCmd(t, env, "start")
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		if !strings.Contains(out, "Work Time started") {
			t.Errorf("output = %q, want it to mention the started work interval", out)
		}
	})

	t.Run("refuses to start twice", func(t *testing.T) {
		env := testEnv(t)

		if _, err := runCmd(t, env, "start"); err != nil {
			t.Fatalf("first start failed: %v", err)
		}
		_, err := runCmd(t, env, "start")
		if !errors.Is(err, domain.ErrTimerActive) {
			t.Errorf("second start error = %v, want %v", err, domain.ErrTimerActive)
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		env := testEnv(t)

		if _, err := runCmd(t, env, "start", "extra"); err == nil {
			t.Error("start with an argument should fail")
		}
	})
}

func TestPrintTransition(t *testing.T) {
	var b strings.Builder
	state := domain.NewTimerState(25, 5)
	state.SecondsLeft = 330

	printTransition(&b, "🍅", "paused", state)

	want := "🍅 Work Time paused. Remaining: 05:30\n"
	if b.String() != want {
		t.Errorf("printTransition() = %q, want %q", b.String(), want)
	}
}
