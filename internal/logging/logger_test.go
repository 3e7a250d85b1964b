package logging

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error", "DEBUG"} {
		if _, err := New(level); err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestDebugEnablesVerbose(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !log.V(1).Enabled() {
		t.Fatal("debug logger should enable V(1)")
	}
	log, err = New("error")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if log.V(1).Enabled() {
		t.Fatal("error logger should not enable V(1)")
	}
}
