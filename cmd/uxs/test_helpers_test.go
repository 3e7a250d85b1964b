package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/session"
)

// runUxs executes the root command once with captured output streams.
func runUxs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	var errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func tempSessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.sqlite")
}

// loadSessionState reopens a session database the way a fresh process
// would, so tests observe what actually persisted.
func loadSessionState(t *testing.T, path string) session.State {
	t.Helper()
	store, err := session.Open(path)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	defer store.Close()
	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return state
}

func fullStackArgs(sessionPath string) []string {
	return []string{
		"evaluate", "--session", sessionPath,
		"--frame", "frame-hex650",
		"--propulsion", "prop-4006-6",
		"--battery", "bat-6s-5000",
		"--compute", "cpu-cm4-carrier",
		"--radio", "radio-mesh-24",
	}
}
