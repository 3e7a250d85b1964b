package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/version"
)

func TestVersionCommandPrintsInfo(t *testing.T) {
	out, _, err := runUxs(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Version:", "GoVersion:", "Platform:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestVersionCommandShort(t *testing.T) {
	out, _, err := runUxs(t, "version", "--short")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := strings.TrimSpace(out), version.Get().Short(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	out, _, err := runUxs(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if info.Version != version.Get().Version || info.GoVersion == "" {
		t.Fatalf("unexpected info: %+v", info)
	}
}
