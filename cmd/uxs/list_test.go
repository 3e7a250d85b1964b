package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
)

func TestListCommandSummarizesCategories(t *testing.T) {
	out, errOut, err := runUxs(t, "list")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr output, got %q", errOut)
	}
	if !strings.Contains(out, "CATEGORY") {
		t.Fatalf("expected summary header, got:\n%s", out)
	}
	for _, category := range []string{"frames", "propulsion", "radios", "payloads"} {
		if !strings.Contains(out, category) {
			t.Fatalf("expected summary to mention %q, got:\n%s", category, out)
		}
	}
}

func TestListCommandFiltersByDomain(t *testing.T) {
	out, _, err := runUxs(t, "list", "frames", "--domain", "ground")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "frame-ugv-mule") {
		t.Fatalf("expected ground frame in output, got:\n%s", out)
	}
	if strings.Contains(out, "frame-hex650") {
		t.Fatalf("air frames should be filtered out, got:\n%s", out)
	}
}

func TestListCommandJSON(t *testing.T) {
	out, _, err := runUxs(t, "list", "radios", "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var items []catalog.Component
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	found := false
	for _, c := range items {
		if c.ID == "radio-mesh-24" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected radio-mesh-24 in JSON output, got:\n%s", out)
	}
}

func TestListCommandCSV(t *testing.T) {
	out, _, err := runUxs(t, "list", "frames", "--format", "csv")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "id,name,domain,mass_g,cost_usd,role_tags,notes" {
		t.Fatalf("unexpected CSV header: %q", lines[0])
	}
	if len(lines) < 2 {
		t.Fatalf("expected at least one data row, got:\n%s", out)
	}
}

func TestListCommandUnknownCategory(t *testing.T) {
	_, _, err := runUxs(t, "list", "submarines")
	if err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestListCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := runUxs(t, "list", "frames", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported --format") {
		t.Fatalf("expected format error, got %v", err)
	}
}
