package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/overlay"
)

func writeWhitefrostFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whitefrost.json")
	if err := os.WriteFile(path, mission.WhitefrostRaw(), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestMissionShowWhitefrost(t *testing.T) {
	out, _, err := runUxs(t, "mission", "show", "--whitefrost")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Project WHITEFROST (msn-whitefrost)") {
		t.Fatalf("expected mission headline, got:\n%s", out)
	}
	for _, want := range []string{"Platforms", "Nodes", "Mesh links", "env-whitefrost"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, out)
		}
	}
}

func TestMissionShowFileJSON(t *testing.T) {
	path := writeWhitefrostFile(t)
	out, _, err := runUxs(t, "mission", "show", "--file", path, "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	bundle, err := mission.DecodeBundle([]byte(out))
	if err != nil {
		t.Fatalf("output is not a valid bundle: %v", err)
	}
	if len(bundle.Nodes) != 2 || len(bundle.Platforms) != 2 {
		t.Fatalf("unexpected entity counts: %d nodes, %d platforms", len(bundle.Nodes), len(bundle.Platforms))
	}
}

func TestMissionShowRejectsFilePlusWhitefrost(t *testing.T) {
	path := writeWhitefrostFile(t)
	_, _, err := runUxs(t, "mission", "show", "--file", path, "--whitefrost")
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected exclusivity error, got %v", err)
	}
}

func TestMissionImportPopulatesSession(t *testing.T) {
	db := tempSessionPath(t)
	path := writeWhitefrostFile(t)
	out, _, err := runUxs(t, "mission", "import", "--session", db, "--file", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Imported mission Project WHITEFROST: 2 nodes, 2 platforms, 2 mesh links") {
		t.Fatalf("unexpected confirmation, got:\n%s", out)
	}
	state := loadSessionState(t, db)
	if state.Imported == nil || len(state.Imported.Nodes) != 2 {
		t.Fatalf("imported layer not persisted, got %+v", state.Imported)
	}
	if state.AltitudeBand != "foothills" || state.TemperatureBand != "freezing" {
		t.Fatalf("expected imported bands to become working bands, got %q/%q", state.AltitudeBand, state.TemperatureBand)
	}
	if state.Constraints.MinThrustToWeight == nil || *state.Constraints.MinThrustToWeight != 1.6 {
		t.Fatalf("expected imported constraints, got %+v", state.Constraints)
	}
}

func TestMissionImportRequiresFile(t *testing.T) {
	_, _, err := runUxs(t, "mission", "import")
	if err == nil || !strings.Contains(err.Error(), "--file is required") {
		t.Fatalf("expected required-flag error, got %v", err)
	}
}

func TestMissionImportRejectsInvalidBundle(t *testing.T) {
	db := tempSessionPath(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"schema_version":"1.1","platforms":[{"name":"No ID"}]}`), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	_, _, err := runUxs(t, "mission", "import", "--session", db, "--file", path)
	if err == nil || !strings.Contains(err.Error(), "platforms[0]") {
		t.Fatalf("expected validation error, got %v", err)
	}
	if state := loadSessionState(t, db); state.Imported != nil {
		t.Fatalf("failed import should leave the session untouched, got %+v", state.Imported)
	}
}

func TestMissionDiffFindsChanges(t *testing.T) {
	pathA := writeWhitefrostFile(t)
	bundle, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	bundle.Mission.Name = "Project COLDSTEEL"
	data, err := mission.EncodeBundle(bundle)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	pathB := filepath.Join(t.TempDir(), "renamed.json")
	if err := os.WriteFile(pathB, data, 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	out, _, err := runUxs(t, "mission", "diff", pathA, pathB)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "-    \"name\": \"Project WHITEFROST\"") ||
		!strings.Contains(out, "+    \"name\": \"Project COLDSTEEL\"") {
		t.Fatalf("expected renamed mission in diff, got:\n%s", out)
	}
	if !strings.Contains(out, pathA) || !strings.Contains(out, pathB) {
		t.Fatalf("expected file headers in diff, got:\n%s", out)
	}
}

func TestMissionDiffIdenticalBundles(t *testing.T) {
	pathA := writeWhitefrostFile(t)

	// Same content, different formatting: normalization should erase it.
	bundle, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	compact, err := json.Marshal(bundle)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	pathB := filepath.Join(t.TempDir(), "compact.json")
	if err := os.WriteFile(pathB, compact, 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	out, _, err := runUxs(t, "mission", "diff", pathA, pathB)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "no differences found") {
		t.Fatalf("expected clean diff, got:\n%s", out)
	}
}

func TestMissionExportWritesArtifacts(t *testing.T) {
	db := tempSessionPath(t)
	preset := writeWhitefrostFile(t)
	if _, _, err := runUxs(t, "mission", "import", "--session", db, "--file", preset); err != nil {
		t.Fatalf("import: %v", err)
	}

	dir := t.TempDir()
	bundlePath := filepath.Join(dir, "mission_project.json")
	geojsonPath := filepath.Join(dir, "overlay.geojson")
	cotPath := filepath.Join(dir, "events.json")
	out, _, err := runUxs(t, "mission", "export", "--session", db,
		"--out", bundlePath, "--geojson-out", geojsonPath, "--cot-out", cotPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Mission bundle written to", "GeoJSON overlay written to", "CoT events written to"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in confirmations, got:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(bundlePath)
	if err != nil {
		t.Fatalf("read bundle: %v", err)
	}
	bundle, err := mission.DecodeBundle(data)
	if err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if len(bundle.Nodes) != 2 || len(bundle.Platforms) != 2 {
		t.Fatalf("unexpected entity counts: %d nodes, %d platforms", len(bundle.Nodes), len(bundle.Platforms))
	}

	geoData, err := os.ReadFile(geojsonPath)
	if err != nil {
		t.Fatalf("read geojson: %v", err)
	}
	var fc overlay.FeatureCollection
	if err := json.Unmarshal(geoData, &fc); err != nil {
		t.Fatalf("decode geojson: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Fatalf("expected 4 placed features, got %d", len(fc.Features))
	}

	cotData, err := os.ReadFile(cotPath)
	if err != nil {
		t.Fatalf("read cot: %v", err)
	}
	var events overlay.EventSet
	if err := json.Unmarshal(cotData, &events); err != nil {
		t.Fatalf("decode cot: %v", err)
	}
	if len(events.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events.Events))
	}

	if state := loadSessionState(t, db); state.EnvironmentID == "" {
		t.Fatalf("expected export to record the environment id")
	}
}

func TestMissionExportStdout(t *testing.T) {
	db := tempSessionPath(t)
	preset := writeWhitefrostFile(t)
	if _, _, err := runUxs(t, "mission", "import", "--session", db, "--file", preset); err != nil {
		t.Fatalf("import: %v", err)
	}
	out, errOut, err := runUxs(t, "mission", "export", "--session", db, "--stdout")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := mission.DecodeBundle([]byte(out)); err != nil {
		t.Fatalf("stdout is not a valid bundle: %v", err)
	}
	if strings.Contains(out, "written to") {
		t.Fatalf("confirmations must not pollute the bundle stream:\n%s", out)
	}
	_ = errOut
}

func TestMissionServeStopsOnContextCancel(t *testing.T) {
	db := tempSessionPath(t)
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"mission", "serve", "--session", db, "--listen", "127.0.0.1:0", "--log-level", "error"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after cancel")
	}
}
