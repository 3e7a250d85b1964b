package overlaycast

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/overlay"
)

func testGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_clients"})
}

func TestHubBroadcastDeliversMessages(t *testing.T) {
	h := newHub(logr.Discard(), testGauge())
	c := &client{send: make(chan []byte, 1), logger: logr.Discard()}
	h.Register(c)

	msg := []byte("hello")
	h.Broadcast(msg)

	select {
	case got := <-c.send:
		if string(got) != string(msg) {
			t.Fatalf("unexpected payload: %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for broadcast")
	}
}

func TestHubBroadcastDropsSlowClients(t *testing.T) {
	h := newHub(logr.Discard(), testGauge())
	c := &client{send: make(chan []byte, 1), logger: logr.Discard()}
	h.Register(c)
	c.send <- []byte("backlog")

	h.Broadcast([]byte("next"))

	waitForCondition(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		_, ok := h.clients[c]
		return !ok
	})
}

func TestHandlerServesProjections(t *testing.T) {
	bundle, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	s := New(":0", bundle, "", logr.Discard())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	var fc overlay.FeatureCollection
	getJSON(t, srv.URL+"/overlay.geojson", &fc)
	if len(fc.Features) != 4 {
		t.Fatalf("expected 4 overlay features, got %d", len(fc.Features))
	}

	var events overlay.EventSet
	getJSON(t, srv.URL+"/cot.json", &events)
	if len(events.Events) != 3 {
		t.Fatalf("expected 3 cot events, got %d", len(events.Events))
	}

	body := getBody(t, srv.URL+"/bundle.json")
	served, err := mission.DecodeBundle(body)
	if err != nil {
		t.Fatalf("served bundle does not decode: %v", err)
	}
	if len(served.Platforms) != 2 {
		t.Fatalf("expected 2 platforms in served bundle, got %d", len(served.Platforms))
	}

	if got := string(getBody(t, srv.URL+"/healthz")); got != "ok" {
		t.Fatalf("unexpected healthz body %q", got)
	}

	metrics := string(getBody(t, srv.URL+"/metrics"))
	if !strings.Contains(metrics, "uxs_overlay_requests_total") {
		t.Fatalf("expected request counter in metrics output:\n%s", metrics)
	}
}

func TestWebsocketSendsInitialSnapshot(t *testing.T) {
	bundle, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	s := New(":0", bundle, "", logr.Discard())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read initial snapshot: %v", err)
	}
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.UpdatedAt == "" {
		t.Fatalf("expected snapshot timestamp")
	}
	if len(snap.Overlay.Features) != 4 {
		t.Fatalf("expected 4 features in snapshot, got %d", len(snap.Overlay.Features))
	}
}

func TestReloadIfChangedSwapsBundle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mission.json")
	first, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	writeBundle(t, path, first)

	s := New(":0", first, path, logr.Discard())
	c := &client{send: make(chan []byte, 1), logger: logr.Discard()}
	s.hub.Register(c)

	lat, lon := 68.88, 15.52
	second := first
	second.Nodes = append([]mission.NodeEntry{}, first.Nodes...)
	second.Nodes = append(second.Nodes, mission.NodeEntry{
		ID:       "node-valley-cam",
		Name:     "Valley Cam",
		Location: &mission.Location{Lat: &lat, Lon: &lon},
	})
	writeBundle(t, path, second)
	bumpMtime(t, path)

	s.reloadIfChanged()

	if got := len(s.Bundle().Nodes); got != 3 {
		t.Fatalf("expected reloaded bundle with 3 nodes, got %d", got)
	}
	select {
	case payload := <-c.send:
		var snap snapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			t.Fatalf("decode broadcast: %v", err)
		}
		if len(snap.Overlay.Features) != 5 {
			t.Fatalf("expected 5 features after reload, got %d", len(snap.Overlay.Features))
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a broadcast after reload")
	}
}

func TestReloadKeepsBundleOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mission.json")
	bundle, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	writeBundle(t, path, bundle)

	s := New(":0", bundle, path, logr.Discard())
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}
	bumpMtime(t, path)

	s.reloadIfChanged()

	if got := len(s.Bundle().Nodes); got != 2 {
		t.Fatalf("decode failure should keep the served bundle, got %d nodes", got)
	}
}

func writeBundle(t *testing.T, path string, b mission.Bundle) {
	t.Helper()
	data, err := mission.EncodeBundle(b)
	if err != nil {
		t.Fatalf("encode bundle: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
}

// bumpMtime forces a modification-time change so the watcher cannot miss
// rewrites that land within the filesystem timestamp granularity.
func bumpMtime(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	next := info.ModTime().Add(2 * time.Second)
	if err := os.Chtimes(path, next, next); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func getJSON(t *testing.T, url string, dst any) {
	t.Helper()
	if err := json.Unmarshal(getBody(t, url), dst); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func getBody(t *testing.T, url string) []byte {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return body
}

func waitForCondition(t *testing.T, ok func() bool) {
	t.Helper()
	deadline := time.After(500 * time.Millisecond)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-deadline:
			t.Fatalf("condition not met before timeout")
		case <-ticker.C:
			if ok() {
				return
			}
		}
	}
}
