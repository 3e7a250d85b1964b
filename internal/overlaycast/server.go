// File: internal/overlaycast/server.go
// Brief: HTTP and websocket casting of mission overlays.

// Package overlaycast serves a mission project as live map overlays.
package overlaycast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/overlay"
)

const defaultPollInterval = time.Second

// Server exposes GeoJSON, CoT, and bundle snapshots of a mission project
// over HTTP, plus a websocket feed that pushes a fresh overlay whenever
// the watched bundle file changes on disk.
type Server struct {
	addr     string
	path     string
	poll     time.Duration
	hub      *hub
	upgrader websocket.Upgrader
	logger   logr.Logger

	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	broadcasts prometheus.Counter

	mu        sync.RWMutex
	bundle    mission.Bundle
	updatedAt time.Time
	lastMod   time.Time
}

// New returns a server casting the given bundle. When path is non-empty
// the file is polled for modification-time changes and reloaded in place;
// an empty path serves the initial bundle unchanged.
func New(addr string, initial mission.Bundle, path string, logger logr.Logger) *Server {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	clients := factory.NewGauge(prometheus.GaugeOpts{
		Name: "uxs_overlay_clients",
		Help: "Number of connected websocket overlay clients.",
	})
	s := &Server{
		addr:   addr,
		path:   path,
		poll:   pollInterval(),
		hub:    newHub(logger, clients),
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "uxs_overlay_requests_total",
			Help: "Total overlay HTTP requests served, by endpoint.",
		}, []string{"endpoint"}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Name: "uxs_overlay_broadcasts_total",
			Help: "Total overlay snapshots broadcast to websocket clients.",
		}),
		bundle:    initial,
		updatedAt: time.Now(),
	}
	if path != "" {
		if info, err := os.Stat(path); err == nil {
			s.lastMod = info.ModTime()
		}
	}
	return s
}

// pollInterval honors the UXS_SERVE_POLL_MS tuning knob.
func pollInterval() time.Duration {
	raw := os.Getenv("UXS_SERVE_POLL_MS")
	if raw == "" {
		return defaultPollInterval
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return defaultPollInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// Bundle returns the currently served bundle.
func (s *Server) Bundle() mission.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Handler builds the route table. Exposed so tests can drive the server
// through httptest without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/overlay.geojson", s.handleGeoJSON)
	mux.HandleFunc("/cot.json", s.handleCoT)
	mux.HandleFunc("/bundle.json", s.handleBundle)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "ok")
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	if s.path != "" {
		go s.watch(ctx)
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.hub.Close()
	}()
	s.logger.Info("overlay cast ready", "addr", s.addr, "file", s.path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reloadIfChanged()
		}
	}
}

// reloadIfChanged swaps in the bundle file when its mtime moved. A file
// that fails to decode leaves the served bundle untouched; the mtime is
// still recorded so a broken save is reported once, not every tick.
func (s *Server) reloadIfChanged() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	s.mu.RLock()
	unchanged := info.ModTime().Equal(s.lastMod)
	s.mu.RUnlock()
	if unchanged {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error(err, "read bundle file", "file", s.path)
		return
	}
	bundle, err := mission.DecodeBundle(data)
	s.mu.Lock()
	s.lastMod = info.ModTime()
	if err != nil {
		s.mu.Unlock()
		s.logger.Error(err, "decode bundle file", "file", s.path)
		return
	}
	s.bundle = bundle
	s.updatedAt = time.Now()
	payload, encErr := s.snapshotLocked()
	s.mu.Unlock()
	if encErr != nil {
		s.logger.Error(encErr, "encode overlay snapshot")
		return
	}
	s.hub.Broadcast(payload)
	s.broadcasts.Inc()
	s.logger.V(1).Info("bundle reloaded", "file", s.path)
}

// snapshot is the websocket payload: the overlay plus its freshness.
type snapshot struct {
	UpdatedAt string                    `json:"updated_at"`
	Overlay   overlay.FeatureCollection `json:"overlay"`
}

func (s *Server) snapshotLocked() ([]byte, error) {
	return json.Marshal(snapshot{
		UpdatedAt: s.updatedAt.UTC().Format(time.RFC3339),
		Overlay:   overlay.GeoJSON(s.bundle),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.requests.WithLabelValues("index").Inc()
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprint(w, "uxs overlay cast\n\n/overlay.geojson\n/cot.json\n/bundle.json\n/ws\n/healthz\n/metrics\n")
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	s.requests.WithLabelValues("overlay.geojson").Inc()
	s.mu.RLock()
	fc := overlay.GeoJSON(s.bundle)
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/geo+json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		s.logger.Error(err, "write geojson response")
	}
}

func (s *Server) handleCoT(w http.ResponseWriter, _ *http.Request) {
	s.requests.WithLabelValues("cot.json").Inc()
	s.mu.RLock()
	events := overlay.CoT(s.bundle)
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		s.logger.Error(err, "write cot response")
	}
}

func (s *Server) handleBundle(w http.ResponseWriter, _ *http.Request) {
	s.requests.WithLabelValues("bundle.json").Inc()
	s.mu.RLock()
	data, err := mission.EncodeBundle(s.bundle)
	s.mu.RUnlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("ws").Inc()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(err, "upgrade overlay websocket")
		return
	}
	client := newClient(conn, s.logger)
	s.hub.Register(client)
	s.mu.RLock()
	payload, encErr := s.snapshotLocked()
	s.mu.RUnlock()
	if encErr == nil {
		// New clients get the current overlay without waiting for a
		// file change.
		select {
		case client.send <- payload:
		default:
		}
	}
	go client.writeLoop()
	client.readLoop(func() {
		s.hub.Unregister(client)
	})
}

type hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	gauge   prometheus.Gauge
	logger  logr.Logger
}

func newHub(logger logr.Logger, gauge prometheus.Gauge) *hub {
	return &hub{clients: make(map[*client]struct{}), gauge: gauge, logger: logger}
}

func (h *hub) Register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.gauge.Inc()
	h.mu.Unlock()
}

func (h *hub) Unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		h.gauge.Dec()
	}
	h.mu.Unlock()
	c.Close()
}

func (h *hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Info("dropping overlay client for slow reader")
			go h.Unregister(c)
		}
	}
}

func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
		h.gauge.Dec()
	}
}

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
	logger logr.Logger
}

func newClient(conn *websocket.Conn, logger logr.Logger) *client {
	return &client{conn: conn, send: make(chan []byte, 16), logger: logger}
}

func (c *client) Close() {
	c.once.Do(func() {
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *client) readLoop(onClose func()) {
	defer onClose()
	c.conn.SetReadLimit(64 * 1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				c.logger.V(1).Info("overlay client read error", "err", err)
			}
			break
		}
	}
}

func (c *client) writeLoop() {
	ticker := time.NewTicker((pongWait * 9) / 10)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.V(1).Info("overlay client write error", "err", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
