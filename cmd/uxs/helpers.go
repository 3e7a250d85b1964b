// File: cmd/uxs/helpers.go
// Brief: Shared catalog, session, and encoder plumbing for uxs commands.

package main

import (
	"encoding/json"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/session"
)

// loadCatalog resolves the component catalog for a command run. An
// explicit path wins; otherwise the embedded catalog is used.
func loadCatalog(path string) (catalog.Collection, error) {
	if strings.TrimSpace(path) != "" {
		return catalog.Load(path)
	}
	return catalog.Default()
}

// openStore opens the session database, defaulting to ~/.uxs/session.sqlite.
// Callers own the returned store and must Close it.
func openStore(path string) (*session.Store, error) {
	if strings.TrimSpace(path) == "" {
		resolved, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return session.Open(path)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
