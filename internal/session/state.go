// File: internal/session/state.go
// Brief: Durable working state between CLI invocations.

// Package session persists the designer's working state: last
// selection, environment bands, constraints, locally added nodes,
// saved platform snapshots, and the imported bundle a mission builds
// on. State methods are pure updates; the sqlite store does the I/O.
package session

import (
	"time"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

// SavedPlatform is one platform snapshot: the canonical entity a mission
// export carries, plus everything needed to reassemble the stack it was
// evaluated from.
type SavedPlatform struct {
	Entry           mission.PlatformEntry `json:"entry"`
	Selection       design.Selection      `json:"selection"`
	Metadata        design.Metadata       `json:"metadata"`
	AltitudeBand    string                `json:"altitude_band,omitempty"`
	TemperatureBand string                `json:"temperature_band,omitempty"`
	Constraints     design.Constraints    `json:"constraints,omitempty"`
	Result          design.Result         `json:"result"`
	SavedAt         time.Time             `json:"saved_at"`
}

// State is the whole session document. It round-trips through JSON in
// the store, so every field tolerates being absent.
type State struct {
	Selection design.Selection `json:"selection"`
	Metadata  design.Metadata  `json:"metadata"`

	AltitudeBand    string             `json:"altitude_band,omitempty"`
	TemperatureBand string             `json:"temperature_band,omitempty"`
	Constraints     design.Constraints `json:"constraints,omitempty"`

	Mission        mission.MissionInfo     `json:"mission,omitempty"`
	NodeLibrary    []mission.NodeEntry     `json:"node_library,omitempty"`
	SavedPlatforms []SavedPlatform         `json:"saved_platforms,omitempty"`
	MeshLinks      []mission.MeshLinkEntry `json:"mesh_links,omitempty"`
	Kits           []mission.KitEntry      `json:"kits,omitempty"`

	EnvironmentID string `json:"environment_id,omitempty"`
	ConstraintID  string `json:"constraint_id,omitempty"`

	Imported *mission.Bundle `json:"imported,omitempty"`
}

// EffectiveAltitudeBand returns the session band, defaulted.
func (s *State) EffectiveAltitudeBand() string {
	if s.AltitudeBand != "" {
		return s.AltitudeBand
	}
	return design.DefaultAltitudeBandID
}

// EffectiveTemperatureBand returns the session band, defaulted.
func (s *State) EffectiveTemperatureBand() string {
	if s.TemperatureBand != "" {
		return s.TemperatureBand
	}
	return design.DefaultTemperatureBandID
}

// Environment resolves the session bands against the band tables.
func (s *State) Environment() design.Environment {
	return design.ResolveEnvironment(s.AltitudeBand, s.TemperatureBand)
}

// Nodes returns the merged node view: imported entries first, local
// library entries overlaying by id and appending after.
func (s *State) Nodes() []mission.NodeEntry {
	var imported []mission.NodeEntry
	if s.Imported != nil {
		imported = s.Imported.Nodes
	}
	return mission.MergeNodes(imported, s.NodeLibrary)
}

// NodeDesigns flattens the merged node view for stack assembly.
func (s *State) NodeDesigns() []design.NodeDesign {
	return mission.NodeDesigns(s.Nodes())
}

// AddNode puts a node into the local library, replacing an existing
// entry with the same id.
func (s *State) AddNode(n mission.NodeEntry) {
	for i := range s.NodeLibrary {
		if s.NodeLibrary[i].ID == n.ID && n.ID != "" {
			s.NodeLibrary[i] = n
			return
		}
	}
	s.NodeLibrary = append(s.NodeLibrary, n)
}

// SavePlatform records a platform snapshot, replacing an existing one
// with the same id.
func (s *State) SavePlatform(sp SavedPlatform) {
	for i := range s.SavedPlatforms {
		if s.SavedPlatforms[i].Entry.ID == sp.Entry.ID && sp.Entry.ID != "" {
			s.SavedPlatforms[i] = sp
			return
		}
	}
	s.SavedPlatforms = append(s.SavedPlatforms, sp)
}

// ForgetPlatform drops a saved snapshot by id.
func (s *State) ForgetPlatform(id string) bool {
	for i := range s.SavedPlatforms {
		if s.SavedPlatforms[i].Entry.ID == id {
			s.SavedPlatforms = append(s.SavedPlatforms[:i], s.SavedPlatforms[i+1:]...)
			return true
		}
	}
	return false
}

// RestorePlatform copies a snapshot's selection, metadata, bands, and
// constraints back into the working state so the stack can be
// re-evaluated or refined. It reports whether the id was found.
func (s *State) RestorePlatform(id string) bool {
	for i := range s.SavedPlatforms {
		if s.SavedPlatforms[i].Entry.ID != id {
			continue
		}
		sp := s.SavedPlatforms[i]
		s.Selection = sp.Selection
		s.Metadata = sp.Metadata
		if sp.AltitudeBand != "" {
			s.AltitudeBand = sp.AltitudeBand
		}
		if sp.TemperatureBand != "" {
			s.TemperatureBand = sp.TemperatureBand
		}
		s.Constraints = sp.Constraints
		return true
	}
	return false
}

// PlatformEntries translates the snapshots into canonical entities for
// export and listing.
func (s *State) PlatformEntries() []mission.PlatformEntry {
	if len(s.SavedPlatforms) == 0 {
		return nil
	}
	out := make([]mission.PlatformEntry, len(s.SavedPlatforms))
	for i := range s.SavedPlatforms {
		out[i] = s.SavedPlatforms[i].Entry
	}
	return out
}

// ImportBundle makes a bundle the session's base layer and adopts its
// first environment and constraint entries as the working values, so a
// following evaluate runs under the imported conditions.
func (s *State) ImportBundle(b mission.Bundle) {
	s.Imported = &b
	if len(b.Environment) > 0 {
		env := b.Environment[0]
		s.AltitudeBand = env.AltitudeBand
		s.TemperatureBand = env.TemperatureBand
		s.EnvironmentID = env.ID
	}
	if len(b.Constraints) > 0 {
		con := b.Constraints[0]
		s.Constraints = mission.DesignConstraints(con)
		s.ConstraintID = con.ID
	}
}

// BuildInput assembles the export input from the session layers.
func (s *State) BuildInput() mission.BuildInput {
	return mission.BuildInput{
		Imported:        s.Imported,
		Mission:         s.Mission,
		Nodes:           s.NodeLibrary,
		Platforms:       s.PlatformEntries(),
		MeshLinks:       s.MeshLinks,
		Kits:            s.Kits,
		AltitudeBand:    s.EffectiveAltitudeBand(),
		TemperatureBand: s.EffectiveTemperatureBand(),
		Constraints:     s.Constraints,
		EnvironmentID:   s.EnvironmentID,
		ConstraintID:    s.ConstraintID,
	}
}

// RecordBuild stores the singleton ids a build minted so the next
// export updates the same entities.
func (s *State) RecordBuild(out mission.BuildOutput) {
	s.EnvironmentID = out.EnvironmentID
	if out.ConstraintID != "" {
		s.ConstraintID = out.ConstraintID
	}
}

// ExportBundle builds the outbound document and records its ids.
func (s *State) ExportBundle() (mission.Bundle, error) {
	out, err := mission.Build(s.BuildInput())
	if err != nil {
		return mission.Bundle{}, err
	}
	s.RecordBuild(out)
	return out.Bundle, nil
}

// Clear resets the session to factory state.
func (s *State) Clear() {
	*s = State{}
}
