// File: internal/mission/bundle.go
// Brief: Canonical MissionProject entity types.

// Package mission implements the MissionProject interchange layer:
// normalization of historical field spellings onto one canonical shape,
// id-keyed merging of imported bundles with session state, and the
// synthetic catalog adapters that let externally authored node designs
// be mounted into stack slots.
package mission

import (
	"encoding/json"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

// Bundle schema version written on export. Import accepts any version.
const SchemaVersion = "1.1"

// OriginToolName tags entities this tool authors.
const OriginToolName = "uxs"

// Location is a geographic fix. Pointer fields distinguish absent
// coordinates from zero; projections require both lat and lon.
type Location struct {
	Lat        *float64
	Lon        *float64
	ElevationM *float64
	Extra      map[string]json.RawMessage
}

// HasFix reports whether the location carries both coordinates.
func (l *Location) HasFix() bool {
	return l != nil && l.Lat != nil && l.Lon != nil
}

// MissionInfo describes the mission a bundle belongs to.
type MissionInfo struct {
	ID               string
	Name             string
	Objective        string
	AreaOfOperations string
	OriginTool       string
	Notes            string
	Extra            map[string]json.RawMessage
}

// EnvironmentEntry records the band pair an evaluation ran under.
type EnvironmentEntry struct {
	ID              string
	AltitudeBand    string
	TemperatureBand string
	OriginTool      string
	Notes           string
	Extra           map[string]json.RawMessage
}

// ConstraintEntry records configured evaluation floors and ceilings.
type ConstraintEntry struct {
	ID                string
	MinThrustToWeight *float64
	MinEnduranceMin   *float64
	MaxAuwKg          *float64
	OriginTool        string
	Notes             string
	Extra             map[string]json.RawMessage
}

// NodeEntry is an externally authored node design in canonical form.
type NodeEntry struct {
	ID          string
	Name        string
	OriginTool  string
	RoleTags    []string
	PowerDrawW  *float64
	WeightGrams *float64
	RFBandGHz   *float64
	Location    *Location
	Notes       string
	Extra       map[string]json.RawMessage
}

// PlatformEntry is one exported platform design with its evaluation
// figures.
type PlatformEntry struct {
	ID                     string
	Name                   string
	OriginTool             string
	Domain                 string
	FrameType              string
	MountedNodeIDs         []string
	PayloadIDs             []string
	RFBandsGHz             []float64
	PowerBudgetW           *float64
	BatteryWh              *float64
	AuwKg                  *float64
	NominalEnduranceMin    *float64
	AdjustedEnduranceMin   *float64
	ThrustToWeight         *float64
	AdjustedThrustToWeight *float64
	MissionRoles           []string
	EnvironmentRef         string
	ConstraintsRef         string
	LaunchMethod           string
	RecoveryMethod         string
	ThreatLevel            string
	Location               *Location
	Notes                  string
	Extra                  map[string]json.RawMessage
}

// MeshLinkEntry is a planned RF link between two located entities.
type MeshLinkEntry struct {
	ID         string
	From       string
	To         string
	RFBandGHz  *float64
	OriginTool string
	Notes      string
	Extra      map[string]json.RawMessage
}

// KitEntry is a field kit supporting one or more platforms.
type KitEntry struct {
	ID           string
	Name         string
	PlatformIDs  []string
	PowerBudgetW *float64
	BatteryWh    *float64
	OriginTool   string
	Notes        string
	Extra        map[string]json.RawMessage
}

// Bundle is a full MissionProject document in canonical form. Unknown
// top-level fields ride along in Extra.
type Bundle struct {
	SchemaVersion string
	OriginTool    string
	Mission       *MissionInfo
	Environment   []EnvironmentEntry
	Constraints   []ConstraintEntry
	Nodes         []NodeEntry
	Platforms     []PlatformEntry
	MeshLinks     []MeshLinkEntry
	Kits          []KitEntry
	Extra         map[string]json.RawMessage
}

// DesignConstraints flattens a constraint entity for evaluation.
func DesignConstraints(e ConstraintEntry) design.Constraints {
	return design.Constraints{
		MinThrustToWeight: e.MinThrustToWeight,
		MinEnduranceMin:   e.MinEnduranceMin,
		MaxAuwKg:          e.MaxAuwKg,
	}
}

// ConstraintsByID flattens the named constraint entry. Unknown ids
// yield empty constraints.
func (b *Bundle) ConstraintsByID(id string) design.Constraints {
	for _, c := range b.Constraints {
		if c.ID == id {
			return DesignConstraints(c)
		}
	}
	return design.Constraints{}
}

// EnvironmentByID finds the named environment entry.
func (b *Bundle) EnvironmentByID(id string) (EnvironmentEntry, bool) {
	for _, e := range b.Environment {
		if e.ID == id {
			return e, true
		}
	}
	return EnvironmentEntry{}, false
}

func (e EnvironmentEntry) EntityID() string { return e.ID }
func (e ConstraintEntry) EntityID() string  { return e.ID }
func (e NodeEntry) EntityID() string        { return e.ID }
func (e PlatformEntry) EntityID() string    { return e.ID }
func (e MeshLinkEntry) EntityID() string    { return e.ID }
func (e KitEntry) EntityID() string         { return e.ID }
