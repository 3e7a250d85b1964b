// File: internal/overlay/geojson.go
// Brief: GeoJSON projection of a MissionProject bundle.

// Package overlay projects mission bundles into map-consumable shapes:
// a GeoJSON FeatureCollection and a CoT-style event set. Projections
// are lossy by design; only located entities appear.
package overlay

import (
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

// Feature types emitted in properties.
const (
	FeatureNode     = "node"
	FeaturePlatform = "platform"
	FeatureMeshLink = "mesh_link"
)

// Fallback origin for links that do not name their authoring tool.
const linkOriginFallback = "mesh"

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry carries Point or LineString coordinates. Points are
// [lon, lat] with elevation appended when known; lines are 2D.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type Properties struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Type           string    `json:"type"`
	OriginTool     string    `json:"origin_tool,omitempty"`
	Role           []string  `json:"role,omitempty"`
	RFBandGHz      *float64  `json:"rf_band_ghz,omitempty"`
	RFBandsGHz     []float64 `json:"rf_bands_ghz,omitempty"`
	PowerDrawW     *float64  `json:"power_draw_w,omitempty"`
	PowerBudgetW   *float64  `json:"power_budget_w,omitempty"`
	EnvironmentRef string    `json:"environment_ref,omitempty"`
	ConstraintsRef string    `json:"constraints_ref,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

func pointCoords(loc *mission.Location) []float64 {
	coords := []float64{*loc.Lon, *loc.Lat}
	if loc.ElevationM != nil {
		coords = append(coords, *loc.ElevationM)
	}
	return coords
}

func fallbackOrigin(own, bundle string) string {
	if own != "" {
		return own
	}
	if bundle != "" {
		return bundle
	}
	return mission.OriginToolName
}

// GeoJSON renders the located entities of a bundle as a
// FeatureCollection: node points, then platform points, then mesh link
// lines between endpoints whose positions are known. Entities without a
// fix are skipped, never errored.
func GeoJSON(b mission.Bundle) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}

	for _, n := range b.Nodes {
		if !n.Location.HasFix() {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "Point", Coordinates: pointCoords(n.Location)},
			Properties: Properties{
				ID:         n.ID,
				Name:       n.Name,
				Type:       FeatureNode,
				OriginTool: fallbackOrigin(n.OriginTool, b.OriginTool),
				Role:       n.RoleTags,
				RFBandGHz:  n.RFBandGHz,
				PowerDrawW: n.PowerDrawW,
			},
		})
	}

	for _, p := range b.Platforms {
		if !p.Location.HasFix() {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "Point", Coordinates: pointCoords(p.Location)},
			Properties: Properties{
				ID:             p.ID,
				Name:           p.Name,
				Type:           FeaturePlatform,
				OriginTool:     fallbackOrigin(p.OriginTool, b.OriginTool),
				Role:           p.MissionRoles,
				RFBandsGHz:     p.RFBandsGHz,
				PowerBudgetW:   p.PowerBudgetW,
				EnvironmentRef: p.EnvironmentRef,
				ConstraintsRef: p.ConstraintsRef,
			},
		})
	}

	fixes := make(map[string]*mission.Location)
	for _, n := range b.Nodes {
		if n.ID != "" && n.Location.HasFix() {
			fixes[n.ID] = n.Location
		}
	}
	for _, p := range b.Platforms {
		if p.ID != "" && p.Location.HasFix() {
			fixes[p.ID] = p.Location
		}
	}

	for _, l := range b.MeshLinks {
		a, b1 := fixes[l.From], fixes[l.To]
		if a == nil || b1 == nil {
			continue
		}
		name := l.ID
		coords := [][]float64{{*a.Lon, *a.Lat}, {*b1.Lon, *b1.Lat}}
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "LineString", Coordinates: coords},
			Properties: Properties{
				ID:         l.ID,
				Name:       name,
				Type:       FeatureMeshLink,
				OriginTool: fallbackOrigin(l.OriginTool, linkOriginFallback),
				RFBandGHz:  l.RFBandGHz,
				Notes:      l.Notes,
			},
		})
	}

	return fc
}
