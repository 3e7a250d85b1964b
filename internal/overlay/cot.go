// File: internal/overlay/cot.go
// Brief: CoT-style event projection of a MissionProject bundle.

package overlay

import (
	"strings"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

// CoT type codes. Platforms present as friendly military UxS, fixed
// nodes as friendly ground infrastructure.
const (
	cotTypePlatform = "a-f-A-M-UxS"
	cotTypeNode     = "b-r-f"
	cotHow          = "m-g"
)

// EventSet is a JSON stub of a CoT feed, not full XML CoT. Consumers
// that speak real CoT transcode from here.
type EventSet struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID      string   `json:"id,omitempty"`
	Type    string   `json:"type"`
	How     string   `json:"how"`
	Remarks string   `json:"remarks"`
	Point   CoTPoint `json:"point"`
	Detail  Detail   `json:"detail"`
}

type CoTPoint struct {
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	HAE *float64 `json:"hae,omitempty"`
}

type Detail struct {
	OriginTool     string    `json:"origin_tool,omitempty"`
	RFBandGHz      *float64  `json:"rf_band_ghz,omitempty"`
	RFBandsGHz     []float64 `json:"rf_bands_ghz,omitempty"`
	PowerDrawW     *float64  `json:"power_draw_w,omitempty"`
	PowerBudgetW   *float64  `json:"power_budget_w,omitempty"`
	ConstraintsRef string    `json:"constraints_ref,omitempty"`
	EnvironmentRef string    `json:"environment_ref,omitempty"`
}

func remarks(name, id string, roles []string) string {
	label := name
	if label == "" {
		label = id
	}
	joined := strings.Join(roles, ", ")
	if joined == "" {
		joined = "unspecified"
	}
	return label + " (" + joined + ")"
}

// CoT renders the located entities of a bundle as an event set,
// platforms first. Entities without a fix are skipped.
func CoT(b mission.Bundle) EventSet {
	set := EventSet{Events: []Event{}}

	for _, p := range b.Platforms {
		if !p.Location.HasFix() {
			continue
		}
		set.Events = append(set.Events, Event{
			ID:      p.ID,
			Type:    cotTypePlatform,
			How:     cotHow,
			Remarks: remarks(p.Name, p.ID, p.MissionRoles),
			Point:   CoTPoint{Lat: *p.Location.Lat, Lon: *p.Location.Lon, HAE: p.Location.ElevationM},
			Detail: Detail{
				OriginTool:     fallbackOrigin(p.OriginTool, b.OriginTool),
				RFBandsGHz:     p.RFBandsGHz,
				PowerBudgetW:   p.PowerBudgetW,
				ConstraintsRef: p.ConstraintsRef,
				EnvironmentRef: p.EnvironmentRef,
			},
		})
	}

	for _, n := range b.Nodes {
		if !n.Location.HasFix() {
			continue
		}
		set.Events = append(set.Events, Event{
			ID:      n.ID,
			Type:    cotTypeNode,
			How:     cotHow,
			Remarks: remarks(n.Name, n.ID, n.RoleTags),
			Point:   CoTPoint{Lat: *n.Location.Lat, Lon: *n.Location.Lon, HAE: n.Location.ElevationM},
			Detail: Detail{
				OriginTool: fallbackOrigin(n.OriginTool, b.OriginTool),
				RFBandGHz:  n.RFBandGHz,
				PowerDrawW: n.PowerDrawW,
			},
		})
	}

	return set
}
