// File: internal/design/stack.go
// Brief: Selection, node designs, and Stack assembly.

package design

import (
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
)

// NodeDesign is a platform or sensor design authored by an external tool.
// It is not a catalog component; it is adapted into synthetic catalog
// entries and mounted as a node payload.
type NodeDesign struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	WeightG    float64  `json:"weight_grams,omitempty"`
	PowerDrawW float64  `json:"power_draw_w,omitempty"`
	RFBandGHz  float64  `json:"rf_band_ghz,omitempty"`
	RoleTags   []string `json:"role_tags,omitempty"`
	OriginTool string   `json:"origin_tool,omitempty"`
}

// DisplayName returns the node's name, falling back to its id.
func (n NodeDesign) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Selection names the component ids filling each stack slot. The first
// five are required; the rest are optional. Payloads resolve against the
// catalog, NodePayloads against the node design list.
type Selection struct {
	Frame            string   `json:"frame"`
	Propulsion       string   `json:"propulsion"`
	Battery          string   `json:"battery"`
	Compute          string   `json:"compute"`
	Radio            string   `json:"radio"`
	FlightController string   `json:"flight_controller,omitempty"`
	VideoLink        string   `json:"video_link,omitempty"`
	Receiver         string   `json:"receiver,omitempty"`
	Camera           string   `json:"camera,omitempty"`
	AuxRadio         string   `json:"aux_radio,omitempty"`
	AntennaA         string   `json:"antenna_a,omitempty"`
	AntennaB         string   `json:"antenna_b,omitempty"`
	Payloads         []string `json:"payloads,omitempty"`
	NodePayloads     []string `json:"node_payloads,omitempty"`
}

// Metadata is descriptive stack context. None of it is computed; it is
// carried through to exports.
type Metadata struct {
	Name           string `json:"name,omitempty"`
	Domain         string `json:"domain,omitempty"`
	MissionRole    string `json:"mission_role,omitempty"`
	EMCON          string `json:"emcon,omitempty"`
	LaunchMethod   string `json:"launch_method,omitempty"`
	RecoveryMethod string `json:"recovery_method,omitempty"`
	ThreatLevel    string `json:"threat_level,omitempty"`
}

// Stack is one resolved platform design. Nil slots mean the selection
// named no id or the id did not resolve; "missing" is a stack property,
// not an assembly failure. A Stack is built fresh per evaluation and
// never mutated.
type Stack struct {
	Frame            *catalog.Component
	Propulsion       *catalog.Component
	Battery          *catalog.Component
	Compute          *catalog.Component
	Radio            *catalog.Component
	FlightController *catalog.Component
	VideoLink        *catalog.Component
	Receiver         *catalog.Component
	Camera           *catalog.Component
	AuxRadio         *catalog.Component
	AntennaA         *catalog.Component
	AntennaB         *catalog.Component
	Payloads         []catalog.Component
	NodePayloads     []NodeDesign
	Metadata         Metadata
}

// Assemble resolves a selection against the catalog and node list.
// Unresolvable single-slot ids leave the slot nil; unresolvable payload
// and node ids are dropped from the lists.
func Assemble(col catalog.Collection, nodes []NodeDesign, sel Selection, meta Metadata) Stack {
	s := Stack{Metadata: meta}
	s.Frame = col.Lookup(catalog.CategoryFrames, sel.Frame)
	s.Propulsion = col.Lookup(catalog.CategoryPropulsion, sel.Propulsion)
	s.Battery = col.Lookup(catalog.CategoryBatteries, sel.Battery)
	s.Compute = col.Lookup(catalog.CategoryCompute, sel.Compute)
	s.Radio = col.Lookup(catalog.CategoryRadios, sel.Radio)
	s.FlightController = col.Lookup(catalog.CategoryFlightControllers, sel.FlightController)
	s.VideoLink = col.Lookup(catalog.CategoryVideoLinks, sel.VideoLink)
	s.Receiver = col.Lookup(catalog.CategoryReceivers, sel.Receiver)
	s.Camera = col.Lookup(catalog.CategoryCameras, sel.Camera)
	s.AuxRadio = col.Lookup(catalog.CategoryRadios, sel.AuxRadio)
	s.AntennaA = col.Lookup(catalog.CategoryAntennas, sel.AntennaA)
	s.AntennaB = col.Lookup(catalog.CategoryAntennas, sel.AntennaB)
	for _, id := range sel.Payloads {
		if c := col.Lookup(catalog.CategoryPayloads, id); c != nil {
			s.Payloads = append(s.Payloads, *c)
		}
	}
	for _, id := range sel.NodePayloads {
		for _, n := range nodes {
			if n.ID == id {
				s.NodePayloads = append(s.NodePayloads, n)
				break
			}
		}
	}
	return s
}

// equipment lists the single slots in their fixed accounting order.
func (s *Stack) equipment() []*catalog.Component {
	return []*catalog.Component{
		s.Frame,
		s.Propulsion,
		s.Battery,
		s.Compute,
		s.Radio,
		s.FlightController,
		s.VideoLink,
		s.Receiver,
		s.Camera,
		s.AuxRadio,
		s.AntennaA,
		s.AntennaB,
	}
}

// MissingRequiredParts names the unresolved required slots in display
// order. An empty result means the stack is evaluable.
func (s *Stack) MissingRequiredParts() []string {
	var missing []string
	if s.Frame == nil {
		missing = append(missing, "Frame")
	}
	if s.Propulsion == nil {
		missing = append(missing, "Propulsion")
	}
	if s.Battery == nil {
		missing = append(missing, "Battery")
	}
	if s.Compute == nil {
		missing = append(missing, "Compute")
	}
	if s.Radio == nil {
		missing = append(missing, "Radio")
	}
	return missing
}

// Domain returns the effective stack domain: explicit metadata first,
// then the frame's restriction, then air.
func (s *Stack) Domain() string {
	if s.Metadata.Domain != "" {
		return s.Metadata.Domain
	}
	if s.Frame != nil {
		switch s.Frame.Domain {
		case catalog.DomainAir, catalog.DomainGround, catalog.DomainMaritime:
			return s.Frame.Domain
		}
	}
	return catalog.DomainAir
}
