// File: internal/mission/adapters.go
// Brief: Synthetic catalog components for imported node designs.

package mission

import (
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

const (
	payloadAdapterSuffix = "-payload"
	computeAdapterSuffix = "-compute"
	radioAdapterSuffix   = "-radio"

	// Floor for compute and radio adapters when the node declares no
	// draw. A module mounted in either slot is powered.
	adapterFloorPowerW = 5.0
)

// NodeAdapters expands one node design into the three slot-specific
// components it can be mounted as. Ids derive from the node id so a
// selection referencing an adapter survives re-import.
func NodeAdapters(n design.NodeDesign) (payload, compute, radio catalog.Component) {
	name := n.DisplayName()
	power := n.PowerDrawW
	if power <= 0 {
		power = adapterFloorPowerW
	}
	payload = catalog.Component{
		ID:       n.ID + payloadAdapterSuffix,
		Name:     name + " (payload)",
		MassG:    n.WeightG,
		PowerW:   n.PowerDrawW,
		RoleTags: append([]string(nil), n.RoleTags...),
	}
	compute = catalog.Component{
		ID:       n.ID + computeAdapterSuffix,
		Name:     name + " (compute)",
		MassG:    n.WeightG,
		PowerW:   power,
		RoleTags: append([]string(nil), n.RoleTags...),
	}
	radio = catalog.Component{
		ID:        n.ID + radioAdapterSuffix,
		Name:      name + " (radio)",
		MassG:     n.WeightG,
		PowerW:    power,
		RFBandGHz: n.RFBandGHz,
		RoleTags:  append([]string(nil), n.RoleTags...),
	}
	return payload, compute, radio
}

// ExtendCollection returns a copy of the catalog with adapters for
// every node appended to the payload, compute and radio categories.
// Nodes without an id are skipped; their adapters would not be
// addressable.
func ExtendCollection(col catalog.Collection, nodes []design.NodeDesign) catalog.Collection {
	if len(nodes) == 0 {
		return col
	}
	out := col
	out.Payloads = append([]catalog.Component(nil), col.Payloads...)
	out.Compute = append([]catalog.Component(nil), col.Compute...)
	out.Radios = append([]catalog.Component(nil), col.Radios...)
	for _, n := range nodes {
		if n.ID == "" {
			continue
		}
		payload, compute, radio := NodeAdapters(n)
		out.Payloads = append(out.Payloads, payload)
		out.Compute = append(out.Compute, compute)
		out.Radios = append(out.Radios, radio)
	}
	return out
}

// NodeDesignFromEntry flattens a canonical node entity for assembly.
// An entry without an id borrows its name, matching what older exports
// used as the key.
func NodeDesignFromEntry(e NodeEntry) design.NodeDesign {
	d := design.NodeDesign{
		ID:         e.ID,
		Name:       e.Name,
		OriginTool: e.OriginTool,
		RoleTags:   append([]string(nil), e.RoleTags...),
	}
	if d.ID == "" {
		d.ID = e.Name
	}
	if e.PowerDrawW != nil {
		d.PowerDrawW = *e.PowerDrawW
	}
	if e.WeightGrams != nil {
		d.WeightG = *e.WeightGrams
	}
	if e.RFBandGHz != nil {
		d.RFBandGHz = *e.RFBandGHz
	}
	return d
}

// NodeDesigns flattens a node list, dropping entries with neither id
// nor name.
func NodeDesigns(entries []NodeEntry) []design.NodeDesign {
	var out []design.NodeDesign
	for _, e := range entries {
		if e.ID == "" && e.Name == "" {
			continue
		}
		out = append(out, NodeDesignFromEntry(e))
	}
	return out
}

// NodeEntryFromDesign lifts a node design back into entity form.
func NodeEntryFromDesign(d design.NodeDesign) NodeEntry {
	e := NodeEntry{
		ID:         d.ID,
		Name:       d.Name,
		OriginTool: d.OriginTool,
		RoleTags:   append([]string(nil), d.RoleTags...),
	}
	if d.PowerDrawW > 0 {
		v := d.PowerDrawW
		e.PowerDrawW = &v
	}
	if d.WeightG > 0 {
		v := d.WeightG
		e.WeightGrams = &v
	}
	if d.RFBandGHz > 0 {
		v := d.RFBandGHz
		e.RFBandGHz = &v
	}
	return e
}
