package mission

import (
	"testing"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

func TestNodeAdapters(t *testing.T) {
	n := design.NodeDesign{
		ID:        "node-ridge",
		Name:      "Ridge Relay",
		WeightG:   410,
		PowerDrawW: 7.5,
		RFBandGHz: 2.4,
		RoleTags:  []string{"relay"},
	}
	payload, compute, radio := NodeAdapters(n)
	if payload.ID != "node-ridge-payload" || compute.ID != "node-ridge-compute" || radio.ID != "node-ridge-radio" {
		t.Fatalf("ids = %q %q %q", payload.ID, compute.ID, radio.ID)
	}
	if payload.Name != "Ridge Relay (payload)" || compute.Name != "Ridge Relay (compute)" || radio.Name != "Ridge Relay (radio)" {
		t.Fatalf("names = %q %q %q", payload.Name, compute.Name, radio.Name)
	}
	if payload.MassG != 410 || compute.MassG != 410 || radio.MassG != 410 {
		t.Fatalf("mass = %v %v %v", payload.MassG, compute.MassG, radio.MassG)
	}
	if compute.PowerW != 7.5 || radio.PowerW != 7.5 {
		t.Fatalf("power = %v %v", compute.PowerW, radio.PowerW)
	}
	if radio.RFBandGHz != 2.4 || payload.RFBandGHz != 0 {
		t.Fatalf("band = %v %v, want band on the radio adapter only", radio.RFBandGHz, payload.RFBandGHz)
	}
	if !radio.HasRoleTag("relay") {
		t.Fatalf("role tags = %v", radio.RoleTags)
	}
}

func TestNodeAdaptersPowerFloor(t *testing.T) {
	payload, compute, radio := NodeAdapters(design.NodeDesign{ID: "n1"})
	if compute.PowerW != adapterFloorPowerW || radio.PowerW != adapterFloorPowerW {
		t.Fatalf("floor = %v %v", compute.PowerW, radio.PowerW)
	}
	if payload.PowerW != 0 {
		t.Fatalf("payload power = %v, want declared draw only", payload.PowerW)
	}
	if payload.Name != "n1 (payload)" {
		t.Fatalf("name = %q, want id fallback", payload.Name)
	}
}

func TestExtendCollection(t *testing.T) {
	col, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	nodes := []design.NodeDesign{
		{ID: "node-a", WeightG: 100},
		{Name: "no id, skipped"},
	}
	ext := ExtendCollection(col, nodes)
	if len(ext.Payloads) != len(col.Payloads)+1 {
		t.Fatalf("payloads = %d, want one adapter added", len(ext.Payloads))
	}
	if len(ext.Compute) != len(col.Compute)+1 || len(ext.Radios) != len(col.Radios)+1 {
		t.Fatalf("compute = %d radios = %d", len(ext.Compute), len(ext.Radios))
	}
	if c := ext.Lookup(catalog.CategoryPayloads, "node-a-payload"); c == nil {
		t.Fatal("adapter not addressable through the collection")
	}
	if c := col.Lookup(catalog.CategoryPayloads, "node-a-payload"); c != nil {
		t.Fatal("source collection mutated")
	}
}

func TestNodeEntryDesignRoundTrip(t *testing.T) {
	w := func(v float64) *float64 { return &v }
	e := NodeEntry{
		ID:          "n1",
		Name:        "Ridge",
		OriginTool:  "fieldkit",
		RoleTags:    []string{"relay"},
		PowerDrawW:  w(7.5),
		WeightGrams: w(410),
		RFBandGHz:   w(2.4),
	}
	d := NodeDesignFromEntry(e)
	if d.ID != "n1" || d.WeightG != 410 || d.PowerDrawW != 7.5 || d.RFBandGHz != 2.4 {
		t.Fatalf("design = %+v", d)
	}
	back := NodeEntryFromDesign(d)
	if back.ID != e.ID || back.Name != e.Name || back.OriginTool != e.OriginTool {
		t.Fatalf("entry = %+v", back)
	}
	if *back.WeightGrams != 410 || *back.PowerDrawW != 7.5 || *back.RFBandGHz != 2.4 {
		t.Fatalf("figures = %+v", back)
	}
}

func TestNodeDesignsNameFallbackAndSkip(t *testing.T) {
	got := NodeDesigns([]NodeEntry{{Name: "Ridge Relay"}, {}, {ID: "n1"}})
	if len(got) != 2 {
		t.Fatalf("designs = %+v", got)
	}
	if got[0].ID != "Ridge Relay" {
		t.Fatalf("expected name to stand in for a missing id, got %q", got[0].ID)
	}
	if got[1].ID != "n1" {
		t.Fatalf("designs = %+v", got)
	}
}
