package overlay

import (
	"testing"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

func w(v float64) *float64 { return &v }

func testBundle() mission.Bundle {
	return mission.Bundle{
		OriginTool: "uxs",
		Nodes: []mission.NodeEntry{
			{
				ID:         "n-located",
				Name:       "Ridge Relay",
				OriginTool: "fieldkit",
				RoleTags:   []string{"relay"},
				RFBandGHz:  w(2.4),
				PowerDrawW: w(7.5),
				Location:   &mission.Location{Lat: w(68.912), Lon: w(15.634), ElevationM: w(742)},
			},
			{ID: "n-unplaced", Name: "Bench unit"},
		},
		Platforms: []mission.PlatformEntry{
			{
				ID:             "p-located",
				Name:           "Mule",
				MissionRoles:   []string{"relay", "cargo"},
				RFBandsGHz:     []float64{2.4},
				PowerBudgetW:   w(133.46),
				EnvironmentRef: "env-1",
				ConstraintsRef: "con-1",
				Location:       &mission.Location{Lat: w(68.899), Lon: w(15.59)},
			},
			{ID: "p-airborne", Name: "Hex"},
		},
		MeshLinks: []mission.MeshLinkEntry{
			{ID: "l-good", From: "n-located", To: "p-located", RFBandGHz: w(2.4), Notes: "backhaul"},
			{ID: "l-dangling", From: "n-located", To: "p-airborne"},
		},
	}
}

func TestGeoJSONFeatures(t *testing.T) {
	fc := GeoJSON(testBundle())
	if fc.Type != "FeatureCollection" {
		t.Fatalf("type = %q", fc.Type)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("features = %d, want node + platform + link", len(fc.Features))
	}

	node := fc.Features[0]
	if node.Properties.Type != FeatureNode || node.Properties.ID != "n-located" {
		t.Fatalf("first feature = %+v", node.Properties)
	}
	coords, ok := node.Geometry.Coordinates.([]float64)
	if !ok || len(coords) != 3 {
		t.Fatalf("node coords = %v", node.Geometry.Coordinates)
	}
	if coords[0] != 15.634 || coords[1] != 68.912 || coords[2] != 742 {
		t.Fatalf("node coords = %v, want lon lat elevation", coords)
	}
	if node.Properties.OriginTool != "fieldkit" {
		t.Fatalf("node origin = %q", node.Properties.OriginTool)
	}

	plat := fc.Features[1]
	if plat.Properties.Type != FeaturePlatform {
		t.Fatalf("second feature = %q", plat.Properties.Type)
	}
	pc := plat.Geometry.Coordinates.([]float64)
	if len(pc) != 2 {
		t.Fatalf("platform coords = %v, want no elevation", pc)
	}
	if plat.Properties.EnvironmentRef != "env-1" || plat.Properties.ConstraintsRef != "con-1" {
		t.Fatalf("platform refs = %+v", plat.Properties)
	}
	if len(plat.Properties.Role) != 2 {
		t.Fatalf("platform role = %v", plat.Properties.Role)
	}

	link := fc.Features[2]
	if link.Geometry.Type != "LineString" || link.Properties.Type != FeatureMeshLink {
		t.Fatalf("third feature = %+v", link.Properties)
	}
	lc, ok := link.Geometry.Coordinates.([][]float64)
	if !ok || len(lc) != 2 {
		t.Fatalf("link coords = %v", link.Geometry.Coordinates)
	}
	if lc[0][0] != 15.634 || lc[1][1] != 68.899 {
		t.Fatalf("link coords = %v", lc)
	}
	if link.Properties.OriginTool != "mesh" {
		t.Fatalf("link origin = %q, want fallback", link.Properties.OriginTool)
	}
	if link.Properties.Name != "l-good" || link.Properties.Notes != "backhaul" {
		t.Fatalf("link props = %+v", link.Properties)
	}
}

func TestGeoJSONSkipsUnplaced(t *testing.T) {
	fc := GeoJSON(testBundle())
	for _, f := range fc.Features {
		if f.Properties.ID == "n-unplaced" || f.Properties.ID == "p-airborne" || f.Properties.ID == "l-dangling" {
			t.Fatalf("unplaced entity projected: %q", f.Properties.ID)
		}
	}
}

func TestGeoJSONEmptyBundle(t *testing.T) {
	fc := GeoJSON(mission.Bundle{})
	if fc.Features == nil || len(fc.Features) != 0 {
		t.Fatalf("features = %v, want empty list not null", fc.Features)
	}
}

func TestCoTEvents(t *testing.T) {
	set := CoT(testBundle())
	if len(set.Events) != 2 {
		t.Fatalf("events = %d, want located platform + node", len(set.Events))
	}

	plat := set.Events[0]
	if plat.Type != "a-f-A-M-UxS" || plat.ID != "p-located" {
		t.Fatalf("first event = %+v, want platforms first", plat)
	}
	if plat.How != "m-g" {
		t.Fatalf("how = %q", plat.How)
	}
	if plat.Remarks != "Mule (relay, cargo)" {
		t.Fatalf("remarks = %q", plat.Remarks)
	}
	if plat.Point.Lat != 68.899 || plat.Point.Lon != 15.59 || plat.Point.HAE != nil {
		t.Fatalf("point = %+v", plat.Point)
	}
	if plat.Detail.PowerBudgetW == nil || *plat.Detail.PowerBudgetW != 133.46 {
		t.Fatalf("detail = %+v", plat.Detail)
	}

	node := set.Events[1]
	if node.Type != "b-r-f" || node.ID != "n-located" {
		t.Fatalf("second event = %+v", node)
	}
	if node.Point.HAE == nil || *node.Point.HAE != 742 {
		t.Fatalf("node hae = %v", node.Point.HAE)
	}
	if node.Remarks != "Ridge Relay (relay)" {
		t.Fatalf("remarks = %q", node.Remarks)
	}
}

func TestCoTRemarksFallbacks(t *testing.T) {
	b := mission.Bundle{Nodes: []mission.NodeEntry{{
		ID:       "n1",
		Location: &mission.Location{Lat: w(1), Lon: w(2)},
	}}}
	set := CoT(b)
	if set.Events[0].Remarks != "n1 (unspecified)" {
		t.Fatalf("remarks = %q", set.Events[0].Remarks)
	}
	if set.Events[0].Detail.OriginTool != mission.OriginToolName {
		t.Fatalf("origin = %q, want tool fallback", set.Events[0].Detail.OriginTool)
	}
}

func TestWhitefrostProjections(t *testing.T) {
	b, err := mission.Whitefrost()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	fc := GeoJSON(b)
	// Two nodes, the located UGV, and the ridge-shore link. The hex
	// carries no fix, so its link stays off the map.
	if len(fc.Features) != 4 {
		t.Fatalf("features = %d", len(fc.Features))
	}
	set := CoT(b)
	if len(set.Events) != 3 {
		t.Fatalf("events = %d", len(set.Events))
	}
}
