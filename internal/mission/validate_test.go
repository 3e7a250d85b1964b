// File: internal/mission/validate_test.go
// Brief: Import validation tests.

package mission

import (
	"strings"
	"testing"
)

func TestValidateBundleAcceptsPreset(t *testing.T) {
	b, err := Whitefrost()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if err := ValidateBundle(b); err != nil {
		t.Fatalf("preset should validate: %v", err)
	}
}

func TestValidateBundleNamesOffendingEntity(t *testing.T) {
	cases := []struct {
		name string
		b    Bundle
		want string
	}{
		{"platform", Bundle{Platforms: []PlatformEntry{{Name: "anon"}}}, "platforms[0]"},
		{"node", Bundle{Nodes: []NodeEntry{{}}}, "nodes[0]"},
		{"link id", Bundle{MeshLinks: []MeshLinkEntry{{From: "a", To: "b"}}}, "mesh_links[0]"},
		{"link endpoint", Bundle{MeshLinks: []MeshLinkEntry{{ID: "lnk-1", From: "a"}}}, "missing endpoint"},
		{"kit", Bundle{Kits: []KitEntry{{Name: "spares"}}}, "kits[0]"},
		{"environment", Bundle{Environment: []EnvironmentEntry{{AltitudeBand: "mountain"}}}, "environment[0]"},
		{"constraint", Bundle{Constraints: []ConstraintEntry{{}}}, "constraints[0]"},
	}
	for _, tc := range cases {
		err := ValidateBundle(tc.b)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not name entity", tc.name, err)
		}
	}
}

func TestValidateBundleAllowsNamedNode(t *testing.T) {
	b := Bundle{Nodes: []NodeEntry{{Name: "Ridge Relay"}}}
	if err := ValidateBundle(b); err != nil {
		t.Fatalf("named node should pass: %v", err)
	}
}
