// File: internal/mission/validate.go
// Brief: Import-side bundle checks.

package mission

import "fmt"

// ValidateBundle rejects bundles whose entities cannot be addressed.
// Everything merge-keyed needs an id; nodes may substitute a name, which
// older exports used as the key. Field values are not range-checked, the
// evaluator owns that judgement.
func ValidateBundle(b Bundle) error {
	for i, e := range b.Environment {
		if e.ID == "" {
			return fmt.Errorf("environment[%d]: missing id", i)
		}
	}
	for i, c := range b.Constraints {
		if c.ID == "" {
			return fmt.Errorf("constraints[%d]: missing id", i)
		}
	}
	for i, n := range b.Nodes {
		if n.ID == "" && n.Name == "" {
			return fmt.Errorf("nodes[%d]: missing id and name", i)
		}
	}
	for i, p := range b.Platforms {
		if p.ID == "" {
			return fmt.Errorf("platforms[%d]: missing id", i)
		}
	}
	for i, l := range b.MeshLinks {
		if l.ID == "" {
			return fmt.Errorf("mesh_links[%d]: missing id", i)
		}
		if l.From == "" || l.To == "" {
			return fmt.Errorf("mesh_links[%d] %s: missing endpoint", i, l.ID)
		}
	}
	for i, k := range b.Kits {
		if k.ID == "" {
			return fmt.Errorf("kits[%d]: missing id", i)
		}
	}
	return nil
}
