// File: internal/mission/build.go
// Brief: Outbound bundle assembly from import base plus session state.

package mission

import (
	"github.com/google/uuid"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

// Fallback mission id when the session names a mission and no import
// carried one. Fixed so repeated exports stay diffable.
const localMissionID = "mission-local"

// BuildInput is everything an export draws from. The imported bundle is
// the base layer; all other fields are session state layered on top.
type BuildInput struct {
	Imported  *Bundle
	Mission   MissionInfo
	Nodes     []NodeEntry
	Platforms []PlatformEntry
	MeshLinks []MeshLinkEntry
	Kits      []KitEntry

	AltitudeBand    string
	TemperatureBand string
	Constraints     design.Constraints

	// Previously minted singleton ids. Empty means mint a new one.
	EnvironmentID string
	ConstraintID  string
}

// BuildOutput carries the assembled bundle and the singleton ids the
// caller must record so later exports update in place.
type BuildOutput struct {
	Bundle        Bundle
	EnvironmentID string
	ConstraintID  string
}

// mintID returns prefix plus the first uuid segment, short enough to
// read in a diff and unique enough to never collide in a bundle.
func mintID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// Build assembles the outbound document. Imported entities keep their
// positions and unknown fields; session entities overlay by id and
// append when new. The session's environment and constraints each map
// to one entity, minted on first export and updated in place after.
// Aside from that minting, the same input produces the same output.
func Build(in BuildInput) (BuildOutput, error) {
	var base Bundle
	if in.Imported != nil {
		base = *in.Imported
	}

	out := BuildOutput{
		EnvironmentID: in.EnvironmentID,
		ConstraintID:  in.ConstraintID,
	}

	b := Bundle{
		SchemaVersion: SchemaVersion,
		OriginTool:    OriginToolName,
		Extra:         base.Extra,
	}

	if missionEmpty(in.Mission) {
		b.Mission = base.Mission
	} else {
		mission := in.Mission
		if base.Mission == nil {
			if mission.ID == "" {
				mission.ID = localMissionID
			}
			if mission.OriginTool == "" {
				mission.OriginTool = OriginToolName
			}
		}
		b.Mission = overlayMission(base.Mission, &mission)
	}

	env := EnvironmentEntry{
		ID:              in.EnvironmentID,
		AltitudeBand:    in.AltitudeBand,
		TemperatureBand: in.TemperatureBand,
		OriginTool:      OriginToolName,
	}
	if env.ID == "" {
		env.ID = mintID("env")
	}
	out.EnvironmentID = env.ID
	b.Environment = upsertEnvironment(base.Environment, env)

	b.Constraints = base.Constraints
	if !in.Constraints.Empty() {
		con := ConstraintEntry{
			ID:                in.ConstraintID,
			MinThrustToWeight: in.Constraints.MinThrustToWeight,
			MinEnduranceMin:   in.Constraints.MinEnduranceMin,
			MaxAuwKg:          in.Constraints.MaxAuwKg,
			OriginTool:        OriginToolName,
		}
		if con.ID == "" {
			con.ID = mintID("con")
		}
		out.ConstraintID = con.ID
		b.Constraints = upsertConstraint(base.Constraints, con)
	}

	b.Nodes = MergeNodes(base.Nodes, in.Nodes)

	platforms := make([]PlatformEntry, len(in.Platforms))
	for i, p := range in.Platforms {
		p.EnvironmentRef = out.EnvironmentID
		if out.ConstraintID != "" {
			p.ConstraintsRef = out.ConstraintID
		}
		platforms[i] = p
	}
	b.Platforms = MergePlatforms(base.Platforms, platforms)

	links := make([]MeshLinkEntry, len(in.MeshLinks))
	for i, l := range in.MeshLinks {
		if l.OriginTool == "" {
			l.OriginTool = OriginToolName
		}
		links[i] = l
	}
	b.MeshLinks = MergeMeshLinks(base.MeshLinks, links)

	kits := make([]KitEntry, len(in.Kits))
	for i, k := range in.Kits {
		if k.OriginTool == "" {
			k.OriginTool = OriginToolName
		}
		kits[i] = k
	}
	b.Kits = MergeKits(base.Kits, kits)

	out.Bundle = b
	return out, nil
}

func missionEmpty(m MissionInfo) bool {
	return m.ID == "" && m.Name == "" && m.Objective == "" &&
		m.AreaOfOperations == "" && m.Notes == "" && len(m.Extra) == 0
}

// upsertEnvironment overlays the session environment onto a matching
// base entry, or prepends it so the current environment reads first.
func upsertEnvironment(base []EnvironmentEntry, env EnvironmentEntry) []EnvironmentEntry {
	out := append([]EnvironmentEntry(nil), base...)
	for i := range out {
		if out[i].ID == env.ID {
			out[i] = overlayEnvironment(out[i], env)
			return out
		}
	}
	return append([]EnvironmentEntry{env}, out...)
}

func upsertConstraint(base []ConstraintEntry, con ConstraintEntry) []ConstraintEntry {
	out := append([]ConstraintEntry(nil), base...)
	for i := range out {
		if out[i].ID == con.ID {
			out[i] = overlayConstraint(out[i], con)
			return out
		}
	}
	return append([]ConstraintEntry{con}, out...)
}
