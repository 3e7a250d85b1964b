// File: internal/mission/platform.go
// Brief: Platform entity snapshots of evaluated stacks.

package mission

import (
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

func fptr(v float64) *float64 { return &v }

// collectRFBands gathers the distinct emitter bands of a stack in slot
// order: primary radio, aux radio, then video link.
func collectRFBands(s design.Stack) []float64 {
	var out []float64
	add := func(c *catalog.Component) {
		if c == nil || c.RFBandGHz <= 0 {
			return
		}
		for _, b := range out {
			if b == c.RFBandGHz {
				return
			}
		}
		out = append(out, c.RFBandGHz)
	}
	add(s.Radio)
	add(s.AuxRadio)
	add(s.VideoLink)
	return out
}

// PlatformFromStack captures an evaluated stack as a platform entity.
// An empty id derives one from the frame selection, an empty name falls
// back to a generic label, and nil roles fall back to the aggregated
// role tags. Environment and constraint refs are stamped later, at
// bundle build time, once the singleton ids are known.
func PlatformFromStack(id, name string, roles []string, sel design.Selection, s design.Stack, r design.Result) PlatformEntry {
	if id == "" {
		id = "plt-" + sel.Frame
	}
	if name == "" {
		name = "UxS platform"
	}
	if roles == nil {
		roles = r.RoleTags
	}
	frameType := sel.Frame
	if s.Frame != nil && s.Frame.FrameType != "" {
		frameType = s.Frame.FrameType
	}
	return PlatformEntry{
		ID:                     id,
		Name:                   name,
		OriginTool:             OriginToolName,
		Domain:                 s.Domain(),
		FrameType:              frameType,
		MountedNodeIDs:         append([]string(nil), sel.NodePayloads...),
		PayloadIDs:             append([]string(nil), sel.Payloads...),
		RFBandsGHz:             collectRFBands(s),
		PowerBudgetW:           fptr(r.PowerBudgetW),
		BatteryWh:              fptr(r.BatteryWh),
		AuwKg:                  fptr(r.TotalWeightG / 1000),
		NominalEnduranceMin:    fptr(r.EnduranceMin),
		AdjustedEnduranceMin:   fptr(r.AdjustedEnduranceMin),
		ThrustToWeight:         fptr(r.ThrustToWeight),
		AdjustedThrustToWeight: fptr(r.AdjustedThrustToWeight),
		MissionRoles:           append([]string(nil), roles...),
		LaunchMethod:           s.Metadata.LaunchMethod,
		RecoveryMethod:         s.Metadata.RecoveryMethod,
		ThreatLevel:            s.Metadata.ThreatLevel,
	}
}
