// File: internal/mission/merge.go
// Brief: Id-keyed entity merging with field-presence overlays.

package mission

import "encoding/json"

// entity is anything merged by stable id.
type entity interface {
	EntityID() string
}

// mergeByID overlays local entries onto base. Base entries keep their
// positions and are never dropped; local entries with new ids append in
// their own order. Entries without an id are kept but never overlaid.
func mergeByID[T entity](base, local []T, overlay func(T, T) T) []T {
	if len(base) == 0 && len(local) == 0 {
		return nil
	}
	out := make([]T, 0, len(base)+len(local))
	index := make(map[string]int, len(base))
	for _, e := range base {
		if id := e.EntityID(); id != "" {
			index[id] = len(out)
		}
		out = append(out, e)
	}
	for _, e := range local {
		id := e.EntityID()
		if id == "" {
			out = append(out, e)
			continue
		}
		if i, ok := index[id]; ok {
			out[i] = overlay(out[i], e)
			continue
		}
		index[id] = len(out)
		out = append(out, e)
	}
	return out
}

// overlayExtra folds overlay passthrough fields onto the base set.
func overlayExtra(base, over map[string]json.RawMessage) map[string]json.RawMessage {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]json.RawMessage, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func pickString(base, over string) string {
	if over != "" {
		return over
	}
	return base
}

func pickFloat(base, over *float64) *float64 {
	if over != nil {
		return over
	}
	return base
}

func pickStrings(base, over []string) []string {
	if over != nil {
		return over
	}
	return base
}

func pickFloats(base, over []float64) []float64 {
	if over != nil {
		return over
	}
	return base
}

func pickLocation(base, over *Location) *Location {
	if over != nil {
		return over
	}
	return base
}

// overlayMission folds defined overlay fields onto the base mission.
func overlayMission(base, over *MissionInfo) *MissionInfo {
	if base == nil {
		return over
	}
	if over == nil {
		return base
	}
	out := *base
	out.ID = pickString(base.ID, over.ID)
	out.Name = pickString(base.Name, over.Name)
	out.Objective = pickString(base.Objective, over.Objective)
	out.AreaOfOperations = pickString(base.AreaOfOperations, over.AreaOfOperations)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return &out
}

func overlayEnvironment(base, over EnvironmentEntry) EnvironmentEntry {
	out := base
	out.AltitudeBand = pickString(base.AltitudeBand, over.AltitudeBand)
	out.TemperatureBand = pickString(base.TemperatureBand, over.TemperatureBand)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

func overlayConstraint(base, over ConstraintEntry) ConstraintEntry {
	out := base
	out.MinThrustToWeight = pickFloat(base.MinThrustToWeight, over.MinThrustToWeight)
	out.MinEnduranceMin = pickFloat(base.MinEnduranceMin, over.MinEnduranceMin)
	out.MaxAuwKg = pickFloat(base.MaxAuwKg, over.MaxAuwKg)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

func overlayNode(base, over NodeEntry) NodeEntry {
	out := base
	out.Name = pickString(base.Name, over.Name)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.RoleTags = pickStrings(base.RoleTags, over.RoleTags)
	out.PowerDrawW = pickFloat(base.PowerDrawW, over.PowerDrawW)
	out.WeightGrams = pickFloat(base.WeightGrams, over.WeightGrams)
	out.RFBandGHz = pickFloat(base.RFBandGHz, over.RFBandGHz)
	out.Location = pickLocation(base.Location, over.Location)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

func overlayPlatform(base, over PlatformEntry) PlatformEntry {
	out := base
	out.Name = pickString(base.Name, over.Name)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Domain = pickString(base.Domain, over.Domain)
	out.FrameType = pickString(base.FrameType, over.FrameType)
	out.MountedNodeIDs = pickStrings(base.MountedNodeIDs, over.MountedNodeIDs)
	out.PayloadIDs = pickStrings(base.PayloadIDs, over.PayloadIDs)
	out.RFBandsGHz = pickFloats(base.RFBandsGHz, over.RFBandsGHz)
	out.PowerBudgetW = pickFloat(base.PowerBudgetW, over.PowerBudgetW)
	out.BatteryWh = pickFloat(base.BatteryWh, over.BatteryWh)
	out.AuwKg = pickFloat(base.AuwKg, over.AuwKg)
	out.NominalEnduranceMin = pickFloat(base.NominalEnduranceMin, over.NominalEnduranceMin)
	out.AdjustedEnduranceMin = pickFloat(base.AdjustedEnduranceMin, over.AdjustedEnduranceMin)
	out.ThrustToWeight = pickFloat(base.ThrustToWeight, over.ThrustToWeight)
	out.AdjustedThrustToWeight = pickFloat(base.AdjustedThrustToWeight, over.AdjustedThrustToWeight)
	out.MissionRoles = pickStrings(base.MissionRoles, over.MissionRoles)
	out.EnvironmentRef = pickString(base.EnvironmentRef, over.EnvironmentRef)
	out.ConstraintsRef = pickString(base.ConstraintsRef, over.ConstraintsRef)
	out.LaunchMethod = pickString(base.LaunchMethod, over.LaunchMethod)
	out.RecoveryMethod = pickString(base.RecoveryMethod, over.RecoveryMethod)
	out.ThreatLevel = pickString(base.ThreatLevel, over.ThreatLevel)
	out.Location = pickLocation(base.Location, over.Location)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

func overlayMeshLink(base, over MeshLinkEntry) MeshLinkEntry {
	out := base
	out.From = pickString(base.From, over.From)
	out.To = pickString(base.To, over.To)
	out.RFBandGHz = pickFloat(base.RFBandGHz, over.RFBandGHz)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

func overlayKit(base, over KitEntry) KitEntry {
	out := base
	out.Name = pickString(base.Name, over.Name)
	out.PlatformIDs = pickStrings(base.PlatformIDs, over.PlatformIDs)
	out.PowerBudgetW = pickFloat(base.PowerBudgetW, over.PowerBudgetW)
	out.BatteryWh = pickFloat(base.BatteryWh, over.BatteryWh)
	out.OriginTool = pickString(base.OriginTool, over.OriginTool)
	out.Notes = pickString(base.Notes, over.Notes)
	out.Extra = overlayExtra(base.Extra, over.Extra)
	return out
}

// MergeNodes overlays local node entries onto imported ones.
func MergeNodes(base, local []NodeEntry) []NodeEntry {
	return mergeByID(base, local, overlayNode)
}

// MergePlatforms overlays local platform entries onto imported ones.
func MergePlatforms(base, local []PlatformEntry) []PlatformEntry {
	return mergeByID(base, local, overlayPlatform)
}

// MergeMeshLinks overlays local mesh links onto imported ones.
func MergeMeshLinks(base, local []MeshLinkEntry) []MeshLinkEntry {
	return mergeByID(base, local, overlayMeshLink)
}

// MergeKits overlays local kits onto imported ones.
func MergeKits(base, local []KitEntry) []KitEntry {
	return mergeByID(base, local, overlayKit)
}
