// File: internal/mission/normalize.go
// Brief: Canonical JSON codec for MissionProject entities.
//
// Sibling tools wrote several generations of field spellings. Each
// entity decodes through an ordered alias table, first defined value
// wins, and re-encodes with canonical names only. Unrecognized fields
// pass through untouched, so normalize(normalize(x)) == normalize(x)
// and nothing an upstream tool wrote is lost.

package mission

import (
	"encoding/json"
	"fmt"
)

func (l *Location) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out Location
	r.first(&out.Lat, "lat", "latitude")
	r.first(&out.Lon, "lon", "lng", "longitude")
	r.first(&out.ElevationM, "elevation_m", "hae", "alt_m", "altitude_m")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*l = out
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(l.Extra)
	w.setFloat("lat", l.Lat)
	w.setFloat("lon", l.Lon)
	w.setFloat("elevation_m", l.ElevationM)
	return w.marshal()
}

func (m *MissionInfo) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out MissionInfo
	r.first(&out.ID, "id", "mission_id")
	r.first(&out.Name, "name")
	r.first(&out.Objective, "objective", "mission_objective", "description")
	r.first(&out.AreaOfOperations, "area_of_operations", "ao", "area")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*m = out
	return nil
}

func (m MissionInfo) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(m.Extra)
	w.setString("id", m.ID)
	w.setString("name", m.Name)
	w.setString("objective", m.Objective)
	w.setString("area_of_operations", m.AreaOfOperations)
	w.setString("origin_tool", m.OriginTool)
	w.setString("notes", m.Notes)
	return w.marshal()
}

func (e *EnvironmentEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out EnvironmentEntry
	r.first(&out.ID, "id", "environment_id")
	r.first(&out.AltitudeBand, "altitude_band", "altitudeBand", "altitude")
	r.first(&out.TemperatureBand, "temperature_band", "temperatureBand", "temperature")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*e = out
	return nil
}

func (e EnvironmentEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(e.Extra)
	w.setString("id", e.ID)
	w.setString("altitude_band", e.AltitudeBand)
	w.setString("temperature_band", e.TemperatureBand)
	w.setString("origin_tool", e.OriginTool)
	w.setString("notes", e.Notes)
	return w.marshal()
}

func (c *ConstraintEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out ConstraintEntry
	r.first(&out.ID, "id", "constraint_id")
	r.first(&out.MinThrustToWeight, "min_thrust_to_weight", "min_twr")
	r.first(&out.MinEnduranceMin, "min_endurance_min", "min_endurance_minutes", "min_flight_time_min")
	r.first(&out.MaxAuwKg, "max_auw_kg", "max_weight_kg")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*c = out
	return nil
}

func (c ConstraintEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(c.Extra)
	w.setString("id", c.ID)
	w.setFloat("min_thrust_to_weight", c.MinThrustToWeight)
	w.setFloat("min_endurance_min", c.MinEnduranceMin)
	w.setFloat("max_auw_kg", c.MaxAuwKg)
	w.setString("origin_tool", c.OriginTool)
	w.setString("notes", c.Notes)
	return w.marshal()
}

func (n *NodeEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out NodeEntry
	r.first(&out.ID, "id", "node_id", "uuid")
	r.first(&out.Name, "name")
	r.first(&out.OriginTool, "origin_tool", "source_tool", "origin")
	r.firstStringList(&out.RoleTags, "role_tags", "roles", "role")
	r.first(&out.PowerDrawW, "power_draw_w", "power_w", "power")
	r.first(&out.WeightGrams, "weight_grams")
	var massKg *float64
	r.first(&massKg, "mass_kg")
	if out.WeightGrams == nil && massKg != nil {
		g := *massKg * 1000
		out.WeightGrams = &g
	}
	r.first(&out.RFBandGHz, "rf_band_ghz", "band_ghz", "rf_band")
	r.first(&out.Location, "location", "position")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*n = out
	return nil
}

func (n NodeEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(n.Extra)
	w.setString("id", n.ID)
	w.setString("name", n.Name)
	w.setString("origin_tool", n.OriginTool)
	w.setStrings("role_tags", n.RoleTags)
	w.setFloat("power_draw_w", n.PowerDrawW)
	w.setFloat("weight_grams", n.WeightGrams)
	w.setFloat("rf_band_ghz", n.RFBandGHz)
	w.setLocation("location", n.Location)
	w.setString("notes", n.Notes)
	return w.marshal()
}

func (p *PlatformEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out PlatformEntry
	r.first(&out.ID, "id", "platform_id")
	r.first(&out.Name, "name")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Domain, "domain")
	r.first(&out.FrameType, "frame_type", "frame")
	r.first(&out.MountedNodeIDs, "mounted_node_ids", "mounted_nodes", "node_ids")
	r.first(&out.PayloadIDs, "payload_ids", "payloads")
	r.first(&out.RFBandsGHz, "rf_bands_ghz", "rf_bands")
	r.first(&out.PowerBudgetW, "power_budget_w", "power_w")
	r.first(&out.BatteryWh, "battery_wh", "battery_energy_wh", "energy_wh")
	r.first(&out.AuwKg, "auw_kg", "mass_kg", "all_up_weight_kg")
	r.first(&out.NominalEnduranceMin, "nominal_endurance_min", "estimated_endurance_min", "endurance_min")
	r.first(&out.AdjustedEnduranceMin, "adjusted_endurance_min", "env_endurance_min")
	r.first(&out.ThrustToWeight, "thrust_to_weight", "twr")
	r.first(&out.AdjustedThrustToWeight, "adjusted_thrust_to_weight", "adjusted_twr")
	r.firstStringList(&out.MissionRoles, "mission_roles", "intended_roles", "role")
	// Ref fields alias only string-shaped keys. Some exporters inline a
	// whole environment object under "environment"; that rides through
	// Extra untouched instead of being mistaken for a reference.
	r.first(&out.EnvironmentRef, "environment_ref", "environment_id")
	r.first(&out.ConstraintsRef, "constraints_ref", "constraint_id")
	r.first(&out.LaunchMethod, "launch_method", "launch")
	r.first(&out.RecoveryMethod, "recovery_method", "recovery")
	r.first(&out.ThreatLevel, "threat_level", "threat")
	r.first(&out.Location, "location", "position")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*p = out
	return nil
}

func (p PlatformEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(p.Extra)
	w.setString("id", p.ID)
	w.setString("name", p.Name)
	w.setString("origin_tool", p.OriginTool)
	w.setString("domain", p.Domain)
	w.setString("frame_type", p.FrameType)
	w.setStrings("mounted_node_ids", p.MountedNodeIDs)
	w.setStrings("payload_ids", p.PayloadIDs)
	w.setFloats("rf_bands_ghz", p.RFBandsGHz)
	w.setFloat("power_budget_w", p.PowerBudgetW)
	w.setFloat("battery_wh", p.BatteryWh)
	w.setFloat("auw_kg", p.AuwKg)
	w.setFloat("nominal_endurance_min", p.NominalEnduranceMin)
	w.setFloat("adjusted_endurance_min", p.AdjustedEnduranceMin)
	w.setFloat("thrust_to_weight", p.ThrustToWeight)
	w.setFloat("adjusted_thrust_to_weight", p.AdjustedThrustToWeight)
	w.setStrings("mission_roles", p.MissionRoles)
	w.setString("environment_ref", p.EnvironmentRef)
	w.setString("constraints_ref", p.ConstraintsRef)
	w.setString("launch_method", p.LaunchMethod)
	w.setString("recovery_method", p.RecoveryMethod)
	w.setString("threat_level", p.ThreatLevel)
	w.setLocation("location", p.Location)
	w.setString("notes", p.Notes)
	return w.marshal()
}

func (m *MeshLinkEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out MeshLinkEntry
	r.first(&out.ID, "id", "link_id")
	r.first(&out.From, "from", "from_id", "source")
	r.first(&out.To, "to", "to_id", "target")
	r.first(&out.RFBandGHz, "rf_band_ghz", "band_ghz")
	r.first(&out.OriginTool, "origin_tool", "source_tool", "origin")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*m = out
	return nil
}

func (m MeshLinkEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(m.Extra)
	w.setString("id", m.ID)
	w.setString("from", m.From)
	w.setString("to", m.To)
	w.setFloat("rf_band_ghz", m.RFBandGHz)
	w.setString("origin_tool", m.OriginTool)
	w.setString("notes", m.Notes)
	return w.marshal()
}

func (k *KitEntry) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out KitEntry
	r.first(&out.ID, "id", "kit_id")
	r.first(&out.Name, "name")
	r.first(&out.PlatformIDs, "platform_ids", "supported_platform_ids", "platforms")
	r.first(&out.PowerBudgetW, "power_budget_w")
	r.first(&out.BatteryWh, "battery_wh")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Notes, "notes")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*k = out
	return nil
}

func (k KitEntry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(k.Extra)
	w.setString("id", k.ID)
	w.setString("name", k.Name)
	w.setStrings("platform_ids", k.PlatformIDs)
	w.setFloat("power_budget_w", k.PowerBudgetW)
	w.setFloat("battery_wh", k.BatteryWh)
	w.setString("origin_tool", k.OriginTool)
	w.setString("notes", k.Notes)
	return w.marshal()
}

func (b *Bundle) UnmarshalJSON(data []byte) error {
	r, err := newRawObject(data)
	if err != nil {
		return err
	}
	var out Bundle
	r.first(&out.SchemaVersion, "schemaVersion", "version")
	r.first(&out.OriginTool, "origin_tool", "source_tool")
	r.first(&out.Mission, "mission")
	r.first(&out.Environment, "environment", "environments")
	r.first(&out.Constraints, "constraints")
	r.first(&out.Nodes, "nodes")
	r.first(&out.Platforms, "platforms")
	r.first(&out.MeshLinks, "mesh_links", "meshLinks", "links")
	r.first(&out.Kits, "kits")
	if r.err != nil {
		return r.err
	}
	out.Extra = r.extra()
	*b = out
	return nil
}

func (b Bundle) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(b.Extra)
	w.setString("schemaVersion", b.SchemaVersion)
	// Legacy readers key off "version"; keep both spellings in sync.
	w.setString("version", b.SchemaVersion)
	w.setString("origin_tool", b.OriginTool)
	if b.Mission != nil {
		w.put("mission", b.Mission)
	}
	if b.Environment != nil {
		w.put("environment", b.Environment)
	}
	if b.Constraints != nil {
		w.put("constraints", b.Constraints)
	}
	if b.Nodes != nil {
		w.put("nodes", b.Nodes)
	}
	if b.Platforms != nil {
		w.put("platforms", b.Platforms)
	}
	if b.MeshLinks != nil {
		w.put("mesh_links", b.MeshLinks)
	}
	if b.Kits != nil {
		w.put("kits", b.Kits)
	}
	return w.marshal()
}

// DecodeBundle parses a MissionProject document into canonical form.
// Documents wrapped in a mission_project envelope are unwrapped first.
func DecodeBundle(data []byte) (Bundle, error) {
	var envelope struct {
		MissionProject json.RawMessage `json:"mission_project"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Bundle{}, fmt.Errorf("parse mission project: %w", err)
	}
	if len(envelope.MissionProject) > 0 && !isNull(envelope.MissionProject) {
		data = envelope.MissionProject
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("parse mission project: %w", err)
	}
	return b, nil
}

// EncodeBundle renders the canonical document, indented for direct use
// as an interchange file.
func EncodeBundle(b Bundle) ([]byte, error) {
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode mission project: %w", err)
	}
	return append(out, '\n'), nil
}

// Normalize rewrites a document in canonical form without touching its
// meaning. Applying it twice yields the same bytes as applying it once.
func Normalize(data []byte) ([]byte, error) {
	b, err := DecodeBundle(data)
	if err != nil {
		return nil, err
	}
	return EncodeBundle(b)
}
