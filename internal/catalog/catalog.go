// File: internal/catalog/catalog.go
// Brief: Component model and catalog collection.

// Package catalog holds the static component catalog the stack designer
// draws parts from: frames, propulsion sets, batteries, radios, payloads
// and the smaller avionics categories. Entries are immutable once loaded.
package catalog

import "fmt"

// Domain values a component may be restricted to. "any" and "multi"
// components are usable in every domain.
const (
	DomainAir      = "air"
	DomainGround   = "ground"
	DomainMaritime = "maritime"
	DomainMulti    = "multi"
	DomainAny      = "any"
)

// Category names as they appear as collection keys in catalog files.
const (
	CategoryFrames            = "frames"
	CategoryPropulsion        = "propulsion"
	CategoryFlightControllers = "flight_controllers"
	CategoryVideoLinks        = "video_links"
	CategoryReceivers         = "receivers"
	CategoryAntennas          = "antennas"
	CategoryCameras           = "cameras"
	CategoryBatteries         = "batteries"
	CategoryCompute           = "compute"
	CategoryRadios            = "radios"
	CategoryPayloads          = "payloads"
)

// Component is a single catalog entry. One struct covers every category;
// fields that do not apply to a category stay at their zero value and are
// omitted on the wire.
type Component struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Domain  string  `json:"domain,omitempty" yaml:"domain,omitempty"`
	MassG   float64 `json:"mass_g,omitempty" yaml:"mass_g,omitempty"`
	CostUSD float64 `json:"cost_usd,omitempty" yaml:"cost_usd,omitempty"`
	Notes   string  `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Frame fields.
	FrameType        string  `json:"frame_type,omitempty" yaml:"frame_type,omitempty"`
	MaxAuwG          float64 `json:"max_auw_g,omitempty" yaml:"max_auw_g,omitempty"`
	PayloadCapacityG float64 `json:"payload_capacity_g,omitempty" yaml:"payload_capacity_g,omitempty"`
	RecommendedCells []int   `json:"recommended_cells,omitempty" yaml:"recommended_cells,omitempty"`

	// Propulsion fields. ThrustG and MaxCurrentA are per-unit peak
	// ratings; Units is the motor/thruster count of the set.
	ThrustG          float64  `json:"thrust_g,omitempty" yaml:"thrust_g,omitempty"`
	Units            int      `json:"units,omitempty" yaml:"units,omitempty"`
	MaxCurrentA      float64  `json:"max_current_a,omitempty" yaml:"max_current_a,omitempty"`
	MinCells         int      `json:"min_cells,omitempty" yaml:"min_cells,omitempty"`
	MaxCells         int      `json:"max_cells,omitempty" yaml:"max_cells,omitempty"`
	CompatibleFrames []string `json:"compatible_frames,omitempty" yaml:"compatible_frames,omitempty"`

	// Battery fields.
	Cells       int     `json:"cells,omitempty" yaml:"cells,omitempty"`
	CapacityMAh float64 `json:"capacity_mah,omitempty" yaml:"capacity_mah,omitempty"`

	// Power and RF fields shared by compute units, radios, video links,
	// receivers and antennas.
	PowerW     float64 `json:"power_w,omitempty" yaml:"power_w,omitempty"`
	RFBandGHz  float64 `json:"rf_band_ghz,omitempty" yaml:"rf_band_ghz,omitempty"`
	DutyCycle  string  `json:"duty_cycle,omitempty" yaml:"duty_cycle,omitempty"`
	RangeKm    float64 `json:"range_km,omitempty" yaml:"range_km,omitempty"`
	MaxPowerMW float64 `json:"max_power_mw,omitempty" yaml:"max_power_mw,omitempty"`
	Protocol   string  `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	GainDBi    float64 `json:"gain_dbi,omitempty" yaml:"gain_dbi,omitempty"`

	RoleTags []string `json:"role_tags,omitempty" yaml:"role_tags,omitempty"`
}

// HasRoleTag reports whether the component carries the given role tag.
func (c Component) HasRoleTag(tag string) bool {
	for _, t := range c.RoleTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Collection is a full catalog, one slice per category.
type Collection struct {
	Frames            []Component `json:"frames,omitempty" yaml:"frames,omitempty"`
	Propulsion        []Component `json:"propulsion,omitempty" yaml:"propulsion,omitempty"`
	FlightControllers []Component `json:"flight_controllers,omitempty" yaml:"flight_controllers,omitempty"`
	VideoLinks        []Component `json:"video_links,omitempty" yaml:"video_links,omitempty"`
	Receivers         []Component `json:"receivers,omitempty" yaml:"receivers,omitempty"`
	Antennas          []Component `json:"antennas,omitempty" yaml:"antennas,omitempty"`
	Cameras           []Component `json:"cameras,omitempty" yaml:"cameras,omitempty"`
	Batteries         []Component `json:"batteries,omitempty" yaml:"batteries,omitempty"`
	Compute           []Component `json:"compute,omitempty" yaml:"compute,omitempty"`
	Radios            []Component `json:"radios,omitempty" yaml:"radios,omitempty"`
	Payloads          []Component `json:"payloads,omitempty" yaml:"payloads,omitempty"`
}

// Categories returns the category names in their fixed display order.
func Categories() []string {
	return []string{
		CategoryFrames,
		CategoryPropulsion,
		CategoryFlightControllers,
		CategoryVideoLinks,
		CategoryReceivers,
		CategoryAntennas,
		CategoryCameras,
		CategoryBatteries,
		CategoryCompute,
		CategoryRadios,
		CategoryPayloads,
	}
}

// Category returns the entries of one category by name.
func (c *Collection) Category(name string) ([]Component, error) {
	switch name {
	case CategoryFrames:
		return c.Frames, nil
	case CategoryPropulsion:
		return c.Propulsion, nil
	case CategoryFlightControllers:
		return c.FlightControllers, nil
	case CategoryVideoLinks:
		return c.VideoLinks, nil
	case CategoryReceivers:
		return c.Receivers, nil
	case CategoryAntennas:
		return c.Antennas, nil
	case CategoryCameras:
		return c.Cameras, nil
	case CategoryBatteries:
		return c.Batteries, nil
	case CategoryCompute:
		return c.Compute, nil
	case CategoryRadios:
		return c.Radios, nil
	case CategoryPayloads:
		return c.Payloads, nil
	default:
		return nil, fmt.Errorf("unknown catalog category %q", name)
	}
}

// Lookup resolves a component by category and id. Nil means no match.
func (c *Collection) Lookup(category, id string) *Component {
	items, err := c.Category(category)
	if err != nil {
		return nil
	}
	return Resolve(items, id)
}
