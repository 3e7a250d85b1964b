// File: internal/design/environment.go
// Brief: Altitude and temperature band tables with default fallback.

// Package design holds the stack model and the evaluation engine: a
// Selection of catalog ids is assembled into a Stack, and Evaluate derives
// weight, power, thrust and endurance figures for it under an Environment
// and an optional set of Constraints. Everything in this package is pure;
// no I/O, no logging, no shared state.
package design

// AltitudeBand models thinner air at altitude: less usable thrust and a
// power penalty for holding the same load.
type AltitudeBand struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	ThrustEfficiency float64 `json:"thrust_efficiency"`
	PowerPenalty     float64 `json:"power_penalty"`
}

// TemperatureBand models cold-soak capacity loss of the battery.
type TemperatureBand struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	CapacityFactor float64 `json:"capacity_factor"`
}

const (
	DefaultAltitudeBandID    = "sea_level"
	DefaultTemperatureBandID = "standard"
)

var altitudeBands = []AltitudeBand{
	{ID: "sea_level", Label: "Sea level (0-500 m)", ThrustEfficiency: 1.00, PowerPenalty: 0.00},
	{ID: "foothills", Label: "Foothills (500-1500 m)", ThrustEfficiency: 0.93, PowerPenalty: 0.05},
	{ID: "mountain", Label: "Mountain (1500-3000 m)", ThrustEfficiency: 0.85, PowerPenalty: 0.12},
	{ID: "high_mountain", Label: "High mountain (3000-4500 m)", ThrustEfficiency: 0.74, PowerPenalty: 0.22},
}

var temperatureBands = []TemperatureBand{
	{ID: "standard", Label: "Standard (10-30 C)", CapacityFactor: 1.00},
	{ID: "hot", Label: "Hot (30-45 C)", CapacityFactor: 0.95},
	{ID: "cold", Label: "Cold (-10-10 C)", CapacityFactor: 0.88},
	{ID: "freezing", Label: "Freezing (below -10 C)", CapacityFactor: 0.75},
}

// AltitudeBands returns the band table in its fixed order.
func AltitudeBands() []AltitudeBand {
	out := make([]AltitudeBand, len(altitudeBands))
	copy(out, altitudeBands)
	return out
}

// TemperatureBands returns the band table in its fixed order.
func TemperatureBands() []TemperatureBand {
	out := make([]TemperatureBand, len(temperatureBands))
	copy(out, temperatureBands)
	return out
}

// AltitudeBandByID looks up a band by id.
func AltitudeBandByID(id string) (AltitudeBand, bool) {
	for _, b := range altitudeBands {
		if b.ID == id {
			return b, true
		}
	}
	return AltitudeBand{}, false
}

// TemperatureBandByID looks up a band by id.
func TemperatureBandByID(id string) (TemperatureBand, bool) {
	for _, b := range temperatureBands {
		if b.ID == id {
			return b, true
		}
	}
	return TemperatureBand{}, false
}

// Environment is the resolved pair of bands an evaluation runs under.
type Environment struct {
	Altitude    AltitudeBand    `json:"altitude"`
	Temperature TemperatureBand `json:"temperature"`
}

// ResolveEnvironment resolves band ids, falling back to sea level and
// standard temperature for empty or unknown ids.
func ResolveEnvironment(altitudeID, temperatureID string) Environment {
	alt, ok := AltitudeBandByID(altitudeID)
	if !ok {
		alt, _ = AltitudeBandByID(DefaultAltitudeBandID)
	}
	temp, ok := TemperatureBandByID(temperatureID)
	if !ok {
		temp, _ = TemperatureBandByID(DefaultTemperatureBandID)
	}
	return Environment{Altitude: alt, Temperature: temp}
}
