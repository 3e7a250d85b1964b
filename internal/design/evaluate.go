// File: internal/design/evaluate.go
// Brief: Performance and compatibility evaluation of an assembled stack.

package design

import (
	"fmt"
	"math"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
)

// Power and thrust figures are first-order approximations from peak-rated
// component specs, not solved flight dynamics. The throttle fractions
// estimate continuous draw as a share of the peak current rating; hover
// load sits far above rolling or floating load.
const (
	cellNominalV     = 3.7
	usableEnergyFrac = 0.90

	airThrottleFraction     = 0.35
	surfaceThrottleFraction = 0.12

	continuousRadioDrawW = 6.0
	burstRadioDrawW      = 2.0
	receiverBaselineW    = 0.5
	autopilotBaselineW   = 0.5
	videoDrawPerRFWatt   = 5.0

	rfBandToleranceGHz = 0.5

	minNominalTWR      = 1.3
	minAdjustedTWRHard = 1.1
	adjustedTWRSoftMin = 1.5
)

// Radio duty cycle values recognized on catalog entries.
const (
	DutyContinuous = "continuous"
	DutyBurst      = "burst"
)

// Warning severities. Caution marks a margin note rather than a fault.
const (
	SeverityWarning = "warning"
	SeverityCaution = "caution"
)

// Warning is one evaluation finding. Checks are independent and never
// short-circuit each other.
type Warning struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Constraints are optional floors and ceilings checked against the
// adjusted figures. Nil fields are not configured.
type Constraints struct {
	MinThrustToWeight *float64 `json:"min_thrust_to_weight,omitempty"`
	MinEnduranceMin   *float64 `json:"min_endurance_min,omitempty"`
	MaxAuwKg          *float64 `json:"max_auw_kg,omitempty"`
}

// Empty reports whether no constraint is configured.
func (c Constraints) Empty() bool {
	return c.MinThrustToWeight == nil && c.MinEnduranceMin == nil && c.MaxAuwKg == nil
}

// Result is the derived evaluation of one stack. It is recomputed on
// every call and never persisted directly.
type Result struct {
	TotalWeightG           float64     `json:"total_weight_g"`
	TotalCostUSD           float64     `json:"total_cost_usd"`
	ThrustTotalG           float64     `json:"thrust_total_g"`
	ThrustToWeight         float64     `json:"thrust_to_weight"`
	AdjustedThrustToWeight float64     `json:"adjusted_thrust_to_weight"`
	PropulsionPowerW       float64     `json:"propulsion_power_w"`
	AvionicsPowerW         float64     `json:"avionics_power_w"`
	PayloadPowerW          float64     `json:"payload_power_w"`
	PowerBudgetW           float64     `json:"power_budget_w"`
	AdjustedPowerBudgetW   float64     `json:"adjusted_power_budget_w"`
	BatteryWh              float64     `json:"battery_wh"`
	UsableWh               float64     `json:"usable_wh"`
	AdjustedUsableWh       float64     `json:"adjusted_usable_wh"`
	EnduranceMin           float64     `json:"nominal_endurance_min"`
	AdjustedEnduranceMin   float64     `json:"adjusted_endurance_min"`
	PayloadMassG           float64     `json:"payload_mass_g"`
	PayloadCapacityG       float64     `json:"payload_capacity_g"`
	RoleTags               []string    `json:"role_tags"`
	Warnings               []Warning   `json:"warnings"`
	Environment            Environment `json:"environment"`
}

// Evaluate derives the performance and compatibility result for a stack
// under the given environment and constraints. Callers must check
// MissingRequiredParts first; with the required slots resolved, every
// absent optional component contributes zero and degenerate denominators
// yield zero rather than an error.
func Evaluate(s Stack, env Environment, cons Constraints) Result {
	r := Result{Environment: env}
	domain := s.Domain()

	for _, c := range s.equipment() {
		if c == nil {
			continue
		}
		r.TotalWeightG += c.MassG
		r.TotalCostUSD += c.CostUSD
	}
	for _, p := range s.Payloads {
		r.TotalWeightG += p.MassG
		r.TotalCostUSD += p.CostUSD
		r.PayloadMassG += p.MassG
	}
	for _, n := range s.NodePayloads {
		r.TotalWeightG += n.WeightG
		r.PayloadMassG += n.WeightG
	}

	if s.Propulsion != nil {
		r.ThrustTotalG = s.Propulsion.ThrustG * float64(s.Propulsion.Units)
	}
	if r.TotalWeightG > 0 {
		r.ThrustToWeight = r.ThrustTotalG / r.TotalWeightG
		r.AdjustedThrustToWeight = r.ThrustTotalG * env.Altitude.ThrustEfficiency / r.TotalWeightG
	}

	voltage := 0.0
	if s.Battery != nil {
		voltage = float64(s.Battery.Cells) * cellNominalV
	}
	if s.Propulsion != nil {
		r.PropulsionPowerW = throttleFraction(domain) * s.Propulsion.MaxCurrentA * float64(s.Propulsion.Units) * voltage
	}

	if s.Compute != nil {
		r.AvionicsPowerW += s.Compute.PowerW
	}
	r.AvionicsPowerW += radioDraw(s.Radio)
	r.AvionicsPowerW += radioDraw(s.AuxRadio)
	if s.VideoLink != nil {
		r.AvionicsPowerW += s.VideoLink.MaxPowerMW / 1000 * videoDrawPerRFWatt
	}
	if s.Receiver != nil {
		r.AvionicsPowerW += receiverBaselineW
	}
	if s.FlightController != nil {
		r.AvionicsPowerW += autopilotBaselineW
	}

	for _, p := range s.Payloads {
		r.PayloadPowerW += p.PowerW
	}
	for _, n := range s.NodePayloads {
		r.PayloadPowerW += n.PowerDrawW
	}

	r.PowerBudgetW = r.PropulsionPowerW + r.AvionicsPowerW + r.PayloadPowerW
	r.AdjustedPowerBudgetW = r.PowerBudgetW * (1 + env.Altitude.PowerPenalty)

	if s.Battery != nil {
		r.BatteryWh = s.Battery.CapacityMAh / 1000 * voltage
	}
	r.UsableWh = r.BatteryWh * usableEnergyFrac
	r.AdjustedUsableWh = r.UsableWh * env.Temperature.CapacityFactor

	if r.PowerBudgetW > 0 {
		r.EnduranceMin = r.UsableWh / r.PowerBudgetW * 60
	}
	if r.AdjustedPowerBudgetW > 0 {
		r.AdjustedEnduranceMin = r.AdjustedUsableWh / r.AdjustedPowerBudgetW * 60
	}

	if s.Frame != nil {
		r.PayloadCapacityG = s.Frame.PayloadCapacityG
	}

	var tags TagSet
	if s.Frame != nil {
		tags.Add(s.Frame.RoleTags...)
	}
	for _, p := range s.Payloads {
		tags.Add(p.RoleTags...)
	}
	for _, n := range s.NodePayloads {
		tags.Add(n.RoleTags...)
	}
	r.RoleTags = tags.Slice()

	r.Warnings = collectWarnings(&s, &r, domain, cons)
	return r
}

func throttleFraction(domain string) float64 {
	if domain == catalog.DomainAir {
		return airThrottleFraction
	}
	return surfaceThrottleFraction
}

// radioDraw returns the duty-tier draw for a radio-class component. A
// declared typical draw wins when the entry carries no duty cycle, as
// the synthetic node adapters do.
func radioDraw(c *catalog.Component) float64 {
	if c == nil {
		return 0
	}
	switch c.DutyCycle {
	case DutyContinuous:
		return continuousRadioDrawW
	case DutyBurst:
		return burstRadioDrawW
	}
	if c.PowerW > 0 {
		return c.PowerW
	}
	return continuousRadioDrawW
}

func collectWarnings(s *Stack, r *Result, domain string, cons Constraints) []Warning {
	var warnings []Warning
	warn := func(severity, format string, args ...any) {
		warnings = append(warnings, Warning{Severity: severity, Message: fmt.Sprintf(format, args...)})
	}

	if s.Battery != nil && s.Frame != nil && len(s.Frame.RecommendedCells) > 0 {
		if !containsInt(s.Frame.RecommendedCells, s.Battery.Cells) {
			warn(SeverityWarning, "Battery cell count %dS is outside the frame's recommended set %s",
				s.Battery.Cells, formatCells(s.Frame.RecommendedCells))
		}
	}
	if s.Battery != nil && s.Propulsion != nil && (s.Propulsion.MinCells > 0 || s.Propulsion.MaxCells > 0) {
		if (s.Propulsion.MinCells > 0 && s.Battery.Cells < s.Propulsion.MinCells) ||
			(s.Propulsion.MaxCells > 0 && s.Battery.Cells > s.Propulsion.MaxCells) {
			warn(SeverityWarning, "Battery %dS is outside the propulsion supported range %d-%dS",
				s.Battery.Cells, s.Propulsion.MinCells, s.Propulsion.MaxCells)
		}
	}
	if s.Frame != nil && s.Frame.MaxAuwG > 0 && r.TotalWeightG > s.Frame.MaxAuwG {
		warn(SeverityWarning, "All-up weight %.0f g exceeds the frame limit of %.0f g",
			r.TotalWeightG, s.Frame.MaxAuwG)
	}
	if s.Frame != nil && s.Frame.PayloadCapacityG > 0 && r.PayloadMassG > s.Frame.PayloadCapacityG {
		warn(SeverityWarning, "Payload mass %.0f g exceeds the frame payload capacity of %.0f g",
			r.PayloadMassG, s.Frame.PayloadCapacityG)
	}
	if domain == catalog.DomainAir {
		if r.ThrustToWeight < minNominalTWR {
			warn(SeverityWarning, "Thrust-to-weight %.2f is below the %.1f floor: limited climb and station-keep margin",
				r.ThrustToWeight, minNominalTWR)
		}
		if r.AdjustedThrustToWeight < minAdjustedTWRHard {
			warn(SeverityWarning, "Adjusted thrust-to-weight %.2f is below %.1f at %s: unable to hold station",
				r.AdjustedThrustToWeight, minAdjustedTWRHard, r.Environment.Altitude.Label)
		} else if r.AdjustedThrustToWeight < adjustedTWRSoftMin {
			warn(SeverityCaution, "Adjusted thrust-to-weight %.2f leaves thin margin (below %.1f)",
				r.AdjustedThrustToWeight, adjustedTWRSoftMin)
		}
	}
	if s.Frame != nil && s.Propulsion != nil && len(s.Propulsion.CompatibleFrames) > 0 {
		if !containsString(s.Propulsion.CompatibleFrames, s.Frame.FrameType) {
			warn(SeverityWarning, "Propulsion set does not list frame type %q as compatible", s.Frame.FrameType)
		}
	}
	checkBandPairing(&warnings, "Antenna A", s.AntennaA, "video link", s.VideoLink)
	checkBandPairing(&warnings, "Antenna B", s.AntennaB, "radio link", s.Radio)

	if cons.MaxAuwKg != nil && r.TotalWeightG/1000 > *cons.MaxAuwKg {
		warn(SeverityWarning, "All-up weight %.2f kg exceeds the configured maximum of %.2f kg",
			r.TotalWeightG/1000, *cons.MaxAuwKg)
	}
	if cons.MinThrustToWeight != nil && r.AdjustedThrustToWeight < *cons.MinThrustToWeight {
		warn(SeverityWarning, "Adjusted thrust-to-weight %.2f is below the configured minimum of %.2f",
			r.AdjustedThrustToWeight, *cons.MinThrustToWeight)
	}
	if cons.MinEnduranceMin != nil && r.AdjustedEnduranceMin < *cons.MinEnduranceMin {
		warn(SeverityWarning, "Adjusted endurance %.1f min is below the configured minimum of %.1f min",
			r.AdjustedEnduranceMin, *cons.MinEnduranceMin)
	}
	return warnings
}

func checkBandPairing(warnings *[]Warning, antennaLabel string, antenna *catalog.Component, linkLabel string, link *catalog.Component) {
	if antenna == nil || link == nil || antenna.RFBandGHz == 0 || link.RFBandGHz == 0 {
		return
	}
	if math.Abs(antenna.RFBandGHz-link.RFBandGHz) > rfBandToleranceGHz {
		*warnings = append(*warnings, Warning{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%s band %.3g GHz does not match the %s at %.3g GHz",
				antennaLabel, antenna.RFBandGHz, linkLabel, link.RFBandGHz),
		})
	}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func formatCells(cells []int) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += "/"
		}
		out += fmt.Sprintf("%dS", c)
	}
	return out
}
