// File: internal/console/render.go
// Brief: Table renderers for listings, evaluations, and missions.

package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

const detailWidth = 64

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func cellList(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = strconv.Itoa(c) + "S"
	}
	return strings.Join(parts, "/")
}

// detailBudget clamps the DETAIL column to what the terminal leaves
// after the fixed columns. Non-terminal writers get the full width.
func detailBudget(w io.Writer) int {
	cols, ok := TerminalWidth(w)
	if !ok {
		return detailWidth
	}
	budget := cols - 56
	if budget > detailWidth {
		return detailWidth
	}
	if budget < 20 {
		return 20
	}
	return budget
}

// componentDetail summarizes the fields a category actually uses, in a
// fixed order so rows within a category line up.
func componentDetail(c catalog.Component, width int) string {
	var parts []string
	if c.FrameType != "" {
		parts = append(parts, c.FrameType)
	}
	if c.MaxAuwG > 0 {
		parts = append(parts, fmt.Sprintf("max AUW %.0f g", c.MaxAuwG))
	}
	if c.PayloadCapacityG > 0 {
		parts = append(parts, fmt.Sprintf("payload %.0f g", c.PayloadCapacityG))
	}
	if len(c.RecommendedCells) > 0 {
		parts = append(parts, cellList(c.RecommendedCells))
	}
	if c.ThrustG > 0 {
		parts = append(parts, fmt.Sprintf("%dx%.0f g thrust", c.Units, c.ThrustG))
	}
	if c.MaxCurrentA > 0 {
		parts = append(parts, fmt.Sprintf("%.0f A max", c.MaxCurrentA))
	}
	if c.MinCells > 0 || c.MaxCells > 0 {
		parts = append(parts, fmt.Sprintf("%d-%dS", c.MinCells, c.MaxCells))
	}
	if len(c.CompatibleFrames) > 0 {
		parts = append(parts, "fits "+strings.Join(c.CompatibleFrames, "/"))
	}
	if c.Cells > 0 && c.CapacityMAh > 0 {
		parts = append(parts, fmt.Sprintf("%dS %.0f mAh", c.Cells, c.CapacityMAh))
	}
	if c.RFBandGHz > 0 {
		parts = append(parts, fmt.Sprintf("%.3g GHz", c.RFBandGHz))
	}
	if c.MaxPowerMW > 0 {
		parts = append(parts, fmt.Sprintf("%.0f mW", c.MaxPowerMW))
	}
	if c.DutyCycle != "" {
		parts = append(parts, c.DutyCycle)
	}
	if c.RangeKm > 0 {
		parts = append(parts, fmt.Sprintf("%.0f km", c.RangeKm))
	}
	if c.Protocol != "" {
		parts = append(parts, c.Protocol)
	}
	if c.GainDBi > 0 {
		parts = append(parts, fmt.Sprintf("%.1f dBi", c.GainDBi))
	}
	if c.PowerW > 0 {
		parts = append(parts, fmt.Sprintf("%.1f W", c.PowerW))
	}
	if len(c.RoleTags) > 0 {
		parts = append(parts, "roles "+strings.Join(c.RoleTags, ","))
	}
	if len(parts) == 0 {
		return "-"
	}
	return Truncate(strings.Join(parts, ", "), width)
}

// PrintComponents renders one category as a table.
func PrintComponents(w io.Writer, category string, items []catalog.Component) {
	fmt.Fprintf(w, "%s (%d)\n", TitleLabel(category), len(items))
	if len(items) == 0 {
		return
	}
	budget := detailBudget(w)
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDOMAIN\tMASS\tCOST\tDETAIL")
	for _, c := range items {
		domain := c.Domain
		if domain == "" {
			domain = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f g\t$%.0f\t%s\n",
			c.ID, c.Name, domain, c.MassG, c.CostUSD, componentDetail(c, budget))
	}
	_ = tw.Flush()
}

// PrintRoleMatches renders role-filtered components grouped by category.
func PrintRoleMatches(w io.Writer, role string, matches map[string][]catalog.Component, order []string) {
	total := 0
	for _, items := range matches {
		total += len(items)
	}
	fmt.Fprintf(w, "Components tagged %q (%d)\n", role, total)
	if total == 0 {
		return
	}
	budget := detailBudget(w)
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tID\tNAME\tDETAIL")
	for _, category := range order {
		for _, c := range matches[category] {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", category, c.ID, c.Name, componentDetail(c, budget))
		}
	}
	_ = tw.Flush()
}

func slotRow(tw io.Writer, label string, c *catalog.Component) {
	if c == nil {
		return
	}
	fmt.Fprintf(tw, "  %s\t%s (%s)\n", label, c.Name, c.ID)
}

// PrintStack renders the resolved slots of a stack.
func PrintStack(w io.Writer, s design.Stack) {
	if s.Metadata.Name != "" {
		fmt.Fprintf(w, "Stack: %s\n", s.Metadata.Name)
	}
	tw := newTable(w)
	slotRow(tw, "Frame", s.Frame)
	slotRow(tw, "Propulsion", s.Propulsion)
	slotRow(tw, "Battery", s.Battery)
	slotRow(tw, "Compute", s.Compute)
	slotRow(tw, "Radio", s.Radio)
	slotRow(tw, "Flight controller", s.FlightController)
	slotRow(tw, "Video link", s.VideoLink)
	slotRow(tw, "Receiver", s.Receiver)
	slotRow(tw, "Camera", s.Camera)
	slotRow(tw, "Aux radio", s.AuxRadio)
	slotRow(tw, "Antenna A", s.AntennaA)
	slotRow(tw, "Antenna B", s.AntennaB)
	for _, p := range s.Payloads {
		fmt.Fprintf(tw, "  Payload\t%s (%s)\n", p.Name, p.ID)
	}
	for _, n := range s.NodePayloads {
		fmt.Fprintf(tw, "  Node payload\t%s (%s)\n", n.DisplayName(), n.ID)
	}
	_ = tw.Flush()
}

// PrintResult renders the evaluation figures and warnings.
func PrintResult(w io.Writer, r design.Result) {
	fmt.Fprintf(w, "Environment: %s / %s\n", r.Environment.Altitude.Label, r.Environment.Temperature.Label)

	tw := newTable(w)
	fmt.Fprintf(tw, "  All-up weight\t%.0f g (%.2f kg)\n", r.TotalWeightG, r.TotalWeightG/1000)
	fmt.Fprintf(tw, "  Total cost\t$%.0f\n", r.TotalCostUSD)
	fmt.Fprintf(tw, "  Thrust\t%.0f g\n", r.ThrustTotalG)
	fmt.Fprintf(tw, "  Thrust-to-weight\t%.2f nominal / %.2f adjusted\n", r.ThrustToWeight, r.AdjustedThrustToWeight)
	fmt.Fprintf(tw, "  Power budget\t%.1f W nominal / %.1f W adjusted\n", r.PowerBudgetW, r.AdjustedPowerBudgetW)
	fmt.Fprintf(tw, "    propulsion\t%.1f W\n", r.PropulsionPowerW)
	fmt.Fprintf(tw, "    avionics\t%.1f W\n", r.AvionicsPowerW)
	fmt.Fprintf(tw, "    payloads\t%.1f W\n", r.PayloadPowerW)
	fmt.Fprintf(tw, "  Battery\t%.1f Wh (%.1f Wh usable, %.1f Wh adjusted)\n", r.BatteryWh, r.UsableWh, r.AdjustedUsableWh)
	fmt.Fprintf(tw, "  Endurance\t%.1f min nominal / %.1f min adjusted\n", r.EnduranceMin, r.AdjustedEnduranceMin)
	if r.PayloadCapacityG > 0 {
		fmt.Fprintf(tw, "  Payload\t%.0f g of %.0f g capacity\n", r.PayloadMassG, r.PayloadCapacityG)
	} else {
		fmt.Fprintf(tw, "  Payload\t%.0f g\n", r.PayloadMassG)
	}
	if len(r.RoleTags) > 0 {
		fmt.Fprintf(tw, "  Roles\t%s\n", strings.Join(r.RoleTags, ", "))
	}
	_ = tw.Flush()

	if len(r.Warnings) == 0 {
		fmt.Fprintf(w, "%s no warnings\n", okTag())
		return
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "%s %s\n", severityTag(warning.Severity), warning.Message)
	}
}

// PrintMissingParts renders the unresolved required slots.
func PrintMissingParts(w io.Writer, parts []string) {
	fmt.Fprintf(w, "Stack is missing required parts: %s\n", strings.Join(parts, ", "))
}

// PrintPlatforms renders saved or imported platform entries.
func PrintPlatforms(w io.Writer, platforms []mission.PlatformEntry) {
	if len(platforms) == 0 {
		fmt.Fprintln(w, "No platforms.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDOMAIN\tFRAME\tAUW\tTWR adj\tENDURANCE adj\tROLES")
	for _, p := range platforms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			Truncate(p.Name, 28),
			orDash(p.Domain),
			orDash(p.FrameType),
			formatKg(p.AuwKg),
			formatFixed(p.AdjustedThrustToWeight, 2),
			formatMinutes(p.AdjustedEnduranceMin),
			orDash(strings.Join(p.MissionRoles, ",")),
		)
	}
	_ = tw.Flush()
}

// PrintMissionSummary renders the entity counts and headline info of a
// bundle.
func PrintMissionSummary(w io.Writer, b mission.Bundle) {
	if b.Mission != nil {
		fmt.Fprintf(w, "Mission: %s", b.Mission.Name)
		if b.Mission.ID != "" {
			fmt.Fprintf(w, " (%s)", b.Mission.ID)
		}
		fmt.Fprintln(w)
		if b.Mission.Objective != "" {
			fmt.Fprintf(w, "  Objective: %s\n", b.Mission.Objective)
		}
		if b.Mission.AreaOfOperations != "" {
			fmt.Fprintf(w, "  AO: %s\n", b.Mission.AreaOfOperations)
		}
	} else {
		fmt.Fprintln(w, "Mission: (none)")
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "  Platforms\t%d\n", len(b.Platforms))
	fmt.Fprintf(tw, "  Nodes\t%d\n", len(b.Nodes))
	fmt.Fprintf(tw, "  Mesh links\t%d\n", len(b.MeshLinks))
	fmt.Fprintf(tw, "  Kits\t%d\n", len(b.Kits))
	fmt.Fprintf(tw, "  Environments\t%d\n", len(b.Environment))
	fmt.Fprintf(tw, "  Constraint sets\t%d\n", len(b.Constraints))
	_ = tw.Flush()

	for _, env := range b.Environment {
		fmt.Fprintf(w, "  Environment %s: %s / %s\n", env.ID,
			orDash(TitleLabel(env.AltitudeBand)), orDash(TitleLabel(env.TemperatureBand)))
	}
	for _, con := range b.Constraints {
		var parts []string
		if con.MinThrustToWeight != nil {
			parts = append(parts, fmt.Sprintf("TWR >= %.2f", *con.MinThrustToWeight))
		}
		if con.MinEnduranceMin != nil {
			parts = append(parts, fmt.Sprintf("endurance >= %.0f min", *con.MinEnduranceMin))
		}
		if con.MaxAuwKg != nil {
			parts = append(parts, fmt.Sprintf("AUW <= %.2f kg", *con.MaxAuwKg))
		}
		fmt.Fprintf(w, "  Constraints %s: %s\n", con.ID, orDash(strings.Join(parts, ", ")))
	}
}

// PrintEnvironments renders the band tables with their factors.
func PrintEnvironments(w io.Writer, current design.Environment) {
	fmt.Fprintln(w, "Altitude bands")
	tw := newTable(w)
	fmt.Fprintln(tw, "  ID\tLABEL\tTHRUST EFF\tPOWER PENALTY")
	for _, band := range design.AltitudeBands() {
		marker := " "
		if band.ID == current.Altitude.ID {
			marker = "*"
		}
		fmt.Fprintf(tw, " %s%s\t%s\t%.2f\t+%.0f%%\n", marker, band.ID, band.Label, band.ThrustEfficiency, band.PowerPenalty*100)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "Temperature bands")
	tw = newTable(w)
	fmt.Fprintln(tw, "  ID\tLABEL\tCAPACITY")
	for _, band := range design.TemperatureBands() {
		marker := " "
		if band.ID == current.Temperature.ID {
			marker = "*"
		}
		fmt.Fprintf(tw, " %s%s\t%s\t%.2f\n", marker, band.ID, band.Label, band.CapacityFactor)
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatKg(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f kg", *v)
}

func formatMinutes(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f min", *v)
}

func formatFixed(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}
