// File: internal/config/config.go
// Brief: Flag plumbing and runtime options for the evaluate command.

// Package config defines the flag plumbing and runtime options for uxs
// evaluate, translating Cobra/pflag flag values into the strongly typed
// selection, metadata, environment, and constraint inputs the design
// evaluator consumes.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
)

// Options holds all CLI configuration used by evaluate.
type Options struct {
	Frame            string
	Propulsion       string
	Battery          string
	Compute          string
	Radio            string
	FlightController string
	VideoLink        string
	Receiver         string
	Camera           string
	AuxRadio         string
	AntennaA         string
	AntennaB         string
	Payloads         []string
	NodePayloads     []string

	StackName      string
	Domain         string
	MissionRole    string
	EMCON          string
	LaunchMethod   string
	RecoveryMethod string
	ThreatLevel    string

	AltitudeBand    string
	TemperatureBand string

	MinTWRRaw       string
	MinEnduranceRaw string
	MaxAuwRaw       string

	MissionProject string
	SaveAs         string
	MissionOut     string
	Format         string

	// Compiled by Validate.
	Constraints design.Constraints
}

// NewOptions returns Options with defaults applied. Environment bands are
// left empty here; the command fills them from the session before falling
// back to the band-table defaults.
func NewOptions() *Options {
	return &Options{
		Format: "table",
	}
}

// AddFlags binds evaluate flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches evaluate flags to an arbitrary FlagSet and returns the
// flag names for further customization.
func (o *Options) BindFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.StringVar(&o.Frame, "frame", "", "Frame component id (required slot)")
	names = append(names, "frame")
	fs.StringVar(&o.Propulsion, "propulsion", "", "Propulsion set component id (required slot)")
	names = append(names, "propulsion")
	fs.StringVar(&o.Battery, "battery", "", "Battery component id (required slot)")
	names = append(names, "battery")
	fs.StringVar(&o.Compute, "compute", "", "Compute module component id (required slot)")
	names = append(names, "compute")
	fs.StringVar(&o.Radio, "radio", "", "Mesh radio component id (required slot)")
	names = append(names, "radio")
	fs.StringVar(&o.FlightController, "flight-controller", "", "Flight controller component id")
	names = append(names, "flight-controller")
	fs.StringVar(&o.VideoLink, "video-link", "", "Video link component id")
	names = append(names, "video-link")
	fs.StringVar(&o.Receiver, "receiver", "", "RC receiver component id")
	names = append(names, "receiver")
	fs.StringVar(&o.Camera, "camera", "", "Camera component id")
	names = append(names, "camera")
	fs.StringVar(&o.AuxRadio, "aux-radio", "", "Auxiliary radio component id")
	names = append(names, "aux-radio")
	fs.StringVar(&o.AntennaA, "antenna-a", "", "Antenna component id paired with the video link")
	names = append(names, "antenna-a")
	fs.StringVar(&o.AntennaB, "antenna-b", "", "Antenna component id paired with the mesh radio")
	names = append(names, "antenna-b")
	fs.StringSliceVar(&o.Payloads, "payload", nil, "Payload component id; repeat or use comma-separated values for multiple")
	names = append(names, "payload")
	fs.StringSliceVar(&o.NodePayloads, "node", nil, "Imported node design id to mount as a payload; repeat for multiple")
	names = append(names, "node")
	fs.StringVar(&o.StackName, "name", "", "Display name for the platform (used with --save-as and --mission-out)")
	names = append(names, "name")
	fs.StringVar(&o.Domain, "domain", "", "Operating domain: air, ground, or maritime (defaults to the frame's domain)")
	names = append(names, "domain")
	fs.StringVar(&o.MissionRole, "mission-role", "", "Intended mission role tag, e.g. relay or recon")
	names = append(names, "mission-role")
	fs.StringVar(&o.EMCON, "emcon", "", "Emission control posture: normal, covert, or decoy")
	names = append(names, "emcon")
	fs.StringVar(&o.LaunchMethod, "launch", "", "Launch method, e.g. vtol or hand")
	names = append(names, "launch")
	fs.StringVar(&o.RecoveryMethod, "recovery", "", "Recovery method, e.g. vtol or net")
	names = append(names, "recovery")
	fs.StringVar(&o.ThreatLevel, "threat", "", "Expected threat level: low, medium, or high")
	names = append(names, "threat")
	fs.StringVar(&o.AltitudeBand, "altitude-band", "", "Altitude band id (defaults to the session's band, then sea_level)")
	names = append(names, "altitude-band")
	fs.StringVar(&o.TemperatureBand, "temperature-band", "", "Temperature band id (defaults to the session's band, then standard)")
	names = append(names, "temperature-band")
	fs.StringVar(&o.MinTWRRaw, "min-twr", "", "Minimum adjusted thrust-to-weight constraint")
	names = append(names, "min-twr")
	fs.StringVar(&o.MinEnduranceRaw, "min-endurance", "", "Minimum adjusted endurance constraint in minutes")
	names = append(names, "min-endurance")
	fs.StringVar(&o.MaxAuwRaw, "max-auw", "", "Maximum all-up weight constraint in kilograms")
	names = append(names, "max-auw")
	fs.StringVar(&o.MissionProject, "mission-project", "", "Mission project bundle whose nodes become selectable for this run without importing it")
	names = append(names, "mission-project")
	fs.StringVar(&o.SaveAs, "save-as", "", "Save the evaluated platform into the session under this id")
	names = append(names, "save-as")
	fs.StringVar(&o.MissionOut, "mission-out", "", "Write a mission project bundle containing the evaluated platform to this file")
	names = append(names, "mission-out")
	fs.StringVarP(&o.Format, "format", "o", "table", "Output format: table, json, or yaml")
	names = append(names, "format")
	return names
}

// Validate ensures provided options are coherent and compiles constraint
// inputs. Empty required slots are not an error here; unresolved slots
// surface through the evaluator's missing-parts gate instead.
func (o *Options) Validate() error {
	o.trimSlots()
	switch strings.ToLower(strings.TrimSpace(o.Domain)) {
	case "":
		o.Domain = ""
	case catalog.DomainAir:
		o.Domain = catalog.DomainAir
	case catalog.DomainGround:
		o.Domain = catalog.DomainGround
	case catalog.DomainMaritime:
		o.Domain = catalog.DomainMaritime
	default:
		return fmt.Errorf("invalid --domain value %q (allowed: air, ground, maritime)", o.Domain)
	}
	switch val := strings.ToLower(strings.TrimSpace(o.EMCON)); val {
	case "":
		o.EMCON = ""
	case "normal", "covert", "decoy":
		o.EMCON = val
	default:
		return fmt.Errorf("invalid --emcon value %q (allowed: normal, covert, decoy)", o.EMCON)
	}
	switch val := strings.ToLower(strings.TrimSpace(o.ThreatLevel)); val {
	case "":
		o.ThreatLevel = ""
	case "low", "medium", "high":
		o.ThreatLevel = val
	default:
		return fmt.Errorf("invalid --threat value %q (allowed: low, medium, high)", o.ThreatLevel)
	}
	if band := strings.TrimSpace(o.AltitudeBand); band != "" {
		if _, ok := design.AltitudeBandByID(band); !ok {
			return fmt.Errorf("unknown --altitude-band %q (run 'uxs session show' to list band ids)", o.AltitudeBand)
		}
		o.AltitudeBand = band
	} else {
		o.AltitudeBand = ""
	}
	if band := strings.TrimSpace(o.TemperatureBand); band != "" {
		if _, ok := design.TemperatureBandByID(band); !ok {
			return fmt.Errorf("unknown --temperature-band %q (run 'uxs session show' to list band ids)", o.TemperatureBand)
		}
		o.TemperatureBand = band
	} else {
		o.TemperatureBand = ""
	}
	var err error
	if o.Constraints.MinThrustToWeight, err = parseConstraint("min-twr", o.MinTWRRaw); err != nil {
		return err
	}
	if o.Constraints.MinEnduranceMin, err = parseConstraint("min-endurance", o.MinEnduranceRaw); err != nil {
		return err
	}
	if o.Constraints.MaxAuwKg, err = parseConstraint("max-auw", o.MaxAuwRaw); err != nil {
		return err
	}
	o.StackName = strings.TrimSpace(o.StackName)
	if o.StackName != "" && o.SaveAs == "" && o.MissionOut == "" {
		return fmt.Errorf("--name requires --save-as or --mission-out")
	}
	switch val := strings.ToLower(strings.TrimSpace(o.Format)); val {
	case "", "table":
		o.Format = "table"
	case "yml":
		o.Format = "yaml"
	case "json", "yaml":
		o.Format = val
	default:
		return fmt.Errorf("invalid --format value %q (allowed: table, json, yaml)", o.Format)
	}
	return nil
}

// Selection maps the slot flags onto a design selection.
func (o *Options) Selection() design.Selection {
	return design.Selection{
		Frame:            o.Frame,
		Propulsion:       o.Propulsion,
		Battery:          o.Battery,
		Compute:          o.Compute,
		Radio:            o.Radio,
		FlightController: o.FlightController,
		VideoLink:        o.VideoLink,
		Receiver:         o.Receiver,
		Camera:           o.Camera,
		AuxRadio:         o.AuxRadio,
		AntennaA:         o.AntennaA,
		AntennaB:         o.AntennaB,
		Payloads:         o.Payloads,
		NodePayloads:     o.NodePayloads,
	}
}

// Metadata maps the descriptive flags onto stack metadata.
func (o *Options) Metadata() design.Metadata {
	return design.Metadata{
		Name:           o.StackName,
		Domain:         o.Domain,
		MissionRole:    o.MissionRole,
		EMCON:          o.EMCON,
		LaunchMethod:   o.LaunchMethod,
		RecoveryMethod: o.RecoveryMethod,
		ThreatLevel:    o.ThreatLevel,
	}
}

// MergeSelection overlays the slot flags onto a base selection. A flag
// that was explicitly passed wins even when its value is empty, so a
// stored slot can be cleared; untouched flags keep the base value.
func (o *Options) MergeSelection(base design.Selection, fs *pflag.FlagSet) design.Selection {
	out := base
	slot := func(dst *string, name, val string) {
		if fs.Changed(name) || val != "" {
			*dst = val
		}
	}
	slot(&out.Frame, "frame", o.Frame)
	slot(&out.Propulsion, "propulsion", o.Propulsion)
	slot(&out.Battery, "battery", o.Battery)
	slot(&out.Compute, "compute", o.Compute)
	slot(&out.Radio, "radio", o.Radio)
	slot(&out.FlightController, "flight-controller", o.FlightController)
	slot(&out.VideoLink, "video-link", o.VideoLink)
	slot(&out.Receiver, "receiver", o.Receiver)
	slot(&out.Camera, "camera", o.Camera)
	slot(&out.AuxRadio, "aux-radio", o.AuxRadio)
	slot(&out.AntennaA, "antenna-a", o.AntennaA)
	slot(&out.AntennaB, "antenna-b", o.AntennaB)
	if fs.Changed("payload") || len(o.Payloads) > 0 {
		out.Payloads = o.Payloads
	}
	if fs.Changed("node") || len(o.NodePayloads) > 0 {
		out.NodePayloads = o.NodePayloads
	}
	return out
}

// MergeMetadata overlays the descriptive flags onto base metadata with
// the same rule MergeSelection applies to slots.
func (o *Options) MergeMetadata(base design.Metadata, fs *pflag.FlagSet) design.Metadata {
	out := base
	field := func(dst *string, name, val string) {
		if fs.Changed(name) || val != "" {
			*dst = val
		}
	}
	field(&out.Name, "name", o.StackName)
	field(&out.Domain, "domain", o.Domain)
	field(&out.MissionRole, "mission-role", o.MissionRole)
	field(&out.EMCON, "emcon", o.EMCON)
	field(&out.LaunchMethod, "launch", o.LaunchMethod)
	field(&out.RecoveryMethod, "recovery", o.RecoveryMethod)
	field(&out.ThreatLevel, "threat", o.ThreatLevel)
	return out
}

func (o *Options) trimSlots() {
	for _, p := range []*string{
		&o.Frame, &o.Propulsion, &o.Battery, &o.Compute, &o.Radio,
		&o.FlightController, &o.VideoLink, &o.Receiver, &o.Camera,
		&o.AuxRadio, &o.AntennaA, &o.AntennaB,
		&o.MissionRole, &o.LaunchMethod, &o.RecoveryMethod,
		&o.MissionProject, &o.SaveAs, &o.MissionOut,
	} {
		*p = strings.TrimSpace(*p)
	}
	o.Payloads = trimList(o.Payloads)
	o.NodePayloads = trimList(o.NodePayloads)
}

func trimList(vals []string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseConstraint(flag, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q: %w", flag, raw, err)
	}
	if val < 0 {
		return nil, fmt.Errorf("--%s cannot be negative", flag)
	}
	return &val, nil
}
