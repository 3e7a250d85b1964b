// File: cmd/uxs/evaluate.go
// Brief: CLI command wiring and implementation for 'evaluate'.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/config"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/console"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/session"
)

// errMissingParts marks evaluation aborts caused by unresolved required
// slots, so the top-level error handler can attach a browsing hint.
var errMissingParts = errors.New("stack is missing required parts")

type evaluateReport struct {
	Selection design.Selection `json:"selection"`
	Metadata  design.Metadata  `json:"metadata"`
	Result    design.Result    `json:"result"`
}

func newEvaluateCommand(catalogPath, sessionPath *string) *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Assemble a component stack and evaluate its performance envelope",
		Long: "Assemble a stack from catalog component ids, score its mass, power, endurance, and link budget against the working environment, and report constraint findings. " +
			"The selection becomes the session's working stack; imported mission nodes mount as components via --node.",
		Example: `  # Minimum viable air stack
  uxs evaluate --frame frame-hex650 --propulsion prop-4006-6 --battery bat-6s-5000 \
      --compute cpu-cm4-carrier --radio radio-mesh-24

  # Same stack in cold mountain air with a tighter endurance floor
  uxs evaluate --frame frame-hex650 --propulsion prop-4006-6 --battery bat-6s-5000 \
      --compute cpu-cm4-carrier --radio radio-mesh-24 \
      --altitude-band mountain --temperature-band cold --min-endurance 18

  # Save the result for mission export
  uxs evaluate ... --name "Ridge Relay" --save-as plt-ridge --mission-out mission_project.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts, *catalogPath, *sessionPath)
		},
	}
	opts.AddFlags(cmd)
	decorateCommandHelp(cmd, "Evaluate Flags")
	return cmd
}

func runEvaluate(cmd *cobra.Command, opts *config.Options, catalogPath, sessionPath string) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	format := normalizeFormat(opts.Format)

	store, err := openStore(sessionPath)
	if err != nil {
		return err
	}
	defer store.Close()
	state, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	altBand := state.EffectiveAltitudeBand()
	if opts.AltitudeBand != "" {
		altBand = opts.AltitudeBand
	}
	tempBand := state.EffectiveTemperatureBand()
	if opts.TemperatureBand != "" {
		tempBand = opts.TemperatureBand
	}
	cons := mergeConstraints(state.Constraints, opts.Constraints)

	col, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	nodes := state.NodeDesigns()
	if opts.MissionProject != "" {
		data, err := os.ReadFile(opts.MissionProject)
		if err != nil {
			return fmt.Errorf("read %s: %w", opts.MissionProject, err)
		}
		bundle, err := mission.DecodeBundle(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", opts.MissionProject, err)
		}
		nodes = append(nodes, mission.NodeDesigns(bundle.Nodes)...)
	}
	col = mission.ExtendCollection(col, nodes)

	// Flags overlay the session's working selection, so a slot set once
	// sticks across invocations and an explicitly passed empty flag
	// clears it.
	sel := opts.MergeSelection(state.Selection, cmd.Flags())
	meta := opts.MergeMetadata(state.Metadata, cmd.Flags())
	stack := design.Assemble(col, nodes, sel, meta)

	out := cmd.OutOrStdout()
	if missing := stack.MissingRequiredParts(); len(missing) > 0 {
		switch format {
		case "table":
			console.PrintMissingParts(out, missing)
		case "json":
			if err := encodeJSON(out, map[string][]string{"missing_required_parts": missing}); err != nil {
				return err
			}
		case "yaml":
			if err := encodeYAML(out, map[string][]string{"missing_required_parts": missing}); err != nil {
				return err
			}
		}
		return fmt.Errorf("%w: %s", errMissingParts, strings.Join(missing, ", "))
	}

	env := design.ResolveEnvironment(altBand, tempBand)
	result := design.Evaluate(stack, env, cons)

	switch format {
	case "table":
		console.PrintStack(out, stack)
		console.PrintResult(out, result)
	case "json":
		if err := encodeJSON(out, evaluateReport{Selection: sel, Metadata: meta, Result: result}); err != nil {
			return err
		}
	case "yaml":
		if err := encodeYAML(out, evaluateReport{Selection: sel, Metadata: meta, Result: result}); err != nil {
			return err
		}
	}

	// Status lines go to stdout in table mode and stderr otherwise, so
	// structured output stays machine-readable.
	status := out
	if format != "table" {
		status = cmd.ErrOrStderr()
	}

	var roles []string
	if meta.MissionRole != "" {
		roles = []string{meta.MissionRole}
	}
	if opts.SaveAs != "" {
		platform := mission.PlatformFromStack(opts.SaveAs, opts.StackName, roles, sel, stack, result)
		state.SavePlatform(session.SavedPlatform{
			Entry:           platform,
			Selection:       sel,
			Metadata:        meta,
			AltitudeBand:    altBand,
			TemperatureBand: tempBand,
			Constraints:     cons,
			Result:          result,
			SavedAt:         time.Now().UTC(),
		})
		fmt.Fprintf(status, "Saved platform %q to session\n", platform.ID)
	}
	if opts.MissionOut != "" {
		tmp := state
		if opts.SaveAs == "" {
			tmp.SavedPlatforms = append([]session.SavedPlatform(nil), state.SavedPlatforms...)
			tmp.SavePlatform(session.SavedPlatform{
				Entry: mission.PlatformFromStack("", opts.StackName, roles, sel, stack, result),
			})
		}
		bundle, err := tmp.ExportBundle()
		if err != nil {
			return err
		}
		data, err := mission.EncodeBundle(bundle)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.MissionOut, data, 0o644); err != nil {
			return fmt.Errorf("write mission bundle: %w", err)
		}
		state.EnvironmentID = tmp.EnvironmentID
		state.ConstraintID = tmp.ConstraintID
		fmt.Fprintf(status, "Mission bundle written to %s\n", opts.MissionOut)
	}

	state.Selection = sel
	state.Metadata = meta
	if opts.AltitudeBand != "" {
		state.AltitudeBand = opts.AltitudeBand
	}
	if opts.TemperatureBand != "" {
		state.TemperatureBand = opts.TemperatureBand
	}
	state.Constraints = cons
	return store.Save(cmd.Context(), state)
}

// mergeConstraints overlays flag-provided floors onto the session's
// working constraints, field by field.
func mergeConstraints(base, flags design.Constraints) design.Constraints {
	merged := base
	if flags.MinThrustToWeight != nil {
		merged.MinThrustToWeight = flags.MinThrustToWeight
	}
	if flags.MinEnduranceMin != nil {
		merged.MinEnduranceMin = flags.MinEnduranceMin
	}
	if flags.MaxAuwKg != nil {
		merged.MaxAuwKg = flags.MaxAuwKg
	}
	return merged
}
