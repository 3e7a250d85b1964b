// File: cmd/uxs/session.go
// Brief: CLI command wiring and implementation for 'session'.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/console"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/design"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/session"
)

func newSessionCommand(catalogPath, sessionPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "session",
		Short:         "Inspect and manage the working session",
		Long:          "Inspect the working session: the current selection, environment bands, constraints, imported mission layers, and saved platforms.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newSessionShowCommand(catalogPath, sessionPath),
		newSessionPlatformsCommand(sessionPath),
		newSessionLoadCommand(sessionPath),
		newSessionForgetCommand(sessionPath),
		newSessionClearCommand(sessionPath),
	)
	decorateCommandHelp(cmd, "Session Flags")
	return cmd
}

func newSessionShowCommand(catalogPath, sessionPath *string) *cobra.Command {
	format := "table"
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show the working session state",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			state, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch normalizeFormat(format) {
			case "table":
				return printSessionSummary(cmd, store, state, *catalogPath)
			case "json":
				return encodeJSON(out, state)
			case "yaml":
				return encodeYAML(out, state)
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", format, "Output format: table, json, or yaml")
	decorateCommandHelp(cmd, "Show Flags")
	return cmd
}

func printSessionSummary(cmd *cobra.Command, store *session.Store, state session.State, catalogPath string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", store.Path())
	if state.Mission.Name != "" || state.Mission.ID != "" {
		name := state.Mission.Name
		if name == "" {
			name = state.Mission.ID
		}
		fmt.Fprintf(out, "Mission: %s\n", name)
	}
	if state.Imported != nil {
		origin := state.Imported.OriginTool
		if origin == "" {
			origin = "unknown tool"
		}
		fmt.Fprintf(out, "Imported base layer: %d nodes, %d platforms (origin %s)\n",
			len(state.Imported.Nodes), len(state.Imported.Platforms), origin)
	}
	fmt.Fprintln(out)

	if hasSelection(state.Selection) {
		col, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		col = mission.ExtendCollection(col, state.NodeDesigns())
		stack := design.Assemble(col, state.NodeDesigns(), state.Selection, state.Metadata)
		console.PrintStack(out, stack)
	} else {
		fmt.Fprintln(out, "No working selection. Run 'uxs evaluate' with component flags to start one.")
	}
	fmt.Fprintln(out)

	console.PrintEnvironments(out, state.Environment())
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Constraints: %s\n", describeConstraints(state.Constraints))
	fmt.Fprintf(out, "Nodes: %d (%d imported, %d local)  Platforms: %d  Mesh links: %d  Kits: %d\n",
		len(state.Nodes()), importedNodeCount(state), len(state.NodeLibrary),
		len(state.SavedPlatforms), len(state.MeshLinks), len(state.Kits))
	return nil
}

func hasSelection(sel design.Selection) bool {
	return sel.Frame != "" || sel.Propulsion != "" || sel.Battery != "" ||
		sel.Compute != "" || sel.Radio != "" || sel.FlightController != "" ||
		sel.VideoLink != "" || sel.Receiver != "" || sel.Camera != "" ||
		sel.AuxRadio != "" || sel.AntennaA != "" || sel.AntennaB != "" ||
		len(sel.Payloads) > 0 || len(sel.NodePayloads) > 0
}

func importedNodeCount(state session.State) int {
	if state.Imported == nil {
		return 0
	}
	return len(state.Imported.Nodes)
}

func describeConstraints(cons design.Constraints) string {
	var parts []string
	if cons.MinThrustToWeight != nil {
		parts = append(parts, fmt.Sprintf("min TWR %.2f", *cons.MinThrustToWeight))
	}
	if cons.MinEnduranceMin != nil {
		parts = append(parts, fmt.Sprintf("min endurance %.1f min", *cons.MinEnduranceMin))
	}
	if cons.MaxAuwKg != nil {
		parts = append(parts, fmt.Sprintf("max AUW %.2f kg", *cons.MaxAuwKg))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}

func newSessionPlatformsCommand(sessionPath *string) *cobra.Command {
	format := "table"
	cmd := &cobra.Command{
		Use:           "platforms",
		Short:         "List platforms saved in the session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			state, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			entries := state.PlatformEntries()
			switch normalizeFormat(format) {
			case "table":
				console.PrintPlatforms(out, entries)
				return nil
			case "json":
				return encodeJSON(out, entries)
			case "yaml":
				return encodeYAML(out, entries)
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", format, "Output format: table, json, or yaml")
	decorateCommandHelp(cmd, "Platforms Flags")
	return cmd
}

func newSessionLoadCommand(sessionPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "load <platform-id>",
		Short:         "Load a saved platform back into the working selection",
		Long:          "Copy a saved platform's selection, environment bands, and constraints back into the working session so the stack can be re-evaluated or refined.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			state, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if !state.RestorePlatform(id) {
				return fmt.Errorf("no saved platform %q (run 'uxs session platforms' to list)", id)
			}
			if err := store.Save(cmd.Context(), state); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded platform %s into the working session\n", id)
			return nil
		},
	}
	decorateCommandHelp(cmd, "Load Flags")
	return cmd
}

func newSessionForgetCommand(sessionPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "forget <platform-id>",
		Short:         "Drop a saved platform from the session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			state, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if !state.ForgetPlatform(id) {
				return fmt.Errorf("no saved platform %q (run 'uxs session platforms' to list)", id)
			}
			if err := store.Save(cmd.Context(), state); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forgot platform %s\n", id)
			return nil
		},
	}
	decorateCommandHelp(cmd, "Forget Flags")
	return cmd
}

func newSessionClearCommand(sessionPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clear",
		Short:         "Reset the session to factory state",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared")
			return nil
		},
	}
	decorateCommandHelp(cmd, "Clear Flags")
	return cmd
}
