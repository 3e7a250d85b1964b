// File: cmd/uxs/mission.go
// Brief: CLI command wiring and implementation for 'mission' and 'mission show'.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/console"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

func newMissionCommand(catalogPath, sessionPath, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mission",
		Short:         "Work with mission project bundles",
		Long:          "Inspect, import, export, diff, and serve mission project bundles, the JSON documents uxs exchanges with companion planning tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newMissionShowCommand(sessionPath),
		newMissionImportCommand(sessionPath),
		newMissionExportCommand(sessionPath),
		newMissionDiffCommand(),
		newMissionServeCommand(sessionPath, logLevel),
	)
	decorateCommandHelp(cmd, "Mission Flags")
	return cmd
}

func newMissionShowCommand(sessionPath *string) *cobra.Command {
	var file string
	var whitefrost bool
	format := "table"
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize a mission project bundle",
		Long:  "Summarize a mission bundle: a file, the built-in WHITEFROST exercise preset, or a preview of what the session would export.",
		Example: `  # What would the session export right now?
  uxs mission show

  # Inspect a teammate's bundle
  uxs mission show --file fieldkit.json

  # Dump the exercise preset as JSON
  uxs mission show --whitefrost --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" && whitefrost {
				return fmt.Errorf("--file and --whitefrost are mutually exclusive")
			}
			var bundle mission.Bundle
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				bundle, err = mission.DecodeBundle(data)
				if err != nil {
					return fmt.Errorf("decode %s: %w", file, err)
				}
			case whitefrost:
				var err error
				bundle, err = mission.Whitefrost()
				if err != nil {
					return err
				}
			default:
				store, err := openStore(*sessionPath)
				if err != nil {
					return err
				}
				defer store.Close()
				state, err := store.Load(cmd.Context())
				if err != nil {
					return err
				}
				// Preview on a copy so the minted ids are not recorded.
				preview := state
				bundle, err = preview.ExportBundle()
				if err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			switch normalizeFormat(format) {
			case "table":
				console.PrintMissionSummary(out, bundle)
				return nil
			case "json":
				data, err := mission.EncodeBundle(bundle)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "yaml":
				return encodeYAML(out, bundle)
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to a mission bundle to summarize instead of the session")
	cmd.Flags().BoolVar(&whitefrost, "whitefrost", false, "Summarize the built-in WHITEFROST exercise preset")
	cmd.Flags().StringVarP(&format, "format", "o", format, "Output format: table, json, or yaml")
	decorateCommandHelp(cmd, "Show Flags")
	return cmd
}
