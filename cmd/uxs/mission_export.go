// File: cmd/uxs/mission_export.go
// Brief: CLI command wiring and implementation for 'mission export'.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/overlay"
)

const defaultBundleName = "mission_project.json"

func newMissionExportCommand(sessionPath *string) *cobra.Command {
	out := defaultBundleName
	var geojsonOut string
	var cotOut string
	var toStdout bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session as a mission bundle",
		Long: "Reconcile the session's imported base layer with local nodes, saved platforms, mesh links, and kits into a mission bundle, " +
			"optionally projecting map overlays alongside it.",
		Example: `  # Bundle plus overlays for the mapping tools
  uxs mission export --out mission_project.json --geojson-out overlay.geojson --cot-out events.json

  # Pipe the bundle into another tool
  uxs mission export --stdout | jq .mission.name`,
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
			bundle, err := state.ExportBundle()
			if err != nil {
				return err
			}
			data, err := mission.EncodeBundle(bundle)
			if err != nil {
				return err
			}

			status := cmd.OutOrStdout()
			if toStdout {
				status = cmd.ErrOrStderr()
			}

			var g errgroup.Group
			if !toStdout {
				path := out
				g.Go(func() error {
					return writeFileReport(path, data)
				})
			}
			if geojsonOut != "" {
				path := geojsonOut
				g.Go(func() error {
					var buf bytes.Buffer
					if err := encodeJSON(&buf, overlay.GeoJSON(bundle)); err != nil {
						return err
					}
					return writeFileReport(path, buf.Bytes())
				})
			}
			if cotOut != "" {
				path := cotOut
				g.Go(func() error {
					var buf bytes.Buffer
					if err := encodeJSON(&buf, overlay.CoT(bundle)); err != nil {
						return err
					}
					return writeFileReport(path, buf.Bytes())
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if toStdout {
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(status, "Mission bundle written to %s\n", out)
			}
			if geojsonOut != "" {
				fmt.Fprintf(status, "GeoJSON overlay written to %s\n", geojsonOut)
			}
			if cotOut != "" {
				fmt.Fprintf(status, "CoT events written to %s\n", cotOut)
			}
			return store.Save(cmd.Context(), state)
		},
	}
	cmd.Flags().StringVar(&out, "out", out, "Destination path for the mission bundle")
	cmd.Flags().StringVar(&geojsonOut, "geojson-out", "", "Also write a GeoJSON overlay of placed nodes, platforms, and links")
	cmd.Flags().StringVar(&cotOut, "cot-out", "", "Also write Cursor-on-Target events for placed entities")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the bundle to stdout instead of --out")
	decorateCommandHelp(cmd, "Export Flags")
	return cmd
}

func writeFileReport(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
