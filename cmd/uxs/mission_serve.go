// File: cmd/uxs/mission_serve.go
// Brief: CLI command wiring and implementation for 'mission serve'.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/logging"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/overlaycast"
)

func newMissionServeCommand(sessionPath, logLevel *string) *cobra.Command {
	listen := ":8147"
	var file string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mission overlays over HTTP and WebSocket",
		Long: "Serve the mission as live map overlays: GeoJSON and CoT projections over HTTP, push updates over WebSocket, and Prometheus " +
			"metrics. With --file the bundle is watched and clients receive updated overlays whenever the file changes.",
		Example: `  # Serve the session's bundle once
  uxs mission serve

  # Follow a bundle another tool keeps rewriting
  uxs mission serve --file mission_project.json --listen 127.0.0.1:8147`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			var bundle mission.Bundle
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				bundle, err = mission.DecodeBundle(data)
				if err != nil {
					return fmt.Errorf("decode %s: %w", file, err)
				}
			} else {
				store, err := openStore(*sessionPath)
				if err != nil {
					return err
				}
				state, err := store.Load(cmd.Context())
				if err != nil {
					store.Close()
					return err
				}
				preview := state
				bundle, err = preview.ExportBundle()
				if err != nil {
					store.Close()
					return err
				}
				store.Close()
			}
			server := overlaycast.New(listen, bundle, file, logger)
			return server.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", listen, "Address to serve overlays on")
	cmd.Flags().StringVar(&file, "file", "", "Mission bundle to serve and watch for changes (defaults to the session's bundle)")
	decorateCommandHelp(cmd, "Serve Flags")
	return cmd
}
