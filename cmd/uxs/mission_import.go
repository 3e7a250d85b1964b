// File: cmd/uxs/mission_import.go
// Brief: CLI command wiring and implementation for 'mission import'.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

func newMissionImportCommand(sessionPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a mission bundle into the session",
		Long: "Import an external mission bundle as the session's base layer. Imported nodes become mountable components for evaluate, and the bundle's " +
			"environment and constraints become the working values. The session is untouched if the file fails to parse or validate.",
		Example:       `  uxs mission import --file fieldkit.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			bundle, err := mission.DecodeBundle(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}
			if err := mission.ValidateBundle(bundle); err != nil {
				return fmt.Errorf("validate %s: %w", file, err)
			}
			store, err := openStore(*sessionPath)
			if err != nil {
				return err
			}
			defer store.Close()
			state, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			state.ImportBundle(bundle)
			if err := store.Save(cmd.Context(), state); err != nil {
				return err
			}
			name := ""
			if bundle.Mission != nil {
				name = bundle.Mission.Name
				if name == "" {
					name = bundle.Mission.ID
				}
			}
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported mission %s: %d nodes, %d platforms, %d mesh links\n",
				name, len(bundle.Nodes), len(bundle.Platforms), len(bundle.MeshLinks))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to the mission bundle to import")
	decorateCommandHelp(cmd, "Import Flags")
	return cmd
}
