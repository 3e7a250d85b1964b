// File: cmd/uxs/roles.go
// Brief: CLI command wiring and implementation for 'roles'.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/console"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/csvutil"
)

func newRolesCommand(catalogPath *string) *cobra.Command {
	format := "table"
	cmd := &cobra.Command{
		Use:   "roles <tag>",
		Short: "Find components matching a mission role tag",
		Long:  "Search every catalog category for components tagged with a mission role, such as relay, recon, or strike.",
		Args:  cobra.ExactArgs(1),
		Example: `  # Everything tagged for relay duty
  uxs roles relay

  # Recon matches as YAML
  uxs roles recon --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := loadCatalog(*catalogPath)
			if err != nil {
				return err
			}
			role := strings.TrimSpace(args[0])
			if role == "" {
				return fmt.Errorf("role tag must not be empty")
			}
			out := cmd.OutOrStdout()
			order := catalog.Categories()
			matches := make(map[string][]catalog.Component)
			for _, category := range order {
				items, err := col.Category(category)
				if err != nil {
					return err
				}
				if tagged := catalog.FilterByRoleTag(items, role); len(tagged) > 0 {
					matches[category] = tagged
				}
			}
			switch normalizeFormat(format) {
			case "table":
				console.PrintRoleMatches(out, role, matches, order)
				return nil
			case "json":
				return encodeJSON(out, roleReport{Role: role, Matches: matches})
			case "yaml":
				return encodeYAML(out, roleReport{Role: role, Matches: matches})
			case "csv":
				var rows [][]string
				for _, category := range order {
					for _, c := range matches[category] {
						rows = append(rows, []string{category, c.ID, c.Name, c.Domain})
					}
				}
				return csvutil.WriteTable(out, []string{"category", "id", "name", "domain"}, rows)
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, yaml, or csv)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", format, "Output format: table, json, yaml, or csv")
	decorateCommandHelp(cmd, "Roles Flags")
	return cmd
}

type roleReport struct {
	Role    string                         `json:"role"`
	Matches map[string][]catalog.Component `json:"matches"`
}
