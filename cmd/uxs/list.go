// File: cmd/uxs/list.go
// Brief: CLI command wiring and implementation for 'list'.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/catalog"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/console"
	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/csvutil"
)

var componentCSVHeader = []string{"id", "name", "domain", "mass_g", "cost_usd", "role_tags", "notes"}

func newListCommand(catalogPath *string) *cobra.Command {
	var domain string
	var role string
	format := "table"
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List catalog components by category",
		Long:  "List components from the active catalog. Without a category the command summarizes category sizes; with one it prints every component, optionally filtered by domain or role tag.",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # All frames, with role and domain columns
  uxs list frames

  # Maritime radios as JSON
  uxs list radios --domain maritime --format json

  # Relay-capable components across one category, CSV for spreadsheets
  uxs list payloads --role relay --format csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := loadCatalog(*catalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return listCategorySummary(cmd, &col, format)
			}
			category := strings.ToLower(strings.TrimSpace(args[0]))
			items, err := col.Category(category)
			if err != nil {
				return err
			}
			if strings.TrimSpace(domain) != "" {
				items = catalog.FilterByDomain(items, strings.ToLower(strings.TrimSpace(domain)))
			}
			if strings.TrimSpace(role) != "" {
				items = catalog.FilterByRoleTag(items, strings.TrimSpace(role))
			}
			switch normalizeFormat(format) {
			case "table":
				console.PrintComponents(out, category, items)
				return nil
			case "json":
				return encodeJSON(out, items)
			case "yaml":
				return encodeYAML(out, items)
			case "csv":
				return csvutil.WriteTable(out, componentCSVHeader, componentCSVRows(items))
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, yaml, or csv)", format)
			}
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "Filter components by operating domain (air, ground, maritime)")
	cmd.Flags().StringVar(&role, "role", "", "Filter components by role tag")
	cmd.Flags().StringVarP(&format, "format", "o", format, "Output format: table, json, yaml, or csv")
	decorateCommandHelp(cmd, "List Flags")
	return cmd
}

type categoryCount struct {
	Category   string `json:"category"`
	Components int    `json:"components"`
}

func listCategorySummary(cmd *cobra.Command, col *catalog.Collection, format string) error {
	out := cmd.OutOrStdout()
	var counts []categoryCount
	for _, name := range catalog.Categories() {
		items, err := col.Category(name)
		if err != nil {
			return err
		}
		counts = append(counts, categoryCount{Category: name, Components: len(items)})
	}
	switch normalizeFormat(format) {
	case "table":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tCOMPONENTS")
		for _, c := range counts {
			fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Components)
		}
		return tw.Flush()
	case "json":
		return encodeJSON(out, counts)
	case "yaml":
		return encodeYAML(out, counts)
	case "csv":
		rows := make([][]string, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, []string{c.Category, strconv.Itoa(c.Components)})
		}
		return csvutil.WriteTable(out, []string{"category", "components"}, rows)
	default:
		return fmt.Errorf("unsupported --format %q (expected table, json, yaml, or csv)", format)
	}
}

func componentCSVRows(items []catalog.Component) [][]string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.Domain,
			floatCell(c.MassG),
			floatCell(c.CostUSD),
			strings.Join(c.RoleTags, " "),
			c.Notes,
		})
	}
	return rows
}

// floatCell renders zero as empty so optional numeric columns stay blank
// instead of printing 0.
func floatCell(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "":
		return "table"
	case "yml":
		return "yaml"
	default:
		return f
	}
}
