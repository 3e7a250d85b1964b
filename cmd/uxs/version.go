// File: cmd/uxs/version.go
// Brief: CLI command wiring and implementation for 'version'.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/version"
)

func newVersionCommand() *cobra.Command {
	var short bool
	format := "table"
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the uxs version information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Short())
				return nil
			}
			switch normalizeFormat(format) {
			case "table":
				fmt.Fprintf(out, "Version: %s\n", info.Version)
				if info.GitCommit != "" && info.GitCommit != "unknown" {
					fmt.Fprintf(out, "GitCommit: %s\n", info.GitCommit)
				}
				if info.GitTreeState != "" && info.GitTreeState != "unknown" {
					fmt.Fprintf(out, "GitTreeState: %s\n", info.GitTreeState)
				}
				if info.BuildDate != "" && info.BuildDate != "unknown" {
					fmt.Fprintf(out, "BuildDate: %s\n", info.BuildDate)
				}
				fmt.Fprintf(out, "GoVersion: %s\n", info.GoVersion)
				fmt.Fprintf(out, "Platform: %s\n", info.Platform)
				return nil
			case "json":
				return encodeJSON(out, info)
			case "yaml":
				return encodeYAML(out, info)
			default:
				return fmt.Errorf("unsupported --format %q (expected table, json, or yaml)", format)
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print just the version number")
	cmd.Flags().StringVar(&format, "format", format, "Output format: table, json, yaml")
	decorateCommandHelp(cmd, "Version Flags")
	return cmd
}
