// File: cmd/uxs/mission_diff.go
// Brief: CLI command wiring and implementation for 'mission diff'.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/nbschultz97/Ceradon-UxS-Architect/internal/mission"
)

func newMissionDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <bundle-a> <bundle-b>",
		Short: "Diff two mission bundles in canonical form",
		Long: "Normalize two mission bundles and print a unified diff. Normalization removes formatting noise, so the diff shows real " +
			"changes even when the files came from different tools.",
		Example:       `  uxs mission diff mission_project.json fieldkit.json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := normalizedBundleFile(args[0])
			if err != nil {
				return err
			}
			right, err := normalizedBundleFile(args[1])
			if err != nil {
				return err
			}
			ud := difflib.UnifiedDiff{
				A:        difflib.SplitLines(left),
				B:        difflib.SplitLines(right),
				FromFile: args[0],
				ToFile:   args[1],
				Context:  3,
			}
			text, err := difflib.GetUnifiedDiffString(ud)
			if err != nil {
				return fmt.Errorf("compute diff: %w", err)
			}
			out := cmd.OutOrStdout()
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(out, "no differences found")
				return nil
			}
			fmt.Fprint(out, text)
			return nil
		},
	}
	decorateCommandHelp(cmd, "Diff Flags")
	return cmd
}

func normalizedBundleFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	canonical, err := mission.Normalize(data)
	if err != nil {
		return "", fmt.Errorf("normalize %s: %w", path, err)
	}
	return string(canonical), nil
}
