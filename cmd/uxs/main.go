// main.go bootstraps uxs: it builds the root Cobra command and executes with signal-aware contexts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var catalogPath string
	var sessionPath string
	logLevel := "info"
	cmd := &cobra.Command{
		Use:           "uxs",
		Short:         "Uncrewed-system stack designer and mission reconciler",
		Long:          "uxs assembles uncrewed platform component stacks, evaluates their performance envelope, and reconciles saved platforms with external tools through mission project bundles.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a component catalog file (JSON or YAML) overriding the embedded catalog")
	cmd.PersistentFlags().StringVar(&sessionPath, "session", "", "Path to the session database (defaults to ~/.uxs/session.sqlite)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for uxs output (debug, info, warn, or error)")

	cmd.AddCommand(
		newListCommand(&catalogPath),
		newRolesCommand(&catalogPath),
		newEvaluateCommand(&catalogPath, &sessionPath),
		newMissionCommand(&catalogPath, &sessionPath, &logLevel),
		newSessionCommand(&catalogPath, &sessionPath),
		newEnvCommand(),
		newVersionCommand(),
	)
	cmd.Example = `  # Evaluate a hexacopter relay stack in mountain air
  uxs evaluate --frame frame-hex650 --propulsion prop-4006-6 --battery bat-6s-5000 \
      --compute cpu-cm4-carrier --radio radio-mesh-24 --altitude-band mountain

  # Pull an external mission bundle into the session and mount one of its nodes
  uxs mission import --file fieldkit.json
  uxs evaluate --frame frame-hex650 ... --node node-ridge-relay --save-as plt-ridge

  # Serve the working bundle as live map overlays
  uxs mission serve --listen :8147`
	decorateCommandHelp(cmd, "Global Flags")
	bindViper(collectCommands(cmd)...)
	return cmd
}

// collectCommands flattens the command tree so viper can bind every
// flag set, including subcommand flags.
func collectCommands(cmd *cobra.Command) []*cobra.Command {
	out := []*cobra.Command{cmd}
	for _, sub := range cmd.Commands() {
		out = append(out, collectCommands(sub)...)
	}
	return out
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("UXS")
	v.AutomaticEnv()
	configFile := os.Getenv("UXS_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, errMissingParts):
		message = fmt.Sprintf("%s\nHint: run 'uxs list <category>' to browse component ids; imported node ids show under 'uxs session show'.", err)
	case errors.Is(err, fs.ErrNotExist):
		message = fmt.Sprintf("%s\nHint: check that the bundle path exists and is readable.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "uxs"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "uxs"))
		add(filepath.Join(home, ".uxs"))
	}
	return dirs
}
