package cmd

import (
	"github.com/spf13/cobra"
)

// DefaultCommand is injected when the argument vector names no subcommand,
// preserving the legacy invocation form where `datasource` was implicit.
const DefaultCommand = "datasource"

var (
	grafanaURL     string
	updateInterval int
	configFile     string
)

var rootCmd = &cobra.Command{
	Use:   "grafana-sidecar",
	Short: "Continuously re-asserts Grafana data source and app plugin settings",
	Long: `grafana-sidecar pushes a declarative data source or app plugin
registration to the Grafana HTTP API on a fixed interval, overwriting any
manual or external changes with the configured desired state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GlobalFlags lists the flags that must precede the subcommand name, with
// the number of value tokens each one consumes.
func GlobalFlags() []GlobalFlag {
	return []GlobalFlag{
		{Name: "--grafana-url", NArgs: 1},
		{Name: "--update-interval", NArgs: 1},
		{Name: "--config", NArgs: 1},
		{Name: "-c", NArgs: 1},
	}
}

// hasHelpFlag reports whether the raw argument vector asks for help. Those
// invocations bypass default-subcommand injection so `--help` without a
// subcommand reaches the root command's help instead of the default's.
func hasHelpFlag(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// SubcommandNames returns every token that counts as an explicit subcommand.
func SubcommandNames() map[string]bool {
	names := map[string]bool{"help": true, "completion": true}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	return names
}

// Execute resolves the default subcommand and dispatches the CLI.
func Execute(args []string) error {
	if !hasHelpFlag(args) {
		args = ResolveArgs(args, GlobalFlags(), SubcommandNames(), DefaultCommand)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&grafanaURL, "grafana-url", "", "Grafana base URL, credentials may be embedded (required)")
	rootCmd.PersistentFlags().IntVar(&updateInterval, "update-interval", 10, "Seconds between reconcile pushes")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML file supplying defaults for unset flags")
}
