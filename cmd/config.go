package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Config mirrors the CLI flags so a single YAML file can act as the source
// of truth for a deployment. Explicit flags always win over file values.
type Config struct {
	GrafanaURL     string     `yaml:"grafana_url"`
	UpdateInterval int        `yaml:"update_interval"`
	DataSource     DataSource `yaml:"datasource"`
	App            App        `yaml:"app"`
}

// loadConfig reads & unmarshals the YAML config file.
func loadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// applyGlobalConfig fills the global flags the user left unset.
func applyGlobalConfig(cmd *cobra.Command, c Config) {
	if !cmd.Flags().Changed("grafana-url") && c.GrafanaURL != "" {
		grafanaURL = c.GrafanaURL
	}
	if !cmd.Flags().Changed("update-interval") && c.UpdateInterval > 0 {
		updateInterval = c.UpdateInterval
	}
}
