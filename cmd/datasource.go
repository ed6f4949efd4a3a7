package cmd

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

var (
	dataSourceURL  string
	dataSourceType string
	dataSourceName string
	accessMode     string
)

type datasourceState struct {
	base    string
	creds   Credentials
	payload map[string]interface{}
}

// resolveDatasource merges flags with the optional config file and performs
// all fail-fast validation before the first network call.
func resolveDatasource(cmd *cobra.Command) (datasourceState, error) {
	var s datasourceState
	if configFile != "" {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return s, err
		}
		applyGlobalConfig(cmd, cfg)
		if !cmd.Flags().Changed("data-source-url") && cfg.DataSource.URL != "" {
			dataSourceURL = cfg.DataSource.URL
		}
		if !cmd.Flags().Changed("type") && cfg.DataSource.Type != "" {
			dataSourceType = cfg.DataSource.Type
		}
		if !cmd.Flags().Changed("name") && cfg.DataSource.Name != "" {
			dataSourceName = cfg.DataSource.Name
		}
		if !cmd.Flags().Changed("access") && cfg.DataSource.Access != "" {
			accessMode = cfg.DataSource.Access
		}
	}
	if grafanaURL == "" {
		return s, fmt.Errorf("--grafana-url is required")
	}
	if dataSourceURL == "" {
		return s, fmt.Errorf("--data-source-url is required")
	}
	if updateInterval <= 0 {
		return s, fmt.Errorf("--update-interval must be a positive number of seconds, got %d", updateInterval)
	}

	base, baseCreds := SplitCredentials(grafanaURL)
	if _, err := url.Parse(base); err != nil {
		return s, fmt.Errorf("invalid --grafana-url: %w", err)
	}
	stripped, dsCreds := SplitCredentials(dataSourceURL)
	if _, err := url.Parse(stripped); err != nil {
		return s, fmt.Errorf("invalid --data-source-url: %w", err)
	}

	s.base = base
	s.creds = baseCreds
	s.payload = datasourcePayload(DataSource{
		Name:   dataSourceName,
		Type:   dataSourceType,
		URL:    stripped,
		Access: accessMode,
	}, dsCreds)
	return s, nil
}

var datasourceCmd = &cobra.Command{
	Use:   "datasource",
	Short: "Continuously re-assert a Grafana data source definition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := resolveDatasource(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("🔁 Re-asserting data source %q at %s every %ds\n", dataSourceName, state.base, updateInterval)
		runReconcileLoop(time.Duration(updateInterval)*time.Second, configFile,
			func() error {
				next, err := resolveDatasource(cmd)
				if err != nil {
					return err
				}
				state = next
				return nil
			},
			func() error {
				return postJSON(state.base, "/datasources", state.payload, state.creds)
			})
		return nil
	},
}

func init() {
	datasourceCmd.Flags().StringVar(&dataSourceURL, "data-source-url", "", "Data source URL, credentials may be embedded (required)")
	datasourceCmd.Flags().StringVar(&accessMode, "access", "proxy", "Data source access mode")
	datasourceCmd.Flags().StringVar(&dataSourceType, "type", "prometheus", "Data source type")
	datasourceCmd.Flags().StringVar(&dataSourceName, "name", "Prometheus", "Data source name")
	rootCmd.AddCommand(datasourceCmd)
}
