package cmd

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

var (
	appID             string
	appJSONData       string
	appSecureJSONData string
)

type appState struct {
	base    string
	path    string
	creds   Credentials
	payload map[string]interface{}
}

// resolveApp merges flags with the optional config file and performs all
// fail-fast validation before the first network call.
func resolveApp(cmd *cobra.Command) (appState, error) {
	var s appState
	if configFile != "" {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return s, err
		}
		applyGlobalConfig(cmd, cfg)
		if !cmd.Flags().Changed("id") && cfg.App.ID != "" {
			appID = cfg.App.ID
		}
		if !cmd.Flags().Changed("json-data") && cfg.App.JSONData != "" {
			appJSONData = cfg.App.JSONData
		}
		if !cmd.Flags().Changed("secure-json-data") && cfg.App.SecureJSONData != "" {
			appSecureJSONData = cfg.App.SecureJSONData
		}
	}
	if grafanaURL == "" {
		return s, fmt.Errorf("--grafana-url is required")
	}
	if appID == "" {
		return s, fmt.Errorf("--id is required")
	}
	if updateInterval <= 0 {
		return s, fmt.Errorf("--update-interval must be a positive number of seconds, got %d", updateInterval)
	}

	base, baseCreds := SplitCredentials(grafanaURL)
	if _, err := url.Parse(base); err != nil {
		return s, fmt.Errorf("invalid --grafana-url: %w", err)
	}

	jsonData, err := parseSettings("--json-data", appJSONData)
	if err != nil {
		return s, err
	}
	var secure map[string]interface{}
	if appSecureJSONData != "" {
		if secure, err = parseSettings("--secure-json-data", appSecureJSONData); err != nil {
			return s, err
		}
	}

	s.base = base
	s.path = fmt.Sprintf("/plugins/%s/settings", appID)
	s.creds = baseCreds
	s.payload = appPayload(appID, jsonData, secure)
	return s, nil
}

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Continuously re-assert a Grafana app plugin registration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := resolveApp(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("🔁 Re-asserting app plugin %q at %s every %ds\n", appID, state.base, updateInterval)
		runReconcileLoop(time.Duration(updateInterval)*time.Second, configFile,
			func() error {
				next, err := resolveApp(cmd)
				if err != nil {
					return err
				}
				state = next
				return nil
			},
			func() error {
				return postJSON(state.base, state.path, state.payload, state.creds)
			})
		return nil
	},
}

func init() {
	appCmd.Flags().StringVar(&appID, "id", "", "App plugin ID (required)")
	appCmd.Flags().StringVar(&appJSONData, "json-data", "{}", "Plugin settings as an inline JSON object")
	appCmd.Flags().StringVar(&appSecureJSONData, "secure-json-data", "", "Secret plugin settings as an inline JSON object")
	rootCmd.AddCommand(appCmd)
}
