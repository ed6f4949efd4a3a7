package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// postJSON issues one authenticated POST against the Grafana API. The
// Basic-Auth header is always set, even when both credential fields are
// empty — callers tolerate vacuous credentials rather than dropping auth.
func postJSON(base, path string, payload interface{}, creds Credentials) error {
	url := strings.TrimRight(base, "/") + path
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API %d: %s", resp.StatusCode, data)
	}
	return nil
}
