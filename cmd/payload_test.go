package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasourcePayload(t *testing.T) {
	ds := DataSource{Name: "Prometheus", Type: "prometheus", URL: "http://prom:9090", Access: "proxy"}

	t.Run("with credentials", func(t *testing.T) {
		got := datasourcePayload(ds, Credentials{"u", "p"})
		assert.Equal(t, "Prometheus", got["name"])
		assert.Equal(t, "prometheus", got["type"])
		assert.Equal(t, "http://prom:9090", got["url"])
		assert.Equal(t, "proxy", got["access"])
		assert.Equal(t, true, got["basicAuth"])
		assert.Equal(t, "u", got["basicAuthUser"])
		assert.Equal(t, "p", got["basicAuthPassword"])
	})

	t.Run("without credentials", func(t *testing.T) {
		got := datasourcePayload(ds, Credentials{})
		assert.NotContains(t, got, "basicAuth")
		assert.NotContains(t, got, "basicAuthUser")
		assert.NotContains(t, got, "basicAuthPassword")
	})

	t.Run("user only still enables basic auth", func(t *testing.T) {
		got := datasourcePayload(ds, Credentials{Username: "u"})
		assert.Equal(t, true, got["basicAuth"])
		assert.Equal(t, "", got["basicAuthPassword"])
	})
}

func TestAppPayload(t *testing.T) {
	t.Run("secure data included when supplied", func(t *testing.T) {
		got := appPayload("my-app", map[string]interface{}{"k": "v"}, map[string]interface{}{"s": "x"})
		assert.Equal(t, "my-app", got["id"])
		assert.Equal(t, true, got["enabled"])
		assert.Equal(t, true, got["pinned"])
		assert.Equal(t, map[string]interface{}{"k": "v"}, got["json_data"])
		assert.Equal(t, map[string]interface{}{"s": "x"}, got["secure_json_data"])
	})

	t.Run("secure data key absent when omitted", func(t *testing.T) {
		got := appPayload("my-app", map[string]interface{}{}, nil)
		assert.NotContains(t, got, "secure_json_data")
	})
}
