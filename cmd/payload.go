package cmd

// datasourcePayload builds the /datasources body. The basicAuth block is
// included only when the data source URL actually carried credentials.
func datasourcePayload(ds DataSource, creds Credentials) map[string]interface{} {
	payload := map[string]interface{}{
		"name":   ds.Name,
		"type":   ds.Type,
		"url":    ds.URL,
		"access": ds.Access,
	}
	if creds.Username != "" || creds.Password != "" {
		payload["basicAuth"] = true
		payload["basicAuthUser"] = creds.Username
		payload["basicAuthPassword"] = creds.Password
	}
	return payload
}

// appPayload builds the /plugins/<id>/settings body. secure_json_data is
// omitted entirely when not supplied, never sent as null.
func appPayload(id string, jsonData, secureJSONData map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"id":        id,
		"enabled":   true,
		"pinned":    true,
		"json_data": jsonData,
	}
	if secureJSONData != nil {
		payload["secure_json_data"] = secureJSONData
	}
	return payload
}
