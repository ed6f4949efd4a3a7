package cmd

// Credentials extracted from a connection URL's userinfo. Both fields may be
// empty; an empty pair is still sent as Basic auth, never dropped.
type Credentials struct {
	Username string
	Password string
}

// DataSource is the data source definition pushed to /datasources.
type DataSource struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	URL    string `yaml:"url"`
	Access string `yaml:"access"`
}

// App is the plugin registration pushed to /plugins/<id>/settings.
type App struct {
	ID             string `yaml:"id"`
	JSONData       string `yaml:"json_data"`
	SecureJSONData string `yaml:"secure_json_data"`
}
