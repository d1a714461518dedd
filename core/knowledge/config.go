package knowledge

// Config holds configuration for the knowledge store API.
type Config struct {
	// BaseURL is the account-scoped API root, e.g. https://api.yext.com/v2/accounts/me/.
	BaseURL string `mapstructure:"base_url" default:"https://api.yext.com/v2/accounts/me/"`
	// APIKey authenticates every request.
	APIKey string `mapstructure:"api_key" default:""`
	// Version is the API version date sent as the v query parameter.
	Version string `mapstructure:"version" default:"20210714"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
