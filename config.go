package nocodb

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds connection settings, taken from environment variables with
// the prefix "NOCODB_". Example: NOCODB_BASE_URL=http://localhost:8080
// NOCODB_API_KEY=... .
type Config struct {
	// BaseURL is the root HTTP address of the NocoDB instance.
	BaseURL string `envconfig:"BASE_URL" required:"true"`
	// APIKey is the xc-token credential.
	APIKey string `envconfig:"API_KEY" required:"true"`
	// HTTPTimeout bounds each HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// ConfigFromEnv populates Config from environment variables (prefix
// NOCODB_). It returns an error when BaseURL or APIKey is missing, before
// any network call is attempted.
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("NOCODB", &c)
}
