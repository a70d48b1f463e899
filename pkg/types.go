package pkg

import (
	"strings"

	"github.com/signrelay/signrelay/pkg/services"
)

// ProviderBoldSign selects the BoldSign backend. Any other value selects
// Dropbox Sign, which is the default.
const ProviderBoldSign = "boldsign"

// ProviderDropboxSign is the default signing backend.
const ProviderDropboxSign = "dropbox"

// Config holds all the configuration params. It is loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	// Address to bind the http server to. Default :8080
	Address             string `env:"SIGNRELAY_ADDRESS" envDefault:":8080"`
	Provider            string `env:"SIGNATURE_PROVIDER" envDefault:"dropbox"`
	BoldSignAPIKey      string `env:"BOLDSIGN_API_KEY"`
	DropboxSignAPIKey   string `env:"DROPBOX_SIGN_API_KEY"`
	DropboxSignClientID string `env:"DROPBOX_SIGN_CLIENT_ID"`
	SampleDocumentPath  string `env:"SAMPLE_DOCUMENT" envDefault:"backend/sample.pdf"`
	PublicDir           string `env:"PUBLIC_DIR" envDefault:"public"`
	EnableCORS          bool   `env:"ENABLE_CORS" envDefault:"true"`
	LogRequests         bool   `env:"ENABLE_REQUEST_LOGGING"`
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() string {
	if c.Provider == ProviderBoldSign {
		return c.BoldSignAPIKey
	}
	return c.DropboxSignAPIKey
}

// DemoMode reports whether the configured credential is recognizably a
// placeholder. In demo mode all provider interactions are simulated locally.
func (c Config) DemoMode() bool {
	key := c.APIKey()
	return strings.Contains(key, "demo") || strings.Contains(key, "test")
}

// Validate checks that the selected provider has a usable credential.
// A missing or malformed credential is a startup-fatal condition.
func (c Config) Validate() error {
	key := c.APIKey()
	if key == "" {
		if c.Provider == ProviderBoldSign {
			return services.ValidationError{Field: "BOLDSIGN_API_KEY", Reason: "not set, see .env.example for a template"}
		}
		return services.ValidationError{Field: "DROPBOX_SIGN_API_KEY", Reason: "not set, see .env.example for a template"}
	}
	if c.DemoMode() {
		return nil
	}
	if len(key) < 20 {
		return services.ValidationError{Field: "api key", Reason: "too short (minimum 20 characters)"}
	}
	for _, r := range key {
		if !isAPIKeyRune(r) {
			return services.ValidationError{Field: "api key", Reason: "contains invalid character"}
		}
	}
	return nil
}

// MaskedAPIKey is safe to log: only the first and last four characters of the
// credential are shown.
func (c Config) MaskedAPIKey() string {
	key := c.APIKey()
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func isAPIKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '+', r == '/', r == '=':
		return true
	}
	return false
}
