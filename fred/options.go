package fred

import (
	"net/http"
	"os"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	apiKey     string
	apiKeyFile string
	envLookup  func(string) (string, bool)
	httpClient *http.Client
	timeout    time.Duration
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		envLookup: os.LookupEnv,
		timeout:   defaultTimeout,
	}
}

// WithAPIKey sets the API key directly. An explicit key takes precedence
// over a key file and the environment variable.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithAPIKeyFile sets a file to read the API key from. The file must exist
// when the client is created; its first line is used as the key.
func WithAPIKeyFile(path string) Option {
	return func(o *clientOptions) {
		o.apiKeyFile = path
	}
}

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithEnvLookup replaces the environment lookup used for the FRED_API_KEY
// fallback, so key resolution can be tested deterministically.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(o *clientOptions) {
		if lookup != nil {
			o.envLookup = lookup
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}
