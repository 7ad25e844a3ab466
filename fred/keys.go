package fred

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EnvKeyName is the environment variable consulted when no explicit API key
// or key file has been configured.
const EnvKeyName = "FRED_API_KEY"

// KeySource identifies where the client's API key comes from.
type KeySource int

const (
	// KeySourceExplicit means the key string was passed directly.
	KeySourceExplicit KeySource = iota
	// KeySourceFile means the key is read from a local file.
	KeySourceFile
	// KeySourceEnv means the key comes from the FRED_API_KEY environment variable.
	KeySourceEnv
)

// String returns a human-readable name for the key source.
func (s KeySource) String() string {
	switch s {
	case KeySourceExplicit:
		return "explicit"
	case KeySourceFile:
		return "file"
	case KeySourceEnv:
		return "environment"
	default:
		return "unknown"
	}
}

// KeySource reports which source will supply the API key for the next
// request. Precedence is fixed: an explicit key wins over a key file, which
// wins over the environment variable. Returns ErrMissingAPIKey when none of
// the three is available.
func (c *Client) KeySource() (KeySource, error) {
	if c.apiKey != "" {
		return KeySourceExplicit, nil
	}
	if c.apiKeyFile != "" {
		return KeySourceFile, nil
	}
	if c.EnvKeyFound() {
		return KeySourceEnv, nil
	}
	return 0, ErrMissingAPIKey
}

// EnvKeyFound reports whether a non-empty FRED_API_KEY is present in the
// environment (or whatever lookup the client was configured with).
func (c *Client) EnvKeyFound() bool {
	value, ok := c.envLookup(EnvKeyName)
	return ok && value != ""
}

// APIKeyFile returns the currently assigned key file path.
func (c *Client) APIKeyFile() string {
	return c.apiKeyFile
}

// SetAPIKeyFile assigns the file the API key is read from. The path is
// checked at assignment time so a typo surfaces before the first request.
func (c *Client) SetAPIKeyFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: api key file path is required", ErrInvalidArgument)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
	}
	c.apiKeyFile = path
	return nil
}

// readKeyFile reads the API key from the configured file. Only the first
// line is used, trimmed of surrounding whitespace, so the key spends as
// little time as possible in readable form.
func (c *Client) readKeyFile() (string, error) {
	f, err := os.Open(c.apiKeyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrKeyFileNotFound, c.apiKeyFile)
		}
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read api key file: %w", err)
		}
		return "", fmt.Errorf("%w: %s is empty", ErrMissingAPIKey, c.apiKeyFile)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// resolveKey returns the API key from the active source.
func (c *Client) resolveKey() (string, error) {
	source, err := c.KeySource()
	if err != nil {
		return "", err
	}

	switch source {
	case KeySourceExplicit:
		return c.apiKey, nil
	case KeySourceFile:
		return c.readKeyFile()
	case KeySourceEnv:
		value, ok := c.envLookup(EnvKeyName)
		if !ok || value == "" {
			return "", fmt.Errorf("%w: %s no longer set", ErrMissingAPIKey, EnvKeyName)
		}
		return value, nil
	default:
		return "", ErrMissingAPIKey
	}
}
