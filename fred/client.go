package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the root of the public FRED API.
	DefaultBaseURL = "https://api.stlouisfed.org/fred/"

	// Realtime period bounds used when a caller does not narrow the period.
	// These match the widest window FRED accepts.
	DefaultRealtimeStart = "1776-07-04"
	DefaultRealtimeEnd   = "9999-12-31"

	defaultTimeout = 30 * time.Second
)

// Client is the FRED API client. All resource query methods share its
// credential resolution and URL assembly; none of them keep state of their
// own, so a Client is safe to reuse across sequential calls.
type Client struct {
	baseURL    string
	apiKey     string
	apiKeyFile string
	envLookup  func(string) (string, bool)
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new FRED client. Without options the API key is taken
// from the FRED_API_KEY environment variable; WithAPIKey and WithAPIKeyFile
// take precedence, in that order.
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/") + "/",
		apiKey:     options.apiKey,
		envLookup:  options.envLookup,
		httpClient: options.httpClient,
		logger:     logger,
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: options.timeout}
	}

	if options.apiKeyFile != "" {
		if err := client.SetAPIKeyFile(options.apiKeyFile); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// buildRequestURL assembles the full request URL: base + resource fragment +
// each present query parameter + the fixed file_type and trailing api_key
// parameters. The key is resolved from the active source on every call.
func (c *Client) buildRequestURL(fragment string, query *Query) (string, error) {
	key, err := c.resolveKey()
	if err != nil {
		return "", err
	}

	encoded, err := query.encode()
	if err != nil {
		return "", err
	}

	return c.baseURL + fragment + encoded + "&file_type=json&api_key=" + key, nil
}

// get builds the request URL, issues the GET and returns the raw JSON body.
// The FRED error envelope is mapped to *APIError. The API key never appears
// in logs or returned errors.
func (c *Client) get(ctx context.Context, fragment string, query *Query) (json.RawMessage, error) {
	requestURL, err := c.buildRequestURL(fragment, query)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("url", redactKey(requestURL)).Msg("Making FRED API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", redactErr(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactErr(err)
		c.logger.Error().Err(err).Str("resource", fragment).Msg("FRED request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if gjson.ValidBytes(body) {
			apiErr.Code = int(gjson.GetBytes(body, "error_code").Int())
			apiErr.Message = gjson.GetBytes(body, "error_message").String()
		}
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("resource", fragment).
			Msg("FRED API returned an error")
		return nil, apiErr
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON in response for %s", fragment)
	}

	return json.RawMessage(body), nil
}

// GetRaw fetches an arbitrary resource path fragment and returns the raw
// JSON body. It exists for endpoints the typed methods do not wrap.
func (c *Client) GetRaw(ctx context.Context, fragment string, query *Query) (json.RawMessage, error) {
	return c.get(ctx, fragment, query)
}

// getInto fetches a resource and decodes the body into out.
func (c *Client) getInto(ctx context.Context, fragment string, query *Query, out interface{}) error {
	body, err := c.get(ctx, fragment, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// redactKey strips the api_key value from a request URL so it can be logged.
func redactKey(requestURL string) string {
	idx := strings.Index(requestURL, "api_key=")
	if idx == -1 {
		return requestURL
	}
	return requestURL[:idx] + "api_key=REDACTED"
}

// redactErr scrubs the API key from transport errors, which embed the full
// request URL.
func redactErr(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redactKey(uerr.URL)
	}
	return err
}
