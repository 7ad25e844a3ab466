// Package fred provides a client for the FRED economic data API.
//
// FRED (Federal Reserve Economic Data) exposes categories, series,
// releases, sources and tags over a simple GET/JSON interface. Every query
// method on Client shares the same base logic: resolve an API key, build
// the request URL by concatenation, issue the request and decode the JSON
// body into a typed response.
//
// # API keys
//
// The key is resolved from one of three sources with fixed precedence: a
// key passed with WithAPIKey, a key file set with WithAPIKeyFile (first
// line of the file, trimmed), or the FRED_API_KEY environment variable.
// When none is available, requests fail with ErrMissingAPIKey. The key is
// never written to logs or error messages.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fred.NewClient(logger, fred.WithAPIKey("your-api-key"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	obs, err := client.GetSeriesObservations(context.Background(), "GDPPOT", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, row := range obs.Table() {
//		fmt.Println(row)
//	}
//
// # Error handling
//
// Missing-credential and missing-argument conditions are reported through
// the sentinel errors ErrMissingAPIKey, ErrKeyFileNotFound and
// ErrInvalidArgument. Error responses from the API carry a status code and
// the upstream error message as *APIError:
//
//	var apiErr *fred.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown series id
//	}
//
// The client is strictly synchronous: one request per call, no caching,
// retries or rate limiting.
package fred
