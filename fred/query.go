package fred

import (
	"fmt"
	"strconv"
	"strings"
)

// Query holds request parameters in insertion order. FRED request URLs are
// assembled by plain concatenation, so ordering is preserved rather than
// sorted the way url.Values would.
type Query struct {
	params []param
}

type param struct {
	name  string
	value interface{}
}

// NewQuery creates an empty parameter list.
func NewQuery() *Query {
	return &Query{}
}

// Add appends a parameter. A nil value is kept in the list but omitted from
// the built URL, so callers can add optional parameters unconditionally.
func (q *Query) Add(name string, value interface{}) *Query {
	q.params = append(q.params, param{name: name, value: value})
	return q
}

// encode renders the parameter list as a "&name=value" string, skipping
// absent values.
func (q *Query) encode() (string, error) {
	if q == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range q.params {
		if isAbsent(p.value) {
			continue
		}
		formatted, err := formatValue(p.name, p.value)
		if err != nil {
			return "", err
		}
		sb.WriteString("&")
		sb.WriteString(p.name)
		sb.WriteString("=")
		sb.WriteString(formatted)
	}
	return sb.String(), nil
}

// isAbsent reports whether a parameter value should be omitted from the
// built URL. Typed nil pointers and nil slices count as absent.
func isAbsent(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case *bool:
		return v == nil
	case *int:
		return v == nil
	case *string:
		return v == nil
	case []string:
		return v == nil
	}
	return false
}

// formatValue renders a single parameter value. Booleans become lowercase
// true/false. A parameter whose name contains "tag_names" takes a list of
// tags joined with ";", with interior whitespace encoded as "+" per the
// FRED convention for multi-word tags.
func formatValue(name string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	case *bool:
		return strconv.FormatBool(*v), nil
	case *int:
		return strconv.Itoa(*v), nil
	case *string:
		return *v, nil
	case []string:
		joined, err := joinStrings(v, ";")
		if err != nil {
			return "", fmt.Errorf("cannot add %s to query: %w", name, err)
		}
		if strings.Contains(name, "tag_names") {
			joined = strings.ReplaceAll(strings.TrimSpace(joined), " ", "+")
		}
		return joined, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// joinStrings joins strs with sep.
func joinStrings(strs []string, sep string) (string, error) {
	if strs == nil || sep == "" {
		return "", fmt.Errorf("%w: strings and separator are both required", ErrInvalidArgument)
	}
	return strings.Join(strs, sep), nil
}

// appendID appends an integer or string identifier to a path fragment.
// Exactly one form is expected; the integer wins when both are given.
func appendID(fragment string, intID *int, strID string) (string, error) {
	if intID == nil && strID == "" {
		return "", fmt.Errorf("%w: no id given, cannot append to url", ErrInvalidArgument)
	}
	if intID != nil {
		return fragment + strconv.Itoa(*intID), nil
	}
	return fragment + strID, nil
}

// Bool returns a pointer to v, for optional boolean parameters.
func Bool(v bool) *bool {
	return &v
}
