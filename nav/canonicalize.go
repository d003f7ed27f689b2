package nav

import (
	"fmt"
	"net/url"
	"strings"
)

// canonicalLocation normalizes a location before matching: a missing or
// relative path is rooted, a trailing slash is dropped (except for the
// root path), and a bare trailing "?" is stripped. The query string is
// preserved as-is.
func canonicalLocation(location string) string {
	path, query, hasQuery := strings.Cut(location, "?")

	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if hasQuery && query != "" {
		return path + "?" + query
	}
	return path
}

// splitLocation splits a location into its path and query components.
// The query is returned without the leading "?".
func splitLocation(location string) (path, query string) {
	path, query, _ = strings.Cut(location, "?")
	return path, query
}

// parseQuery parses a query string into a single-valued parameter map.
// When a key repeats, the first value wins.
func parseQuery(query string) (map[string]string, error) {
	params := make(map[string]string)
	if query == "" {
		return params, nil
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("nav: invalid query string %q: %w", query, err)
	}
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[0]
		}
	}
	return params, nil
}

// encodeQuery builds a deterministic, percent-encoded query string from
// a parameter map. Keys are sorted, so equal maps always produce equal
// strings. Returns "" for an empty map.
func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, v := range params {
		values.Set(key, v)
	}
	return values.Encode()
}
