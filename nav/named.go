package nav

import (
	"fmt"
	"strings"
)

// namedRoute is one entry of the reverse-lookup index.
type namedRoute struct {
	route    *Route
	fullPath string
	// pattern is compiled from fullPath, so expansion covers the
	// parameters of every ancestor segment as well.
	pattern *pathPattern
}

// buildNamedIndex walks the tree in preorder and records every named
// route under its lowercased name. Two routes sharing a
// case-insensitively equal name is a configuration error.
func buildNamedIndex(routes []Route) (map[string]namedRoute, error) {
	index := make(map[string]namedRoute)
	if err := indexRoutes(index, routes, ""); err != nil {
		return nil, err
	}
	return index, nil
}

func indexRoutes(index map[string]namedRoute, routes []Route, parentFullPath string) error {
	for i := range routes {
		route := &routes[i]
		fullPath := joinPaths(parentFullPath, route.Path)

		if route.Name != "" {
			key := strings.ToLower(route.Name)
			if prev, exists := index[key]; exists {
				return fmt.Errorf("nav: duplicate route name %q for paths %q and %q", route.Name, prev.fullPath, fullPath)
			}
			pattern, err := compilePattern(fullPath)
			if err != nil {
				return err
			}
			index[key] = namedRoute{route: route, fullPath: fullPath, pattern: pattern}
		}

		if err := indexRoutes(index, route.Children, fullPath); err != nil {
			return err
		}
	}
	return nil
}

// NamedLocation builds a concrete location for the route registered
// under name. Lookup is case-insensitive. params supplies a raw value
// for every parameter of the route's full template path; each value is
// percent-encoded before substitution. Supplying a key the template
// does not declare is an error, as is omitting a declared one.
// queryParams, when non-empty, are appended as an encoded query string.
// The navigation stack is not touched.
func (rt *Router) NamedLocation(name string, params, queryParams map[string]string) (string, error) {
	entry, ok := rt.names[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("nav: unknown route name %q", name)
	}

	for key := range params {
		if !matchInArray(entry.pattern.varsN, key) {
			return "", fmt.Errorf("nav: route %q has no parameter %q in template %q", name, key, entry.fullPath)
		}
	}

	encoded := make(map[string]string, len(params))
	for key, v := range params {
		encoded[key] = encodeParam(v)
	}

	location, err := entry.pattern.expand(encoded)
	if err != nil {
		return "", err
	}
	if q := encodeQuery(queryParams); q != "" {
		location += "?" + q
	}
	return location, nil
}
