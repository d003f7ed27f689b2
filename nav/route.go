package nav

import (
	"errors"
	"fmt"
	"strings"
)

// BuildFunc produces the content for a matched route. The engine treats
// the result as an opaque value owned by the presentation layer.
type BuildFunc func(m *RouteMatch) any

// PageFunc wraps a matched route's content in a presentation-layer
// page. Like BuildFunc, the result is opaque to the engine and keyed by
// the RouteMatch.
type PageFunc func(m *RouteMatch) any

// Route declares one node of the route tree.
//
// Routes are constructed once, handed to New, and immutable afterwards.
type Route struct {
	// Path is the route's template, with ":name" segments declaring
	// path parameters. Top-level paths must start with "/"; child
	// paths must not start or end with "/".
	Path string

	// Name optionally names the route for reverse lookup via
	// NamedLocation. Names are case-insensitively unique across the
	// whole tree.
	Name string

	// Redirect optionally redirects a navigation that resolved this
	// route as its leaf.
	Redirect RedirectFunc

	// Build produces the route's content.
	Build BuildFunc

	// Page wraps the route's content in a page.
	Page PageFunc

	// Children are matched in declaration order once this route has
	// consumed its part of the location.
	Children []Route

	// pattern is compiled from Path when the tree is handed to New.
	pattern *pathPattern
}

// ParamNames returns the parameter names declared in the route's own
// template, in template order. It returns nil before the route tree has
// been compiled by New.
func (r *Route) ParamNames() []string {
	if r.pattern == nil {
		return nil
	}
	return append([]string(nil), r.pattern.varsN...)
}

// compileRoutes compiles every route's pattern and enforces the
// construction-time invariants on the subtree: path shape, parameter
// uniqueness along the template path, and leaf usability. Any violation
// is a configuration error and aborts router construction.
func compileRoutes(routes []Route, root bool, ancestorParams []string) error {
	for i := range routes {
		route := &routes[i]

		if route.Path == "" {
			return errors.New("nav: route path cannot be empty")
		}
		if root && !strings.HasPrefix(route.Path, "/") {
			return fmt.Errorf("nav: top-level route path %q must start with /", route.Path)
		}
		if !root && (strings.HasPrefix(route.Path, "/") || strings.HasSuffix(route.Path, "/")) {
			return fmt.Errorf("nav: child route path %q must not start or end with /", route.Path)
		}

		pattern, err := compilePattern(route.Path)
		if err != nil {
			return err
		}
		for _, name := range pattern.varsN {
			if matchInArray(ancestorParams, name) {
				return fmt.Errorf("nav: parameter %q in route %q is already captured by an ancestor route", name, route.Path)
			}
		}

		if route.Build == nil && route.Page == nil && route.Redirect == nil && len(route.Children) == 0 {
			return fmt.Errorf("nav: route %q needs a builder, a page builder, a redirect, or children", route.Path)
		}

		route.pattern = pattern

		if err := compileRoutes(route.Children, false, append(ancestorParams, pattern.varsN...)); err != nil {
			return err
		}
	}
	return nil
}
