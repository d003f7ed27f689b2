package navconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GauravCalidig/go-router/nav"
)

// Node is one route declaration in a configuration document.
type Node struct {
	// Path is the route's template, with ":name" parameter segments.
	Path string `yaml:"path"`

	// Name optionally names the route for reverse lookup.
	Name string `yaml:"name,omitempty"`

	// RedirectTo optionally declares a static redirect target for
	// navigations that resolve this route as their leaf.
	RedirectTo string `yaml:"redirect_to,omitempty"`

	// Children are matched in declaration order.
	Children []Node `yaml:"children,omitempty"`
}

// Document is the root of a route configuration file.
type Document struct {
	Routes []Node `yaml:"routes"`
}

// Load parses a YAML route configuration. Fields not declared by Node
// are rejected, so typos in a config file surface as errors instead of
// silently dropped declarations.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("navconfig: decode: %w", err)
	}
	if len(doc.Routes) == 0 {
		return nil, fmt.Errorf("navconfig: no routes declared")
	}
	return &doc, nil
}

// LoadFile reads and parses the route configuration at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("navconfig: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Build converts the document into a nav route tree. Static
// redirect_to targets become redirect rules returning that target.
// builders optionally attaches content builders, looked up first by
// route name, then by route path; builders cannot be expressed in a
// config file.
func (d *Document) Build(builders map[string]nav.BuildFunc) []nav.Route {
	return convert(d.Routes, builders)
}

func convert(nodes []Node, builders map[string]nav.BuildFunc) []nav.Route {
	routes := make([]nav.Route, 0, len(nodes))
	for _, node := range nodes {
		route := nav.Route{
			Path: node.Path,
			Name: node.Name,
		}
		if node.RedirectTo != "" {
			target := node.RedirectTo
			route.Redirect = func(*nav.MatchContext) string { return target }
		}
		if build := lookupBuilder(builders, node); build != nil {
			route.Build = build
		}
		route.Children = convert(node.Children, builders)
		routes = append(routes, route)
	}
	return routes
}

func lookupBuilder(builders map[string]nav.BuildFunc, node Node) nav.BuildFunc {
	if builders == nil {
		return nil
	}
	if node.Name != "" {
		if build, ok := builders[node.Name]; ok {
			return build
		}
	}
	return builders[node.Path]
}

// AttachPlaceholders gives every leaf without a builder or redirect a
// no-op builder, so a config-only tree passes router validation. Meant
// for inspection tooling that never renders content.
func AttachPlaceholders(routes []nav.Route) []nav.Route {
	for i := range routes {
		route := &routes[i]
		if route.Build == nil && route.Page == nil && route.Redirect == nil && len(route.Children) == 0 {
			route.Build = func(*nav.RouteMatch) any { return nil }
		}
		AttachPlaceholders(route.Children)
	}
	return routes
}
