package nav

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// pathPattern stores a compiled path template and metadata for matching
// a location prefix and for rebuilding a concrete path from parameter
// values.
type pathPattern struct {
	// template is the original template string.
	template string
	// regexp matches the template as a location prefix, case-insensitively.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// varsN are the parameter names in template order.
	varsN []string
}

// newPathPattern parses a path template and returns a compiled pathPattern.
// Parameters are declared as ":name" segments; every other segment is
// matched literally.
func newPathPattern(tpl string) (*pathPattern, error) {
	var (
		pattern bytes.Buffer
		reverse bytes.Buffer
		varsN   []string
	)

	pattern.WriteString("(?i)^")

	for i, seg := range strings.Split(tpl, "/") {
		if i > 0 {
			pattern.WriteByte('/')
			reverse.WriteByte('/')
		}

		if strings.HasPrefix(seg, ":") {
			name := seg[1:]
			if name == "" {
				return nil, fmt.Errorf("nav: missing parameter name in template %q", tpl)
			}
			pattern.WriteString("([^/]+)")
			reverse.WriteString("%s")
			varsN = append(varsN, name)
			continue
		}

		pattern.WriteString(regexp.QuoteMeta(seg))
		reverse.WriteString(strings.ReplaceAll(seg, "%", "%%"))
	}

	if err := checkDuplicateParams(varsN, tpl); err != nil {
		return nil, err
	}

	reg, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("nav: invalid template %q: %w", tpl, err)
	}

	return &pathPattern{
		template: tpl,
		regexp:   reg,
		reverse:  reverse.String(),
		varsN:    varsN,
	}, nil
}

// matchPrefix matches the pattern against the beginning of loc. On
// success it returns the number of bytes consumed and the raw captured
// parameter values keyed by name.
func (p *pathPattern) matchPrefix(loc string) (int, map[string]string, bool) {
	idx := p.regexp.FindStringSubmatchIndex(loc)
	if idx == nil {
		return 0, nil, false
	}

	// The consumed prefix must stop at a segment boundary: either the
	// end of the location, a following "/", or a trailing "/" of its
	// own (the root template). Otherwise a template segment could
	// match part of a longer location segment.
	end := idx[1]
	if end < len(loc) && loc[end] != '/' && (end == 0 || loc[end-1] != '/') {
		return 0, nil, false
	}

	vars := make(map[string]string, len(p.varsN))
	for i, name := range p.varsN {
		vars[name] = loc[idx[2*(i+1)]:idx[2*(i+1)+1]]
	}

	return end, vars, true
}

// expand builds a concrete path from the template and the given
// parameter values. Values must already be percent-encoded; literal
// segments pass through untouched. Returns an error if a template
// parameter has no value.
func (p *pathPattern) expand(values map[string]string) (string, error) {
	expandValues := make([]interface{}, len(p.varsN))
	for i, name := range p.varsN {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("nav: missing parameter %q for template %q", name, p.template)
		}
		expandValues[i] = v
	}
	return fmt.Sprintf(p.reverse, expandValues...), nil
}

// checkDuplicateParams returns an error if a parameter name is repeated
// within one template.
func checkDuplicateParams(vars []string, tpl string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("nav: duplicated parameter %q in template %q", v, tpl)
		}
		seen[v] = true
	}
	return nil
}

// patternCache caches compiled patterns by template string. The number
// of unique templates is bounded by the number of declared routes, so
// the cache grows to a fixed size and stays there.
var patternCache sync.Map

// compilePattern returns a cached *pathPattern for the given template,
// compiling and caching it on first use.
func compilePattern(tpl string) (*pathPattern, error) {
	if v, ok := patternCache.Load(tpl); ok {
		return v.(*pathPattern), nil
	}

	p, err := newPathPattern(tpl)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(tpl, p)

	return actual.(*pathPattern), nil
}
