package nav

import "strings"

// matchStacks returns every way the location path can be consumed by
// the route tree, in declaration order. Each result is a stack of
// matches from the root route to the deepest matched route. An empty
// result means no route matches; more than one full-depth stack means
// the tree is ambiguous for this location, and callers pick the first.
func matchStacks(routes []Route, path string) [][]*RouteMatch {
	return matchRecursive(routes, path, path, "", "")
}

// matchRecursive walks one sibling list. restLoc is the location
// remainder the siblings compete for; parentSubLoc and parentFullPath
// are the location prefix and template prefix already consumed.
func matchRecursive(routes []Route, path, restLoc, parentSubLoc, parentFullPath string) [][]*RouteMatch {
	var stacks [][]*RouteMatch

	for i := range routes {
		route := &routes[i]

		m := matchRoute(route, restLoc, parentSubLoc, parentFullPath)
		if m == nil {
			continue
		}

		if strings.EqualFold(m.SubLocation, path) {
			stacks = append(stacks, []*RouteMatch{m})
			continue
		}
		if len(route.Children) == 0 {
			// The location goes deeper than this route can.
			continue
		}

		childRest := childRestLocation(path, m.SubLocation)
		for _, sub := range matchRecursive(route.Children, path, childRest, m.SubLocation, m.FullPath) {
			stacks = append(stacks, append([]*RouteMatch{m}, sub...))
		}
	}

	return stacks
}

// matchRoute matches a single route's pattern as a prefix of restLoc.
// The sub-location is rebuilt from the template with the captured values
// substituted back in, so it reproduces the consumed location text.
func matchRoute(route *Route, restLoc, parentSubLoc, parentFullPath string) *RouteMatch {
	_, vars, ok := route.pattern.matchPrefix(restLoc)
	if !ok {
		return nil
	}

	segment, err := route.pattern.expand(vars)
	if err != nil {
		return nil
	}

	return &RouteMatch{
		Route:         route,
		SubLocation:   joinLocations(parentSubLoc, segment),
		FullPath:      joinPaths(parentFullPath, route.Path),
		EncodedParams: vars,
	}
}

// childRestLocation returns the part of path the children of a match
// still have to consume. Child templates carry no leading slash, so the
// separator is dropped here.
func childRestLocation(path, subLoc string) string {
	return strings.TrimPrefix(path[len(subLoc):], "/")
}

// mergeParams copies every parameter captured by a match's ancestors
// onto the match itself, so a leaf can read parameters defined by the
// path segments above it. Each match gets its own map.
func mergeParams(stack []*RouteMatch) {
	merged := make(map[string]string)
	for _, m := range stack {
		for name, v := range m.EncodedParams {
			merged[name] = v
		}
		params := make(map[string]string, len(merged))
		for name, v := range merged {
			params[name] = v
		}
		m.EncodedParams = params
	}
}
