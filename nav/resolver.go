package nav

import "fmt"

// defaultRedirectLimit bounds the number of chained redirects a single
// navigation may perform unless overridden with WithRedirectLimit.
const defaultRedirectLimit = 5

// resolve runs the full match/redirect state machine for location and
// returns the final stack plus the number of redirects taken. Any
// failure (no match, a redirect loop, an exceeded limit, a panic inside
// a user redirect rule) is normalized into a single error match, so
// resolve never returns an empty stack and never lets a panic escape.
func (rt *Router) resolve(location string, extra any) (stack []*RouteMatch, redirects int) {
	requested := canonicalLocation(location)
	path, _ := splitLocation(requested)

	defer func() {
		if v := recover(); v != nil {
			stack = []*RouteMatch{errorMatch(path, fmt.Errorf("nav: redirect rule panicked: %v", v))}
		}
	}()

	resolved, redirects, err := rt.resolveLocation(requested, extra)
	if err != nil {
		return []*RouteMatch{errorMatch(path, err)}, redirects
	}
	return resolved, redirects
}

// resolveLocation iterates the redirect state machine: canonicalize,
// router-wide redirect check, match, leaf redirect check. Every
// redirect loops back to the router-wide check against the new
// location.
func (rt *Router) resolveLocation(location string, extra any) ([]*RouteMatch, int, error) {
	visited := []string{location}
	redirects := 0

	for {
		path, query := splitLocation(location)
		queryParams, err := parseQuery(query)
		if err != nil {
			return nil, redirects, err
		}

		// Router-wide redirect rule, evaluated before matching. No
		// route name or path parameters exist at this point.
		if rt.redirect != nil {
			target := rt.redirect(&MatchContext{
				Location:    location,
				SubLocation: path,
				QueryParams: queryParams,
				Extra:       extra,
			})
			if target != "" {
				next := canonicalLocation(target)
				if err := checkRedirect(&visited, next, rt.redirectLimit); err != nil {
					return nil, redirects, err
				}
				redirects++
				location = next
				continue
			}
		}

		stacks := matchStacks(rt.routes, path)
		if len(stacks) == 0 {
			return nil, redirects, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		// Declaration order breaks ties between ambiguous stacks.
		stack := stacks[0]
		mergeParams(stack)
		for _, m := range stack {
			m.QueryParams = queryParams
			m.Extra = extra
		}

		// The leaf route's own redirect rule sees the full match
		// context.
		leaf := stack[len(stack)-1]
		if leaf.Route.Redirect != nil {
			target := leaf.Route.Redirect(matchContextFor(location, leaf))
			if target != "" {
				next := canonicalLocation(target)
				if err := checkRedirect(&visited, next, rt.redirectLimit); err != nil {
					return nil, redirects, err
				}
				redirects++
				location = next
				continue
			}
		}

		return stack, redirects, nil
	}
}

// checkRedirect records next on the visited list, failing on a cycle or
// when the chain would exceed the configured limit. Both failures are
// configuration defects in the redirect rules and abort the navigation.
func checkRedirect(visited *[]string, next string, limit int) error {
	if matchInArray(*visited, next) {
		return &RedirectLoopError{Visited: append(append([]string(nil), *visited...), next)}
	}
	if len(*visited) > limit {
		return &RedirectLimitError{Limit: limit, Visited: append(append([]string(nil), *visited...), next)}
	}
	*visited = append(*visited, next)
	return nil
}

// matchContextFor exposes a resolved match to its redirect rule.
func matchContextFor(location string, m *RouteMatch) *MatchContext {
	return &MatchContext{
		Location:    location,
		SubLocation: m.SubLocation,
		Name:        m.Route.Name,
		Path:        m.Route.Path,
		FullPath:    m.FullPath,
		Params:      m.Params(),
		QueryParams: m.QueryParams,
		Extra:       m.Extra,
	}
}

// errorMatch builds the synthetic single-entry stack for a failed
// navigation. The match points at a detached route so the presentation
// layer can still key off Route.Path.
func errorMatch(path string, err error) *RouteMatch {
	return &RouteMatch{
		Route:       &Route{Path: path},
		SubLocation: path,
		FullPath:    path,
		Err:         err,
	}
}
