package nav

import "fmt"

// NavigateOption adjusts a single Go, Push, or Resolve call.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	extra any
}

// WithExtra attaches an opaque payload to the navigation. It rides on
// every match of the resolved stack and is visible to redirect rules
// through the match context.
func WithExtra(extra any) NavigateOption {
	return func(o *navigateOptions) {
		o.extra = extra
	}
}

// Go resolves location and replaces the whole live stack with the
// result. The stack is swapped in one step once resolution has reached
// a terminal state, so it is never observed partially updated.
func (rt *Router) Go(location string, opts ...NavigateOption) {
	var options navigateOptions
	for _, opt := range opts {
		opt(&options)
	}

	// A fresh top-level navigation invalidates memoized content.
	rt.contentCache = make(map[contentKey]any)

	stack, _ := rt.resolve(location, options.extra)
	rt.matches = stack
	rt.notify()
}

// Push resolves location and appends only its leaf match, leaving the
// rest of the stack untouched. The new entry gets a page key minted
// from a per-full-path counter, so the same route can sit on the stack
// more than once with distinguishable identity.
func (rt *Router) Push(location string, opts ...NavigateOption) {
	var options navigateOptions
	for _, opt := range opts {
		opt(&options)
	}

	stack, _ := rt.resolve(location, options.extra)
	leaf := *stack[len(stack)-1]
	rt.pushCounts[leaf.FullPath]++
	leaf.PageKey = fmt.Sprintf("%s-p%d", leaf.FullPath, rt.pushCounts[leaf.FullPath])

	rt.matches = append(rt.matches, &leaf)
	rt.notify()
}

// Pop removes the most recent entry from the stack. Popping the final
// entry is a programmer error and panics.
func (rt *Router) Pop() {
	if len(rt.matches) <= 1 {
		panic("nav: pop would empty the navigation stack")
	}
	rt.matches = rt.matches[:len(rt.matches)-1]
	rt.notify()
}

// Refresh re-resolves the current location, reusing the current leaf's
// Extra payload, and replaces the stack with the result. Use it when
// external state consulted by redirect rules has changed.
func (rt *Router) Refresh() {
	leaf := rt.matches[len(rt.matches)-1]
	stack, _ := rt.resolve(rt.Location(), leaf.Extra)
	rt.matches = stack
	rt.notify()
}

// CurrentStack returns the live stack of active matches, root match
// first. The returned slice is shared with the router; callers must not
// mutate it.
func (rt *Router) CurrentStack() []*RouteMatch {
	return rt.matches
}

// Location returns the displayable location of the deepest entry: its
// sub-location plus its query parameters, canonicalized.
func (rt *Router) Location() string {
	leaf := rt.matches[len(rt.matches)-1]
	location := leaf.SubLocation
	if q := encodeQuery(leaf.QueryParams); q != "" {
		location += "?" + q
	}
	return canonicalLocation(location)
}
