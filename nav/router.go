package nav

import (
	"errors"

	"github.com/google/uuid"
)

// Router owns a compiled route tree and the live navigation stack built
// from it. A Router is constructed once with New and mutated only
// through Go, Push, Pop, and Refresh. All operations are synchronous
// and run to completion on the calling goroutine; a Router must be
// owned and mutated by a single logical owner.
type Router struct {
	routes        []Route
	redirect      RedirectFunc
	redirectLimit int
	initial       string
	errorBuild    BuildFunc

	names map[string]namedRoute

	// matches is the live stack of active matches, root first. It is
	// never empty after New returns.
	matches []*RouteMatch

	// pushCounts tracks, per full template path, how many entries were
	// pushed so far. Incremented only inside Push to mint unique page
	// keys.
	pushCounts map[string]int

	// contentCache memoizes Build output per resolved match between
	// two Go calls.
	contentCache map[contentKey]any

	listeners map[string]func()
}

// Option configures a Router at construction.
type Option func(*Router)

// WithRedirect installs the router-wide redirect rule, evaluated before
// matching on every navigation.
func WithRedirect(redirect RedirectFunc) Option {
	return func(rt *Router) {
		rt.redirect = redirect
	}
}

// WithRedirectLimit overrides the maximum number of chained redirects a
// single navigation may perform. The default is 5.
func WithRedirectLimit(limit int) Option {
	return func(rt *Router) {
		rt.redirectLimit = limit
	}
}

// WithInitialLocation overrides the location resolved when the router
// is constructed. The default is "/".
func WithInitialLocation(location string) Option {
	return func(rt *Router) {
		rt.initial = location
	}
}

// WithErrorBuild installs the builder used to produce content for error
// matches.
func WithErrorBuild(build BuildFunc) Option {
	return func(rt *Router) {
		rt.errorBuild = build
	}
}

// New validates and compiles the route tree, builds the reverse-lookup
// index, and resolves the initial location so the navigation stack is
// never empty. The tree is owned by the router afterwards and must not
// be mutated by the caller. Validation failures are configuration
// errors: New reports them immediately and no router is returned.
func New(routes []Route, opts ...Option) (*Router, error) {
	rt := &Router{
		routes:        routes,
		redirectLimit: defaultRedirectLimit,
		initial:       "/",
		pushCounts:    make(map[string]int),
		contentCache:  make(map[contentKey]any),
		listeners:     make(map[string]func()),
	}
	for _, opt := range opts {
		opt(rt)
	}

	if len(rt.routes) == 0 {
		return nil, errors.New("nav: route tree cannot be empty")
	}
	if err := compileRoutes(rt.routes, true, nil); err != nil {
		return nil, err
	}

	names, err := buildNamedIndex(rt.routes)
	if err != nil {
		return nil, err
	}
	rt.names = names

	rt.Go(rt.initial)
	return rt, nil
}

// Resolve computes the match stack for location without touching the
// live stack. A failed resolution yields a single error match, so the
// result is never empty.
func (rt *Router) Resolve(location string, opts ...NavigateOption) []*RouteMatch {
	var options navigateOptions
	for _, opt := range opts {
		opt(&options)
	}
	stack, _ := rt.resolve(location, options.extra)
	return stack
}

// MatchStacks returns every full-depth match stack the route tree
// yields for location's path, in declaration order, without applying
// redirects. More than one stack means the tree is ambiguous for that
// location; navigation always uses the first. Intended for diagnostics.
func (rt *Router) MatchStacks(location string) [][]*RouteMatch {
	path, _ := splitLocation(canonicalLocation(location))
	return matchStacks(rt.routes, path)
}

// AddListener registers fn to run after every completed stack mutation
// and returns a token for RemoveListener. Listeners run synchronously
// on the mutating call, after the stack has reached its final state.
func (rt *Router) AddListener(fn func()) string {
	token := uuid.NewString()
	rt.listeners[token] = fn
	return token
}

// RemoveListener unregisters the listener identified by token.
func (rt *Router) RemoveListener(token string) {
	delete(rt.listeners, token)
}

func (rt *Router) notify() {
	for _, fn := range rt.listeners {
		fn()
	}
}

// WalkFunc is called for each declared route visited by Walk. fullPath
// is the template path from the root to the route.
type WalkFunc func(route *Route, fullPath string, depth int) error

// Walk visits every route of the tree in declaration (preorder) order.
// Returning an error from fn stops the walk and propagates the error.
func (rt *Router) Walk(fn WalkFunc) error {
	return walkRoutes(rt.routes, "", 0, fn)
}

func walkRoutes(routes []Route, parentFullPath string, depth int, fn WalkFunc) error {
	for i := range routes {
		route := &routes[i]
		fullPath := joinPaths(parentFullPath, route.Path)
		if err := fn(route, fullPath, depth); err != nil {
			return err
		}
		if err := walkRoutes(route.Children, fullPath, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// contentKey identifies one resolved match for content memoization.
type contentKey struct {
	fullPath string
	params   string
	query    string
}

func contentKeyFor(m *RouteMatch) contentKey {
	return contentKey{
		fullPath: m.FullPath,
		params:   encodeQuery(m.EncodedParams),
		query:    encodeQuery(m.QueryParams),
	}
}

// Content returns the presentation content for m, invoking the route's
// Build function at most once per (route, params, query) tuple between
// two Go calls. Error matches use the WithErrorBuild builder and are
// not cached. Returns nil when no applicable builder exists.
func (rt *Router) Content(m *RouteMatch) any {
	if m.Err != nil {
		if rt.errorBuild != nil {
			return rt.errorBuild(m)
		}
		return nil
	}
	if m.Route == nil || m.Route.Build == nil {
		return nil
	}

	key := contentKeyFor(m)
	if v, ok := rt.contentCache[key]; ok {
		return v
	}
	v := m.Route.Build(m)
	rt.contentCache[key] = v
	return v
}

// Page wraps m's content in the route's page wrapper, if one was
// declared. The result is opaque to the engine.
func (rt *Router) Page(m *RouteMatch) any {
	if m.Err != nil || m.Route == nil || m.Route.Page == nil {
		return nil
	}
	return m.Route.Page(m)
}
