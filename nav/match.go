package nav

import "net/url"

// RouteMatch describes one matched route for one location. A stack of
// RouteMatch values, root route first, is the result of resolving a
// location against the route tree.
type RouteMatch struct {
	// Route is the matched route. It is shared with the declaration
	// tree, never owned or mutated by the match.
	Route *Route

	// SubLocation is the location prefix consumed from the root route
	// through this one, without the query component. Always starts
	// with "/".
	SubLocation string

	// FullPath is the template path from the root route to this one.
	FullPath string

	// EncodedParams holds the captured path parameters with their
	// values still percent-encoded, exactly as they appeared in the
	// location. A match also carries every parameter captured by its
	// ancestors in the stack.
	EncodedParams map[string]string

	// QueryParams holds the query parameters of the location.
	QueryParams map[string]string

	// Extra is the opaque payload passed to Go or Push, if any.
	Extra any

	// Err is set when resolution failed. An error match carries no
	// usable parameters; SubLocation is the originally requested path.
	Err error

	// PageKey disambiguates repeated instances of the same route on
	// the navigation stack. Assigned only to entries created by Push.
	PageKey string
}

// Params returns the path parameters with their values percent-decoded.
func (m *RouteMatch) Params() map[string]string {
	params := make(map[string]string, len(m.EncodedParams))
	for name, v := range m.EncodedParams {
		params[name] = decodeParam(v)
	}
	return params
}

// MatchContext carries everything a redirect rule may inspect about an
// in-progress navigation. Before matching (the router-wide rule) only
// Location, SubLocation, QueryParams and Extra are populated.
type MatchContext struct {
	// Location is the full requested location, including the query.
	Location string

	// SubLocation is the matched sub-location, or the bare path before
	// matching.
	SubLocation string

	// Name is the matched route's name, if any.
	Name string

	// Path is the matched route's own template.
	Path string

	// FullPath is the template path from the root to the matched route.
	FullPath string

	// Params are the decoded path parameters.
	Params map[string]string

	// QueryParams are the query parameters of the location.
	QueryParams map[string]string

	// Extra is the opaque payload for this navigation.
	Extra any
}

// RedirectFunc decides whether a navigation should be redirected. It
// returns the replacement location, or "" to let the navigation proceed
// unchanged. Redirect rules must be pure functions of the context: they
// must not call back into the router that is evaluating them.
type RedirectFunc func(ctx *MatchContext) string

// encodeParam percent-encodes a raw parameter value for use inside a
// path segment.
func encodeParam(v string) string {
	return url.PathEscape(v)
}

// decodeParam decodes a percent-encoded parameter value. A value that
// fails to decode is returned as-is; captured values keep whatever
// encoding the location carried.
func decodeParam(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}
