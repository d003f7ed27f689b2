// Package nav implements a declarative, nested-route resolution engine
// for client-side navigation: given a tree of route declarations and a
// target location, it computes the chain of matched routes, extracts
// and encodes path and query parameters, resolves chained redirects
// with loop and limit protection, and maintains the stack of active
// matches a presentation layer renders as pages.
//
// The engine only decides which routes matched and what parameters they
// carry. Producing content for a match is delegated to opaque builder
// functions supplied per route; the engine never inspects their output.
//
// # Declaring routes
//
// Routes form a static tree. Each route has a path template, an
// optional name, an optional redirect rule, optional builders, and
// child routes. Path parameters are declared as ":name" segments:
//
//	routes := []nav.Route{{
//	    Path:  "/",
//	    Build: homeContent,
//	    Children: []nav.Route{{
//	        Path:  "family/:fid",
//	        Name:  "family",
//	        Build: familyContent,
//	        Children: []nav.Route{{
//	            Path:  "person/:pid",
//	            Name:  "person",
//	            Build: personContent,
//	        }},
//	    }},
//	}}
//
//	rt, err := nav.New(routes)
//
// Top-level paths must start with "/"; child paths must not start or
// end with "/". A parameter name may not repeat within a template nor
// collide with a parameter captured by an ancestor route. Route names
// are case-insensitively unique. New validates all of this and fails
// fast on any violation.
//
// # Resolving locations
//
// Matching is a recursive descent over the tree in declaration order.
// A route's template matches a prefix of the remaining location; its
// children compete for the remainder. Resolving "/family/f2/person/p1"
// against the tree above yields a three-entry stack whose leaf carries
// the merged parameters {fid: "f2", pid: "p1"}:
//
//	stack := rt.Resolve("/family/f2/person/p1")
//	leaf := stack[len(stack)-1]
//	leaf.Params() // map[fid:f2 pid:p1]
//
// Parameter values stay percent-encoded in EncodedParams exactly as
// the location carried them; Params decodes them. When no route
// matches, Resolve returns a single match with Err set, wrapping
// ErrNotFound; navigation never fails with an empty result.
//
// # Redirects
//
// A router-wide rule (WithRedirect) runs before matching; a leaf
// route's own rule runs after, with the full match context. Returning
// "" continues unchanged, anything else restarts resolution at the new
// location:
//
//	rt, err := nav.New(routes, nav.WithRedirect(func(ctx *nav.MatchContext) string {
//	    if !loggedIn && ctx.SubLocation != "/login" {
//	        return "/login?from=" + url.QueryEscape(ctx.SubLocation)
//	    }
//	    return ""
//	}))
//
// Redirect chains are protected: a location visited twice yields a
// RedirectLoopError, and chains longer than the configured limit
// (WithRedirectLimit, default 5) yield a RedirectLimitError. Both, like
// a panic inside a user rule, are captured and normalized into an error
// match rather than propagated.
//
// # The navigation stack
//
// The live stack holds the currently active matches, root first, and
// is never empty after New (the initial location, "/" by default, is
// resolved at construction).
//
//	rt.Go("/family/f2")            // replace the whole stack
//	rt.Push("/family/f2")          // append the leaf, keep the rest
//	rt.Pop()                       // drop the most recent entry
//	rt.Refresh()                   // re-resolve the current location
//	rt.CurrentStack()              // the active matches
//	rt.Location()                  // displayable current location
//
// Pushed entries get a page key derived from a per-path counter, so the
// same route can appear on the stack repeatedly with distinct identity.
// Popping the final entry panics: the stack must never become empty.
//
// # Named routes
//
// NamedLocation rebuilds a concrete location from a route name and raw
// parameter values, percent-encoding each value:
//
//	loc, err := rt.NamedLocation("family", map[string]string{"fid": "f2"}, nil)
//	// "/family/f2"
//
// # Listeners
//
// AddListener registers a callback invoked after every completed stack
// mutation (including navigations that settled through redirects) and
// returns a removal token. This is the hook for address-bar or history
// synchronization.
//
// # Concurrency
//
// All operations are synchronous and run to completion on the calling
// goroutine. A Router is owned by a single logical owner; concurrent
// mutation is not supported. Redirect rules are pure functions of the
// match context and must not call back into the router evaluating them.
package nav
