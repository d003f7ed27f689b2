package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the error carried by the synthetic match produced when
// no route matches a location. It never aborts a navigation: the
// resolver wraps it into an error RouteMatch so the presentation layer
// can show a not-found view.
var ErrNotFound = errors.New("nav: no matching route was found")

// RedirectLoopError reports a redirect rule that produced a location
// already visited during the same navigation.
type RedirectLoopError struct {
	// Visited holds the locations seen during resolution in order,
	// ending with the location that closed the cycle.
	Visited []string
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("nav: redirect loop detected: %s", strings.Join(e.Visited, " => "))
}

// RedirectLimitError reports a redirect chain longer than the router's
// configured limit.
type RedirectLimitError struct {
	// Limit is the configured maximum number of chained redirects.
	Limit int
	// Visited holds the locations seen during resolution in order.
	Visited []string
}

func (e *RedirectLimitError) Error() string {
	return fmt.Sprintf("nav: too many redirects (limit %d): %s", e.Limit, strings.Join(e.Visited, " => "))
}
