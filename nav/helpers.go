package nav

import "strings"

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}

// joinPaths joins a parent template path and a child template. The
// parent is "" for top-level routes, whose own paths already start
// with "/".
func joinPaths(parent, child string) string {
	switch {
	case parent == "":
		return child
	case strings.HasSuffix(parent, "/"):
		return parent + child
	default:
		return parent + "/" + child
	}
}

// joinLocations joins a parent sub-location with the concrete segment a
// child route consumed. Same shape as joinPaths, kept separate because
// locations carry concrete parameter values rather than templates.
func joinLocations(parent, child string) string {
	switch {
	case parent == "":
		return child
	case strings.HasSuffix(parent, "/"):
		return parent + child
	default:
		return parent + "/" + child
	}
}
