package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"keeps root", "/", "/"},
		{"keeps plain path", "/family/f2", "/family/f2"},
		{"roots empty location", "", "/"},
		{"roots relative location", "family/f2", "/family/f2"},
		{"drops trailing slash", "/family/f2/", "/family/f2"},
		{"strips bare trailing question mark", "/family/f2?", "/family/f2"},
		{"keeps query string", "/family/f2?sort=age", "/family/f2?sort=age"},
		{"drops trailing slash before query", "/family/f2/?sort=age", "/family/f2?sort=age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalLocation(tt.location))
		})
	}
}

func TestSplitLocation(t *testing.T) {
	t.Run("splits path and query", func(t *testing.T) {
		path, query := splitLocation("/family/f2?sort=age&max=10")

		assert.Equal(t, "/family/f2", path)
		assert.Equal(t, "sort=age&max=10", query)
	})

	t.Run("returns empty query without separator", func(t *testing.T) {
		path, query := splitLocation("/family/f2")

		assert.Equal(t, "/family/f2", path)
		assert.Empty(t, query)
	})
}

func TestParseQuery(t *testing.T) {
	t.Run("decodes values", func(t *testing.T) {
		params, err := parseQuery("from=%2Ffamily%2Ff2&tab=members")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"from": "/family/f2", "tab": "members"}, params)
	})

	t.Run("first value wins for repeated keys", func(t *testing.T) {
		params, err := parseQuery("tab=members&tab=history")

		require.NoError(t, err)
		assert.Equal(t, "members", params["tab"])
	})

	t.Run("rejects invalid percent escapes", func(t *testing.T) {
		_, err := parseQuery("bad=%zz")

		assert.Error(t, err)
	})

	t.Run("returns empty map for empty query", func(t *testing.T) {
		params, err := parseQuery("")

		require.NoError(t, err)
		assert.Empty(t, params)
	})
}

func TestEncodeQuery(t *testing.T) {
	t.Run("sorts keys for deterministic output", func(t *testing.T) {
		q := encodeQuery(map[string]string{"b": "2", "a": "1", "c": "3"})

		assert.Equal(t, "a=1&b=2&c=3", q)
	})

	t.Run("percent-encodes values", func(t *testing.T) {
		q := encodeQuery(map[string]string{"from": "/family/f2"})

		assert.Equal(t, "from=%2Ffamily%2Ff2", q)
	})

	t.Run("returns empty string for empty map", func(t *testing.T) {
		assert.Empty(t, encodeQuery(nil))
	})
}

func TestJoinHelpers(t *testing.T) {
	t.Run("joinPaths", func(t *testing.T) {
		assert.Equal(t, "/", joinPaths("", "/"))
		assert.Equal(t, "/family/:fid", joinPaths("/", "family/:fid"))
		assert.Equal(t, "/family/:fid/person/:pid", joinPaths("/family/:fid", "person/:pid"))
	})

	t.Run("joinLocations", func(t *testing.T) {
		assert.Equal(t, "/", joinLocations("", "/"))
		assert.Equal(t, "/family/f2", joinLocations("/", "family/f2"))
		assert.Equal(t, "/family/f2/person/p1", joinLocations("/family/f2", "person/p1"))
	})
}
