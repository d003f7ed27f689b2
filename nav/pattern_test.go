package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathPattern(t *testing.T) {
	t.Run("compiles literal template", func(t *testing.T) {
		p, err := newPathPattern("/settings")

		require.NoError(t, err)
		assert.Empty(t, p.varsN)
		assert.Equal(t, "/settings", p.template)
	})

	t.Run("compiles root template", func(t *testing.T) {
		p, err := newPathPattern("/")

		require.NoError(t, err)
		assert.Empty(t, p.varsN)
	})

	t.Run("collects parameter names in template order", func(t *testing.T) {
		p, err := newPathPattern("family/:fid/person/:pid")

		require.NoError(t, err)
		assert.Equal(t, []string{"fid", "pid"}, p.varsN)
	})

	t.Run("rejects duplicated parameter name", func(t *testing.T) {
		_, err := newPathPattern("pair/:id/with/:id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicated parameter")
	})

	t.Run("rejects empty parameter name", func(t *testing.T) {
		_, err := newPathPattern("family/:")

		assert.Error(t, err)
	})
}

func TestPathPatternMatchPrefix(t *testing.T) {
	t.Run("matches literal prefix", func(t *testing.T) {
		p, err := newPathPattern("/")
		require.NoError(t, err)

		consumed, vars, ok := p.matchPrefix("/family/f2")

		require.True(t, ok)
		assert.Equal(t, 1, consumed)
		assert.Empty(t, vars)
	})

	t.Run("captures parameter values", func(t *testing.T) {
		p, err := newPathPattern("family/:fid")
		require.NoError(t, err)

		consumed, vars, ok := p.matchPrefix("family/f2/person/p1")

		require.True(t, ok)
		assert.Equal(t, len("family/f2"), consumed)
		assert.Equal(t, map[string]string{"fid": "f2"}, vars)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		p, err := newPathPattern("family/:fid")
		require.NoError(t, err)

		_, vars, ok := p.matchPrefix("Family/F2")

		require.True(t, ok)
		assert.Equal(t, "F2", vars["fid"])
	})

	t.Run("requires segment boundary after consumed prefix", func(t *testing.T) {
		p, err := newPathPattern("p")
		require.NoError(t, err)

		_, _, ok := p.matchPrefix("person")

		assert.False(t, ok)
	})

	t.Run("keeps captured values percent-encoded", func(t *testing.T) {
		p, err := newPathPattern("family/:fid")
		require.NoError(t, err)

		_, vars, ok := p.matchPrefix("family/f%202")

		require.True(t, ok)
		assert.Equal(t, "f%202", vars["fid"])
	})

	t.Run("reports no match", func(t *testing.T) {
		p, err := newPathPattern("family/:fid")
		require.NoError(t, err)

		_, _, ok := p.matchPrefix("person/p1")

		assert.False(t, ok)
	})
}

func TestPathPatternExpand(t *testing.T) {
	t.Run("substitutes parameter values", func(t *testing.T) {
		p, err := newPathPattern("/family/:fid/person/:pid")
		require.NoError(t, err)

		path, err := p.expand(map[string]string{"fid": "f2", "pid": "p1"})

		require.NoError(t, err)
		assert.Equal(t, "/family/f2/person/p1", path)
	})

	t.Run("fails on missing parameter", func(t *testing.T) {
		p, err := newPathPattern("/family/:fid")
		require.NoError(t, err)

		_, err = p.expand(map[string]string{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), `missing parameter "fid"`)
	})

	t.Run("keeps percent literals in template segments", func(t *testing.T) {
		p, err := newPathPattern("/files/100%25/:name")
		require.NoError(t, err)

		path, err := p.expand(map[string]string{"name": "report"})

		require.NoError(t, err)
		assert.Equal(t, "/files/100%25/report", path)
	})
}

func TestCompilePatternCache(t *testing.T) {
	t.Run("returns the same compiled pattern for one template", func(t *testing.T) {
		first, err := compilePattern("/cached/:id")
		require.NoError(t, err)

		second, err := compilePattern("/cached/:id")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})
}

func TestParamEncoding(t *testing.T) {
	t.Run("round-trips reserved URI characters", func(t *testing.T) {
		for _, raw := range []string{
			"plain",
			"a b c",
			"slash/value",
			"query?key=value&other",
			"percent%value",
			"unicode-日本語",
		} {
			encoded := encodeParam(raw)

			assert.Equal(t, raw, decodeParam(encoded), "decode(encode(%q))", raw)
			assert.Equal(t, encoded, encodeParam(decodeParam(encoded)), "encode(decode(%q))", encoded)
		}
	})
}
