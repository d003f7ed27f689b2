package navconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GauravCalidig/go-router/nav"
)

const familyConfig = `
routes:
  - path: /
    children:
      - path: family/:fid
        name: family
        children:
          - path: person/:pid
            name: person
      - path: old-families
        redirect_to: /
`

func TestLoad(t *testing.T) {
	t.Run("parses a route tree", func(t *testing.T) {
		doc, err := Load(strings.NewReader(familyConfig))

		require.NoError(t, err)
		require.Len(t, doc.Routes, 1)
		root := doc.Routes[0]
		assert.Equal(t, "/", root.Path)
		require.Len(t, root.Children, 2)
		assert.Equal(t, "family", root.Children[0].Name)
		assert.Equal(t, "person", root.Children[0].Children[0].Name)
		assert.Equal(t, "/", root.Children[1].RedirectTo)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
routes:
  - path: /
    redirect: /somewhere
`))

		assert.Error(t, err)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("routes: ["))

		assert.Error(t, err)
	})

	t.Run("rejects a document without routes", func(t *testing.T) {
		_, err := Load(strings.NewReader("routes: []"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no routes declared")
	})
}

func TestDocumentRoutes(t *testing.T) {
	doc, err := Load(strings.NewReader(familyConfig))
	require.NoError(t, err)

	t.Run("attaches builders by name and path", func(t *testing.T) {
		routes := doc.Build(map[string]nav.BuildFunc{
			"/":      func(*nav.RouteMatch) any { return "home" },
			"family": func(*nav.RouteMatch) any { return "family" },
			"person": func(*nav.RouteMatch) any { return "person" },
		})

		rt, err := nav.New(routes)
		require.NoError(t, err)

		stack := rt.Resolve("/family/f2/person/p1")
		require.Len(t, stack, 3)
		assert.Equal(t, "person", rt.Content(stack[2]))
	})

	t.Run("static redirect targets become redirect rules", func(t *testing.T) {
		routes := AttachPlaceholders(doc.Build(nil))

		rt, err := nav.New(routes)
		require.NoError(t, err)

		stack := rt.Resolve("/old-families")
		require.Len(t, stack, 1)
		require.NoError(t, stack[0].Err)
		assert.Equal(t, "/", stack[0].SubLocation)
	})
}

func TestAttachPlaceholders(t *testing.T) {
	t.Run("config-only tree passes router validation", func(t *testing.T) {
		doc, err := Load(strings.NewReader(familyConfig))
		require.NoError(t, err)

		routes := AttachPlaceholders(doc.Build(nil))

		_, err = nav.New(routes)
		assert.NoError(t, err)
	})

	t.Run("keeps declared redirects untouched", func(t *testing.T) {
		doc, err := Load(strings.NewReader(familyConfig))
		require.NoError(t, err)

		routes := AttachPlaceholders(doc.Build(nil))

		redirectLeaf := routes[0].Children[1]
		assert.NotNil(t, redirectLeaf.Redirect)
		assert.Nil(t, redirectLeaf.Build)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("fails for a missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does-not-exist.yaml")

		assert.Error(t, err)
	})
}
