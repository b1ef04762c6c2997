package contract

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// TestExternalReferences tests writing and loading the objects stored in separate documents.
func TestExternalReferences(t *testing.T) {
	e := testEngine(t)

	lib := &library{Name: "shared", path: "/data/lib/library.xml"}
	require.Empty(t, e.WriteFile("/data/lib/library.xml", lib))
	require.Empty(t, e.WriteFile("/data/main.xml", &document1{Title: "main", Ref: lib, Other: lib}))

	data, err := afero.ReadFile(e.Fs, "/data/main.xml")
	require.NoError(t, err)
	expected := `<document1 type="*contract.document1" id="1">
  <other path="lib/library.xml"/>
  <ref path="lib/library.xml"/>
  <title>main</title>
</document1>
`
	assert.Equal(t, expected, string(data))

	v, resolver, errs := e.ReadFile("/data/main.xml", reflect.TypeOf(&document1{}))
	require.Empty(t, errs)
	doc := v.Interface().(*document1)
	require.NotNil(t, doc.Ref)
	assert.Equal(t, "shared", doc.Ref.Name)
	assert.Same(t, doc.Ref, doc.Other)
	assert.Equal(t, "/data/lib/library.xml", doc.Ref.path)
	assert.Equal(t, 1, resolver.Loads())

	t.Run("Idempotent", func(t *testing.T) {
		require.Empty(t, e.WriteFile("/data/copy.xml", doc))
		copied, err := afero.ReadFile(e.Fs, "/data/copy.xml")
		require.NoError(t, err)
		assert.Equal(t, expected, string(copied))
	})

	t.Run("Missing", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(e.Fs, "/data/broken.xml", []byte(`<document1 type="*contract.document1"><ref path="none.xml"/></document1>`), 0644))
		v, _, errs := e.ReadFile("/data/broken.xml", reflect.TypeOf(&document1{}))
		require.Len(t, errs, 1)
		assert.True(t, errors.IsClass(errs[0], class.SerializationReferenceExternal))
		assert.Nil(t, v.Interface().(*document1).Ref)
	})

	t.Run("Absolute", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(e.Fs, "/other/abs.xml", []byte(`<document1 type="*contract.document1"><ref path="/data/lib/library.xml"/></document1>`), 0644))
		v, resolver, errs := e.ReadFile("/other/abs.xml", reflect.TypeOf(&document1{}))
		require.Empty(t, errs)
		assert.Equal(t, "shared", v.Interface().(*document1).Ref.Name)
		assert.Equal(t, 1, resolver.Loads())
	})

	t.Run("Extension", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(e.Fs, "/data/short.xml", []byte(`<document1 type="*contract.document1"><ref path="lib/library"/></document1>`), 0644))
		v, resolver, errs := e.ReadFile("/data/short.xml", reflect.TypeOf(&document1{}))
		require.Empty(t, errs)
		assert.Equal(t, "shared", v.Interface().(*document1).Ref.Name)
		assert.Equal(t, "/data/lib/library.xml", v.Interface().(*document1).Ref.path)
		assert.Equal(t, 1, resolver.Loads())
	})
}

// TestRelativeDirectory tests the external references of the documents stored under a relative directory.
func TestRelativeDirectory(t *testing.T) {
	e := testEngine(t)

	lib := &library{Name: "shared"}
	lib.path = "docs/lib.xml"
	require.Empty(t, e.WriteFile("docs/lib.xml", lib))
	require.Empty(t, e.WriteFile("docs/main.xml", &document1{Title: "main", Ref: lib}))

	data, err := afero.ReadFile(e.Fs, "docs/main.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<ref path="lib.xml"/>`)

	v, resolver, errs := e.ReadFile("docs/main.xml", reflect.TypeOf(&document1{}))
	require.Empty(t, errs)
	doc := v.Interface().(*document1)
	require.NotNil(t, doc.Ref)
	assert.Equal(t, "shared", doc.Ref.Name)
	assert.Equal(t, "docs/lib.xml", doc.Ref.path)
	assert.Equal(t, 1, resolver.Loads())

	t.Run("WriteBack", func(t *testing.T) {
		require.Empty(t, e.WriteFile("docs/main.xml", doc))
		written, err := afero.ReadFile(e.Fs, "docs/main.xml")
		require.NoError(t, err)
		assert.Equal(t, string(data), string(written))

		v, _, errs := e.ReadFile("docs/main.xml", reflect.TypeOf(&document1{}))
		require.Empty(t, errs)
		assert.Equal(t, "shared", v.Interface().(*document1).Ref.Name)
	})
}

// TestRelativePath tests resolving the external paths against the document directory.
func TestRelativePath(t *testing.T) {
	s := testEngine(t).NewSession("/data/main.xml")
	assert.Equal(t, "lib/a.xml", s.RelativePath("/data/lib/a.xml"))
	assert.Equal(t, "../b.xml", s.RelativePath("/b.xml"))
	assert.Equal(t, "c.xml", s.RelativePath("c.xml"))

	assert.Equal(t, "/data/lib/a.xml", s.ExternalPath("lib/a.xml"))
	assert.Equal(t, "/a.xml", s.ExternalPath("/a.xml"))
	assert.Equal(t, "/b.xml", s.ExternalPath("../b.xml"))
	assert.Equal(t, "/data/lib/a.xml", s.ExternalPath("lib/a"))

	t.Run("RelativeDirectory", func(t *testing.T) {
		s := testEngine(t).NewSession("docs/main.xml")
		assert.Equal(t, "lib/a.xml", s.RelativePath("docs/lib/a.xml"))
		assert.Equal(t, "../b.xml", s.RelativePath("b.xml"))
		assert.Equal(t, "docs/lib/a.xml", s.ExternalPath("lib/a.xml"))

		abs, err := filepath.Abs("docs/lib/a.xml")
		require.NoError(t, err)
		assert.Equal(t, "lib/a.xml", s.RelativePath(abs))
	})
}
