package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return New(
		[]Language{
			{Alias: "c", FullName: "c", TemplateDir: "templates/c"},
			{Alias: "py", FullName: "python", TemplateDir: "templates/python"},
			{Alias: "rs", FullName: "rust", InitCommand: "cargo init"},
			{Alias: "go", FullName: "go"},
		},
		[]Category{
			{Alias: "p", FullName: "personal"},
			{Alias: "w", FullName: "work"},
		},
	)
}

func TestFindLanguage(t *testing.T) {
	r := testRegistry()

	for _, want := range r.Languages() {
		t.Run(want.Alias, func(t *testing.T) {
			got, ok := r.FindLanguage(want.Alias)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	for _, alias := range []string{"", "xx", "rust", "RS", " rs", "r"} {
		t.Run("not found "+alias, func(t *testing.T) {
			_, ok := r.FindLanguage(alias)
			assert.False(t, ok)
		})
	}
}

func TestFindCategory(t *testing.T) {
	r := testRegistry()

	c, ok := r.FindCategory("w")
	require.True(t, ok)
	assert.Equal(t, "work", c.FullName)

	for _, alias := range []string{"", "personal", "P", "x"} {
		_, ok := r.FindCategory(alias)
		assert.False(t, ok, "alias %q", alias)
	}
}

func TestFirstMatchWins(t *testing.T) {
	r := New(
		[]Language{
			{Alias: "cpp", FullName: "cpp"},
			{Alias: "cpp", FullName: "raylib"},
		},
		[]Category{{Alias: "p", FullName: "personal"}, {Alias: "p", FullName: "private"}},
	)

	l, ok := r.FindLanguage("cpp")
	require.True(t, ok)
	assert.Equal(t, "cpp", l.FullName)

	c, ok := r.FindCategory("p")
	require.True(t, ok)
	assert.Equal(t, "personal", c.FullName)

	dups := r.Duplicates()
	require.Len(t, dups, 2)
	assert.Contains(t, dups[0], `language alias "cpp" is declared 2 times`)
	assert.Contains(t, dups[1], `category alias "p" is declared 2 times`)
}

func TestNoDuplicates(t *testing.T) {
	assert.Empty(t, testRegistry().Duplicates())
}

func TestNewCopiesInput(t *testing.T) {
	langs := []Language{{Alias: "c", FullName: "c"}}
	r := New(langs, nil)
	langs[0].FullName = "mutated"

	l, ok := r.FindLanguage("c")
	require.True(t, ok)
	assert.Equal(t, "c", l.FullName)

	out := r.Languages()
	out[0].FullName = "mutated"
	l, _ = r.FindLanguage("c")
	assert.Equal(t, "c", l.FullName)
}

func TestAliases(t *testing.T) {
	r := testRegistry()
	assert.Equal(t, []string{"c", "py", "rs", "go"}, r.LanguageAliases())
	assert.Equal(t, []string{"p", "w"}, r.CategoryAliases())
}

func TestLanguageCapabilities(t *testing.T) {
	r := testRegistry()

	rs, _ := r.FindLanguage("rs")
	assert.True(t, rs.HasInitCommand())
	assert.False(t, rs.HasTemplates())

	py, _ := r.FindLanguage("py")
	assert.False(t, py.HasInitCommand())
	assert.True(t, py.HasTemplates())
}
