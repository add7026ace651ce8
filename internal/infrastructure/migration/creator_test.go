package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Budget Tables")
	require.NoError(t, err)

	assert.Contains(t, mf.UpPath, "add_budget_tables.up.sql")
	assert.Contains(t, mf.DownPath, "add_budget_tables.down.sql")
	assert.Len(t, mf.Version, 14)

	for _, path := range []string{mf.UpPath, mf.DownPath} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Add Budget Tables")
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty directory", func(t *testing.T) {
		names, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("missing directory", func(t *testing.T) {
		names, err := ListMigrations(dir + "/nope")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("lists up migrations sorted", func(t *testing.T) {
		for _, name := range []string{
			"20240102000000_second.up.sql",
			"20240102000000_second.down.sql",
			"20240101000000_first.up.sql",
			"20240101000000_first.down.sql",
		} {
			require.NoError(t, os.WriteFile(dir+"/"+name, []byte("-- sql"), 0644))
		}

		names, err := ListMigrations(dir)
		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.Equal(t, "20240101000000_first", names[0])
		assert.Equal(t, "20240102000000_second", names[1])
	})
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Add Budget Tables":  "add_budget_tables",
		"add-budget-tables":  "add_budget_tables",
		"trailing space ":    "trailing_space",
		"weird!@#chars":      "weirdchars",
		"":                   "migration",
		"Multiple   Spaces!": "multiple_spaces",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeName(input), "input %q", input)
	}
}
