package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedGooseFiles(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"00001_init_schema.sql", "00002_seed_categories.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestSeed_HasSeventeenGlobalCategories(t *testing.T) {
	body, err := fs.ReadFile(FS, "00002_seed_categories.sql")
	require.NoError(t, err)

	up := strings.SplitN(string(body), "-- +goose Down", 2)[0]
	assert.Equal(t, 17, strings.Count(up, "(NULL, '"))
}
