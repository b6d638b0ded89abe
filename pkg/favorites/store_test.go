package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Names())
}

func TestChangesPersistAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "favorites.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Add("SoFi Scholarship Giveaway"))
	require.NoError(t, s.Add("Triadex Services Scholarship"))
	require.NoError(t, s.Add("SoFi Scholarship Giveaway"))
	on, err := s.Toggle("Triadex Services Scholarship")
	require.NoError(t, err)
	assert.False(t, on)
	on, err = s.Toggle("Niche $15,000 No Essay Scholarship")
	require.NoError(t, err)
	assert.True(t, on)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SoFi Scholarship Giveaway", "Niche $15,000 No Essay Scholarship"}, reopened.Names())
	assert.True(t, reopened.Contains("SoFi Scholarship Giveaway"))
	assert.Contains(t, reopened.Set(), "Niche $15,000 No Essay Scholarship")

	require.NoError(t, reopened.Remove("SoFi Scholarship Giveaway"))
	require.NoError(t, reopened.Remove("not there"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["Niche $15,000 No Essay Scholarship"]`, string(data))
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenDropsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a","b","a",""]`), 0o644))
	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Names())
}
