package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/guessdex/internal/game"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	require.Len(t, cfg.Entities, 3)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTimeout)

	cub := cfg.Entities[0]
	assert.Equal(t, 1, cub.CatalogID)
	assert.Equal(t, "Cindercub", cub.Name)
	// Derivation happens at load time, including color normalization.
	assert.Equal(t, "orange", cub.PrimaryColor)
	assert.Equal(t, game.SizeSmall, cub.SizeClass)
	assert.Equal(t, game.MassLight, cub.MassClass)
	assert.True(t, cub.CanAdvance)

	lion := cfg.Entities[1]
	assert.Equal(t, game.SizeLarge, lion.SizeClass)
	assert.Equal(t, game.MassHeavy, lion.MassClass)
	assert.False(t, lion.CanAdvance, "last element of its chain")

	gill := cfg.Entities[2]
	assert.Equal(t, game.Unknown, gill.PrimaryColor, "missing visual block")
	assert.False(t, gill.CanAdvance, "no chain declared")
}

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty list", `{"entity_list": []}`, "entity_list is empty"},
		{"missing name", `{"entity_list": [{"id": 1, "categories": ["fire"]}]}`, "missing 'name'"},
		{"no categories", `{"entity_list": [{"id": 1, "name": "X"}]}`, "no categories"},
		{
			"duplicate name",
			`{"entity_list": [
				{"id": 1, "name": "Twin", "categories": ["fire"]},
				{"id": 2, "name": "twin", "categories": ["water"]}
			]}`,
			"duplicate entity name",
		},
		{
			"duplicate id",
			`{"entity_list": [
				{"id": 1, "name": "A", "categories": ["fire"]},
				{"id": 1, "name": "B", "categories": ["water"]}
			]}`,
			"duplicate entity id",
		},
		{
			"bad idle timeout",
			`{"entity_list": [{"id": 1, "name": "A", "categories": ["fire"]}], "session_idle_timeout": "soon"}`,
			"invalid session_idle_timeout",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadConfig(writeTempConfig(t, c.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
