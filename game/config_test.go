package game_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-chtw/tw_riichi/game"
)

func TestLoadConfig(t *testing.T) {
	data := `name: east-only
seed: 42
property: '{"rounds":4,"init_score":30000}'
`
	file := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	cfg, err := game.LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "east-only", cfg.Name)
	assert.Equal(t, int64(42), cfg.Seed)

	rule := cfg.Rule()
	assert.Equal(t, 4, rule.Rounds)
	assert.Equal(t, int64(30000), rule.InitScore)
	assert.True(t, rule.KuikaeStrict)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := game.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
