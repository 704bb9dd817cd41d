package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)

	got, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "round:\n  base_shuffle_time: 20\nghosts:\n  max_ghosts: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Round.BaseShuffleTime)
	assert.Equal(t, 3, got.Ghosts.MaxGhosts)
	assert.Equal(t, 3.0, got.Round.ShuffleDecrement)
	assert.Equal(t, 25, got.Maze.BaseSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maze:\n  base_size: 2\nhorror:\n  relief_chance: 3\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_size")
	assert.Contains(t, err.Error(), "relief_chance")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maze: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLevelScaling(t *testing.T) {
	d := Default()
	assert.Equal(t, 25, d.MazeSize(1))
	assert.Equal(t, 28, d.MazeSize(2))
	assert.Equal(t, 33, d.MazeSize(3))
	assert.Equal(t, 15.0, d.ShuffleTime(1))
	assert.Equal(t, 15.0, d.ShuffleTime(4))
	assert.Equal(t, 20.0, d.ShuffleTime(5))
	assert.Equal(t, 25.0, d.ShuffleTime(9))
}
