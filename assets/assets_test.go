package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevels(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"mirror.tmx", "steps.txt"}, names)
}

func TestMirrorLevelMatchesSteps(t *testing.T) {
	steps, err := LoadLevel(nil, "steps.txt")
	require.NoError(t, err)
	mirror, err := LoadLevel(nil, "mirror.tmx")
	require.NoError(t, err)

	require.Equal(t, steps.Cols, mirror.Cols)
	require.Equal(t, steps.Rows, mirror.Rows)
	assert.Equal(t, 32, mirror.TileSize)

	for row := 0; row < steps.Rows; row++ {
		for col := 0; col < steps.Cols; col++ {
			assert.Equal(t, steps.IsSolid(col, row), mirror.IsSolid(steps.Cols-1-col, row), "cell %d,%d", col, row)
		}
	}
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel(nil, "nope.txt")
	assert.Error(t, err)
}
