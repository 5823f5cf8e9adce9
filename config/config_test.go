package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeModel(t *testing.T) {
	cases := []struct {
		in   string
		want TimeModel
		ok   bool
	}{
		{"fixed", TimeFixed, true},
		{"", TimeFixed, true},
		{"elapsed", TimeElapsed, true},
		{"wall", TimeFixed, false},
	}

	for _, c := range cases {
		got, ok := ParseTimeModel(c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Equal(t, c.ok, ok, c.in)
	}
}

func TestTimeModelRoundTrip(t *testing.T) {
	for _, m := range []TimeModel{TimeFixed, TimeElapsed} {
		got, ok := ParseTimeModel(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestFloorSitsOnBottomRow(t *testing.T) {
	// The player's feet rest on top of the map's last row.
	assert.Equal(t, World.TileSize, World.FloorInset)
	assert.Equal(t, Player.FrameWidth/2, World.Margin)
	assert.Zero(t, C.Height%World.TileSize)
}
