package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paginator/internal/scroll"
)

func TestAxisContains(t *testing.T) {
	assert.True(t, AxisVertical.Contains(scroll.Up))
	assert.True(t, AxisVertical.Contains(scroll.Down))
	assert.True(t, AxisVertical.Contains(scroll.Vertical))
	assert.False(t, AxisVertical.Contains(scroll.Left))
	assert.False(t, AxisVertical.Contains(scroll.Up|scroll.Right))
	assert.False(t, AxisVertical.Contains(scroll.None))

	assert.True(t, AxisHorizontal.Contains(scroll.Left))
	assert.True(t, AxisHorizontal.Contains(scroll.Right))
	assert.True(t, AxisHorizontal.Contains(scroll.Horizontal))
	assert.False(t, AxisHorizontal.Contains(scroll.Down))
}

func TestAxisStrings(t *testing.T) {
	assert.Equal(t, "vertical", AxisVertical.String())
	assert.Equal(t, "horizontal", AxisHorizontal.String())
	assert.Equal(t, scroll.Vertical, AxisVertical.Directions())
	assert.Equal(t, scroll.Horizontal, AxisHorizontal.Directions())
}

func TestAxisFor(t *testing.T) {
	for d, want := range map[scroll.Direction]Axis{
		scroll.Up:         AxisVertical,
		scroll.Down:       AxisVertical,
		scroll.Vertical:   AxisVertical,
		scroll.Left:       AxisHorizontal,
		scroll.Right:      AxisHorizontal,
		scroll.Horizontal: AxisHorizontal,
	} {
		got, err := AxisFor(d)
		require.NoError(t, err, d.String())
		assert.Equal(t, want, got, d.String())
	}

	_, err := AxisFor(scroll.Up | scroll.Right)
	assert.ErrorIs(t, err, ErrMixedAxes)
	_, err = AxisFor(scroll.Vertical | scroll.Horizontal)
	assert.ErrorIs(t, err, ErrMixedAxes)
	_, err = AxisFor(scroll.None)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMixedAxes)
}
