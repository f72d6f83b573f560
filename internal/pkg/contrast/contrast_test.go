package contrast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolah-branding/internal/pkg/contrast"
)

func TestRatio(t *testing.T) {
	t.Run("Black On White", func(t *testing.T) {
		ratio, err := contrast.Ratio("#000000", "#FFFFFF")
		assert.NoError(t, err)
		assert.InDelta(t, 21.0, ratio, 0.01)
	})

	t.Run("Order Independent", func(t *testing.T) {
		a, err := contrast.Ratio("#000000", "#FFFFFF")
		assert.NoError(t, err)
		b, err := contrast.Ratio("#FFFFFF", "#000000")
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Near Greys", func(t *testing.T) {
		ratio, err := contrast.Ratio("#777777", "#808080")
		assert.NoError(t, err)
		assert.Less(t, ratio, 1.2)
	})

	t.Run("Short Form", func(t *testing.T) {
		long, err := contrast.Ratio("#000000", "#FFFFFF")
		assert.NoError(t, err)
		short, err := contrast.Ratio("#000", "#FFF")
		assert.NoError(t, err)
		assert.Equal(t, long, short)
	})

	t.Run("Invalid Color", func(t *testing.T) {
		_, err := contrast.Ratio("#GGGGGG", "#FFFFFF")
		assert.Error(t, err)
		_, err = contrast.Ratio("red", "#FFFFFF")
		assert.Error(t, err)
	})
}

func TestIsHex(t *testing.T) {
	assert.True(t, contrast.IsHex("#1976d2"))
	assert.True(t, contrast.IsHex("#fff"))
	assert.False(t, contrast.IsHex("1976d2"))
	assert.False(t, contrast.IsHex("#12345"))
	assert.False(t, contrast.IsHex("rgb(0,0,0)"))
}
