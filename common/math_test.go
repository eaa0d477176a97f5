package common

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, c, Fade(c, 1))
	assert.Equal(t, color.RGBA{}, Fade(c, 0))
	assert.Equal(t, c, Fade(c, 3), "clamped")
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, Fade(c, 0.5))
}

func TestScaleKeepsAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, Scale(c, 0.5))
	assert.Equal(t, color.RGBA{A: 255}, Scale(c, -1), "clamped")
	assert.Equal(t, c, Scale(c, 2))
}
