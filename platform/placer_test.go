package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	x, y := Center(1920, 1080, 600, 400)
	assert.Equal(t, 660, x)
	assert.Equal(t, 340, y)

	x, y = Center(1365, 767, 600, 400)
	assert.Equal(t, 382, x)
	assert.Equal(t, 183, y)
}

func TestCenterSmallScreen(t *testing.T) {
	x, y := Center(500, 300, 600, 400)
	assert.Equal(t, -50, x)
	assert.Equal(t, -50, y)
}
