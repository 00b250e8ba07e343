package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewXorScreenNeg(t *testing.T) {
	_, err := newXorScreen(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newXorScreen([]byte{0}, -1)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, 2)
	assert.Error(t, err)
	_, err = newPositionalScreen(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestPositionalScreen(t *testing.T) {
	scr, err := newPositionalScreen([]byte{0x10, 0x20})
	assert.NoError(t, err)
	assert.Equal(t, byte(0x10), scr.screen(0))
	assert.Equal(t, byte(0x21), scr.screen(0))
	assert.Equal(t, byte(0x12), scr.screen(0))

	scr.reset()
	assert.Equal(t, byte(0x10), scr.screen(0))
}

func TestPositionalScreen_Wrap(t *testing.T) {
	scr, err := newPositionalScreen([]byte{0})
	assert.NoError(t, err)
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), scr.screen(0))
	}
	assert.Equal(t, byte(0), scr.screen(0), "Position byte should wrap after 256 bytes")
}
