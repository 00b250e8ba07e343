package xor

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenKey(t *testing.T) {
	key, err := GenKey(26)
	require.NoError(t, err)
	assert.Len(t, key, 26)

	other, err := GenKey(26)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGenKey_Neg(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := GenKey(length)
		assert.ErrorIs(t, err, ErrKeyLength)
	}

	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenKey(10)
	assert.Error(t, err)
}
