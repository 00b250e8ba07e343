package passlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	const password = "password"
	const data = "How wonderful life is while you're in the world"
	dataBytes := []byte(data)

	gen, err := NewKeyGenerator(SetShortDelayIterations())
	assert.NoError(t, err)
	key, salt, err := gen.GenerateKey([]byte(password))
	assert.NoError(t, err)

	encrypted, err := Lock(key, salt, dataBytes)
	assert.NoError(t, err)
	assert.NotEqual(t, dataBytes, encrypted)

	key2, err := gen.DeriveKey([]byte(password), encrypted)
	assert.NoError(t, err)
	assert.Equal(t, key, key2)

	unencrypted, err := Unlock(key2, encrypted)
	assert.NoError(t, err)
	assert.Equal(t, data, string(unencrypted))

	_, err = Unlock(key2, encrypted[:10])
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSealOpen(t *testing.T) {
	key, err := GenerateRandomKey()
	require.NoError(t, err)
	assert.Len(t, key, int(AES256KeySize))

	sealed, err := Seal(key, []byte("account: 12345"))
	require.NoError(t, err)

	opened, err := Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, "account: 12345", string(opened))

	empty, err := Seal(key, nil)
	require.NoError(t, err)
	opened, err = Open(key, empty)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestSealOpen_Neg(t *testing.T) {
	key, err := GenerateRandomKey()
	require.NoError(t, err)
	other, err := GenerateRandomKey()
	require.NoError(t, err)

	_, err = Seal(key[:16], []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
	_, err = Open(key[:16], []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	sealed, err := Seal(key, []byte("data"))
	require.NoError(t, err)

	_, err = Open(other, sealed)
	assert.ErrorIs(t, err, ErrInvalidData, "Wrong key should fail authentication")

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0x1
	_, err = Open(key, tampered)
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = Open(key, sealed[:11])
	assert.ErrorIs(t, err, ErrInvalidData, "Input shorter than a nonce should be rejected")
}
