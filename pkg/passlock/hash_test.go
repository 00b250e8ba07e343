package passlock

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	got := HashPassword("password", []byte("salt"))
	assert.Equal(t, "157bdbde72e5b04b7c0fe5f2454969bff17be110f32c1f10d3d9a5fcfd451a92", hex.EncodeToString(got))
	assert.Equal(t, got, HashPassword("password", []byte("salt")))

	assert.NotEqual(t, got, HashPassword("password", []byte("pepper")))
	assert.NotEqual(t, got, HashPassword("Password", []byte("salt")))
	assert.Len(t, HashPassword("", nil), 32)
}
