package traffic

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/saylorsolutions/nativesec/pkg/xor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscate_RoundTrip(t *testing.T) {
	tests := map[string][]byte{
		"Empty":  {},
		"Short":  []byte("ping"),
		"Longer": bytes.Repeat([]byte("transfer;"), 100),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			frame, err := Obfuscate(data)
			require.NoError(t, err)
			padding := len(frame) - lenPrefix - len(data)
			assert.GreaterOrEqual(t, padding, minPadding)
			assert.LessOrEqual(t, padding, maxPadding)

			got, err := Deobfuscate(frame)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestObfuscate_Screened(t *testing.T) {
	frame, err := Obfuscate([]byte("abc"))
	require.NoError(t, err)
	// Length prefix 0x00000003 screened with 0x5A ^ position.
	assert.Equal(t, []byte{0x5a, 0x5b, 0x58, 0x03 ^ 0x5a ^ 0x03}, frame[:4])
	assert.Equal(t, []byte{'a' ^ 0x5a ^ 4, 'b' ^ 0x5a ^ 5, 'c' ^ 0x5a ^ 6}, frame[4:7])
}

func TestDeobfuscate_Neg(t *testing.T) {
	_, err := Deobfuscate(nil)
	assert.ErrorIs(t, err, ErrShortFrame)
	_, err = Deobfuscate([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortFrame)

	frame, err := Obfuscate([]byte("abc"))
	require.NoError(t, err)
	frame[0] ^= 0x01 // declared length now exceeds the frame
	_, err = Deobfuscate(frame)
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestObfuscate_MatchesOneShotScreen(t *testing.T) {
	data := []byte("balance?account=42")
	frame, err := Obfuscate(data)
	require.NoError(t, err)

	plain, err := xor.ScreenPositional(frame, []byte{Key})
	require.NoError(t, err)
	assert.Equal(t, uint32(len(data)), binary.BigEndian.Uint32(plain))
	assert.Equal(t, data, plain[lenPrefix:lenPrefix+len(data)])
}
