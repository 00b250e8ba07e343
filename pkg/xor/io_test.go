package xor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	data := "A string with some text"
	key := []byte{0xde, 0xad, 0xbe, 0xef}
	var output strings.Builder

	in, err := NewReader(strings.NewReader(data), key)
	assert.NoError(t, err)
	assert.NotNil(t, in)

	out, err := NewWriter(&output, key)
	assert.NoError(t, err)
	assert.NotNil(t, out)

	expectedLen := int64(len(data))
	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, expectedLen, n)
	assert.Equal(t, "A string with some text", output.String())
}

func TestPositionalReadWrite(t *testing.T) {
	data := strings.Repeat("positional screening wraps at 256 bytes. ", 20)
	key := []byte("BancoApp")
	var output strings.Builder

	in, err := NewPositionalReader(strings.NewReader(data), key, 3)
	require.NoError(t, err)
	out, err := NewPositionalWriter(&output, key, 3)
	require.NoError(t, err)

	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, output.String())
}

func TestWriter_Reset(t *testing.T) {
	var (
		outA bytes.Buffer
		outB bytes.Buffer
		in   = []byte{0x0, 0x1}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	w, err := NewWriter(&outA, key, 1)
	assert.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outA.Bytes())

	w.Reset(&outB)
	n, err = w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outB.Bytes())
}

func TestReader_Reset(t *testing.T) {
	var (
		outA = make([]byte, 2)
		outB = make([]byte, 2)
		in   = []byte{0x0, 0x1}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	r, err := NewPositionalReader(bytes.NewReader(in), key, 1)
	assert.NoError(t, err)
	n, err := r.Read(outA)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x1}, outA)

	r.Reset(bytes.NewReader(in))
	n, err = r.Read(outB)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x1}, outB)
}

func TestScreen(t *testing.T) {
	tests := map[string]struct {
		data     []byte
		key      []byte
		expected []byte
	}{
		"Nil data": {
			key: []byte{0x5a},
		},
		"Empty data": {
			data:     []byte{},
			key:      []byte{0x5a},
			expected: []byte{},
		},
		"Single byte key": {
			data:     []byte("ab"),
			key:      []byte{0x5a},
			expected: []byte{'a' ^ 0x5a, 'b' ^ 0x5a},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Screen(tc.data, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			back, err := Screen(got, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.data, back)
		})
	}
}

func TestScreenPositional(t *testing.T) {
	got, err := ScreenPositional([]byte{0, 0, 0}, []byte{0x5a})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x5a, 0x5b, 0x58}, got)

	_, err = ScreenPositional([]byte{0}, nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}
