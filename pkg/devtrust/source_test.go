package devtrust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buildProp = `# begin build properties
ro.build.type=userdebug
ro.debuggable=1
ro.secure = 1
`

func TestParsePropertyFile(t *testing.T) {
	props, err := ParsePropertyFile(buildProp)
	require.NoError(t, err)

	val, ok := props.Lookup(PropDebuggable)
	assert.True(t, ok)
	assert.Equal(t, "1", val)

	val, ok = props.Lookup(PropSecure)
	assert.True(t, ok)
	assert.Equal(t, "1", val)

	_, ok = props.Lookup("ro.missing")
	assert.False(t, ok)

	assert.False(t, NewChecker(props).IsDeviceSecure())
}

func TestLoadPropertyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.prop")
	require.NoError(t, os.WriteFile(path, []byte("ro.secure=1\nro.debuggable=0\n"), 0600))

	props, err := LoadPropertyFile(path)
	require.NoError(t, err)
	assert.True(t, NewChecker(props).IsDeviceSecure())

	_, err = LoadPropertyFile(filepath.Join(t.TempDir(), "missing.prop"))
	assert.Error(t, err)
}

func TestSources(t *testing.T) {
	src := Sources{
		nil,
		Properties{PropSecure: "1"},
		Properties{PropSecure: "0", PropDebuggable: "0"},
	}
	val, ok := src.Lookup(PropSecure)
	assert.True(t, ok)
	assert.Equal(t, "1", val, "First source should win")

	val, ok = src.Lookup(PropDebuggable)
	assert.True(t, ok)
	assert.Equal(t, "0", val)

	_, ok = src.Lookup("ro.missing")
	assert.False(t, ok)
}
