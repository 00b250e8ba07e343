package devtrust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_IsDeviceSecure(t *testing.T) {
	tests := map[string]struct {
		props    Properties
		expected bool
	}{
		"Secure defaults": {
			props:    Properties{PropDebuggable: "0", PropSecure: "1"},
			expected: true,
		},
		"Debuggable": {
			props:    Properties{PropDebuggable: "1", PropSecure: "1"},
			expected: false,
		},
		"Debuggable as word": {
			props:    Properties{PropDebuggable: " TRUE "},
			expected: false,
		},
		"Insecure": {
			props:    Properties{PropDebuggable: "0", PropSecure: "0"},
			expected: false,
		},
		"Insecure as word": {
			props:    Properties{PropSecure: "false"},
			expected: false,
		},
		"Nothing set": {
			props:    Properties{},
			expected: true,
		},
		"Unrecognized values": {
			props:    Properties{PropDebuggable: "maybe", PropSecure: ""},
			expected: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewChecker(tc.props).IsDeviceSecure())
		})
	}
}

func TestGetprop_MissingBinary(t *testing.T) {
	src := Getprop{Path: "/nonexistent/getprop"}
	_, ok := src.Lookup(PropDebuggable)
	assert.False(t, ok)
	assert.True(t, NewChecker(src).IsDeviceSecure(), "Unreadable properties should not fail the check")
}
