package gatekeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHost(t *testing.T) {
	tests := map[string]struct {
		given     string
		expected  string
		expectErr bool
	}{
		"Plain URL": {
			given:     "https://google.com/something/here",
			expectErr: true,
		},
		"Just host": {
			given:    "google.com",
			expected: "google.com",
		},
		"Mixed case with trailing dot": {
			given:    " Maps.GoogleAPIs.com. ",
			expected: "maps.googleapis.com",
		},
		"Host and port": {
			given:    "google.com:443",
			expected: "google.com",
		},
		"Path only": {
			given:     "/something/here",
			expectErr: true,
		},
		"Host with path": {
			given:     "google.com/something",
			expectErr: true,
		},
		"Wildcard host": {
			given:    "*.google.com",
			expected: "*.google.com",
		},
		"User info": {
			given:     "user@google.com",
			expectErr: true,
		},
		"Double scheme": {
			given:     "https://https://google.com",
			expectErr: true,
		},
		"Empty host": {
			given:     "",
			expectErr: true,
		},
		"Malformed with missing scheme": {
			given:     "://google.com/something/here",
			expectErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			host, err := ParseHost(tc.given)
			if tc.expectErr {
				assert.Error(t, err)
				t.Log(err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, host)
		})
	}
}
