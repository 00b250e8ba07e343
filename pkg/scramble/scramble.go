package scramble

import (
	"encoding/base64"
	"fmt"
	"math/bits"

	"github.com/saylorsolutions/nativesec/internal/logging"
	"github.com/saylorsolutions/nativesec/pkg/xor"
)

// DefaultKey is the built-in scramble key.
const DefaultKey = "BancoApp2024SecureKey!@#$%"

const rotation = 3

var (
	log             = logging.Tagged("crypto")
	defaultScramble = &Scrambler{key: []byte(DefaultKey)}
)

// Scrambler applies the scramble transform with a specific key.
// A Scrambler is immutable and safe for concurrent use.
type Scrambler struct {
	key []byte
}

// New creates a Scrambler with a custom key.
func New(key []byte) (*Scrambler, error) {
	if len(key) == 0 {
		return nil, xor.ErrEmptyKey
	}
	s := &Scrambler{key: make([]byte, len(key))}
	copy(s.key, key)
	return s, nil
}

// Default returns the Scrambler using DefaultKey.
func Default() *Scrambler {
	return defaultScramble
}

// Scramble scrambles data with DefaultKey.
func Scramble(data []byte) []byte {
	return defaultScramble.Scramble(data)
}

// Unscramble reverses Scramble.
func Unscramble(data []byte) []byte {
	return defaultScramble.Unscramble(data)
}

// Scramble returns a new scrambled copy of data. A nil input returns nil.
func (s *Scrambler) Scramble(data []byte) []byte {
	if data == nil {
		return nil
	}
	n := len(data)
	rotated := make([]byte, n)
	for i, b := range data {
		rotated[n-1-i] = bits.RotateLeft8(b, rotation)
	}
	out := s.keyStream(rotated)
	log.Debugf("Scrambled %d bytes", len(out))
	return out
}

// Unscramble returns a new unscrambled copy of data. A nil input returns nil.
func (s *Scrambler) Unscramble(data []byte) []byte {
	if data == nil {
		return nil
	}
	screened := s.keyStream(data)
	n := len(screened)
	out := make([]byte, n)
	for i, b := range screened {
		out[n-1-i] = bits.RotateLeft8(b, -rotation)
	}
	log.Debugf("Unscrambled %d bytes", len(out))
	return out
}

func (s *Scrambler) keyStream(data []byte) []byte {
	out, err := xor.ScreenPositional(data, s.key)
	if err != nil {
		// Scramblers are only built with non-empty keys.
		panic(fmt.Sprintf("scramble: %v", err))
	}
	return out
}

// ScrambleString scrambles the UTF-8 bytes of text and returns them base64 encoded without line wrapping.
func (s *Scrambler) ScrambleString(text string) string {
	return base64.StdEncoding.EncodeToString(s.Scramble([]byte(text)))
}

// UnscrambleString reverses ScrambleString.
func (s *Scrambler) UnscrambleString(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode scrambled text: %w", err)
	}
	return string(s.Unscramble(data)), nil
}

// ScrambleString uses the default Scrambler.
func ScrambleString(text string) string {
	return defaultScramble.ScrambleString(text)
}

// UnscrambleString uses the default Scrambler.
func UnscrambleString(encoded string) (string, error) {
	return defaultScramble.UnscrambleString(encoded)
}
