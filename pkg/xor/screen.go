package xor

import (
	"errors"
	"fmt"
)

type xorScreen struct {
	key  []byte
	init int
	cur  int

	// positional screens also mix in the low byte of the absolute stream position.
	positional bool
	pos        int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func newPositionalScreen(key []byte, offset ...int) (*xorScreen, error) {
	s, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	s.positional = true
	return s, nil
}

// ErrEmptyKey is returned when a screen is requested with a zero-length key.
var ErrEmptyKey = errors.New("cannot use empty key")

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	if s.positional {
		b ^= byte(s.pos & 0xFF)
		s.pos++
	}
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

func (s *xorScreen) reset() {
	s.cur = s.init
	s.pos = 0
}
