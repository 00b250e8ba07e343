// Package traffic frames payloads with a length prefix and random padding, then screens the frame so payload sizes and content aren't obvious on the wire.
// It's obfuscation only, and offers no confidentiality.
package traffic

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/nativesec/internal/logging"
	"github.com/saylorsolutions/nativesec/pkg/xor"
)

const (
	// Key is the single byte key of the positional screen applied to frames.
	Key byte = 0x5A

	lenPrefix  = 4
	minPadding = 16
	maxPadding = minPadding + 63
)

var (
	ErrShortFrame = errors.New("frame is too short")
	ErrTooLarge   = errors.New("payload is too large to frame")
)

var (
	log = logging.Tagged("crypto")
	key = []byte{Key}
)

// Obfuscate frames and screens data.
func Obfuscate(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	padLen, err := rand.Int(rand.Reader, big.NewInt(maxPadding-minPadding+1))
	if err != nil {
		return nil, fmt.Errorf("failed to pick padding length: %w", err)
	}
	pad := make([]byte, minPadding+int(padLen.Int64()))
	if _, err := rand.Read(pad); err != nil {
		return nil, fmt.Errorf("failed to read padding: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(lenPrefix + len(data) + len(pad))
	w, err := xor.NewPositionalWriter(&buf, key)
	if err != nil {
		return nil, err
	}
	size := uint32(len(data))
	if err := bin.Int(&size).Write(w, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if _, err := w.Write(pad); err != nil {
		return nil, err
	}
	log.Debugf("Framed %d bytes with %d bytes of padding", len(data), len(pad))
	return buf.Bytes(), nil
}

// Deobfuscate reverses Obfuscate and returns the original payload.
func Deobfuscate(frame []byte) ([]byte, error) {
	if len(frame) < lenPrefix {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(frame))
	}
	r, err := xor.NewPositionalReader(bytes.NewReader(frame), key)
	if err != nil {
		return nil, err
	}
	var size uint32
	if err := bin.Int(&size).Read(r, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: failed to read length prefix: %v", ErrShortFrame, err)
	}
	if uint64(len(frame)-lenPrefix) < uint64(size) {
		return nil, fmt.Errorf("%w: declared %d bytes, have %d", ErrShortFrame, size, len(frame)-lenPrefix)
	}
	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortFrame, err)
	}
	return out, nil
}
