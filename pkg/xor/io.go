package xor

import (
	"bytes"
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and reset the offset position within the key to its initial value.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and reset the offset position within the key to its initial value.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.screen(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a new Reader that will perform XOR operations on all bytes read, using the provided key, starting at offset.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{source: r, scr: scr}, nil
}

// NewPositionalReader works like NewReader, but each byte is additionally XORed with the low byte of its position in the stream.
func NewPositionalReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newPositionalScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{source: r, scr: scr}, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
}

func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{target: target, scr: scr}, nil
}

// NewPositionalWriter works like NewWriter, but each byte is additionally XORed with the low byte of its position in the stream.
func NewPositionalWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newPositionalScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{target: target, scr: scr}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	var buf bytes.Buffer
	buf.Grow(len(in))
	for i := 0; i < len(in); i++ {
		buf.WriteByte(w.scr.screen(in[i]))
	}
	return w.target.Write(buf.Bytes())
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}

// Screen applies the key to data in one shot and returns a new slice.
// Screening the output again with the same key and offset recovers the input.
func Screen(data []byte, key []byte, offset ...int) ([]byte, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return screenAll(scr, data), nil
}

// ScreenPositional is the one-shot form of NewPositionalWriter.
func ScreenPositional(data []byte, key []byte, offset ...int) ([]byte, error) {
	scr, err := newPositionalScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return screenAll(scr, data), nil
}

func screenAll(scr *xorScreen, data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = scr.screen(b)
	}
	return out
}
