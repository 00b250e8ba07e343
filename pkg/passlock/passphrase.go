package passlock

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// LockWithPassphrase generates a key from pass, encrypts data, and prefixes the generator settings so UnlockWithPassphrase can recreate the KeyGenerator.
func (g *KeyGenerator) LockWithPassphrase(pass Passphrase, data Plaintext) (Encrypted, error) {
	key, salt, err := g.GenerateKey(pass)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := g.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("failed to write generator header: %w", err)
	}
	locked, err := Lock(key, salt, data)
	if err != nil {
		return nil, err
	}
	buf.Write(locked)
	return buf.Bytes(), nil
}

// UnlockWithPassphrase reverses LockWithPassphrase.
func UnlockWithPassphrase(pass Passphrase, data Encrypted) (Plaintext, error) {
	gen := new(KeyGenerator)
	r := bytes.NewReader(data)
	if err := gen.mapper().Read(r, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: failed to read generator header: %v", ErrInvalidData, err)
	}
	if err := gen.validate(); err != nil {
		return nil, err
	}
	payload := Encrypted(data[len(data)-r.Len():])
	key, err := gen.DeriveKey(pass, payload)
	if err != nil {
		return nil, err
	}
	return Unlock(key, payload)
}
