package passlock

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	return cipher.NewGCM(block)
}

func sealNonce(gcm cipher.AEAD, data Plaintext) (Encrypted, error) {
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, data, nil), nil
}

func openNonce(gcm cipher.AEAD, data []byte) (Plaintext, error) {
	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: payload is too short", ErrInvalidData)
	}
	nonce, cipherText := data[:nonceSize], data[nonceSize:]
	plain, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return plain, nil
}

// Seal encrypts data with a 32 byte key. The output is the random nonce followed by the cipher text.
func Seal(key Key, data Plaintext) (Encrypted, error) {
	if len(key) != int(AES256KeySize) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, AES256KeySize, len(key))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return sealNonce(gcm, data)
}

// Open reverses Seal. An error is returned if the payload was tampered with or the key is wrong.
func Open(key Key, data Encrypted) (Plaintext, error) {
	if len(key) != int(AES256KeySize) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, AES256KeySize, len(key))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return openNonce(gcm, data)
}

// Lock will encrypt the payload with the given Key, and append the given Salt to the payload.
// Exposure of the Salt doesn't weaken the Key, since the passphrase is also required to arrive at the same Key.
// Salt exposure is required to be able to derive the same Key from the same passphrase.
// However, tampering with the Salt or the payload would prevent Unlock from recovering the Plaintext payload.
func Lock(key Key, salt Salt, data Plaintext) (Encrypted, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed, err := sealNonce(gcm, data)
	if err != nil {
		return nil, err
	}
	return append(sealed, salt...), nil
}

// Unlock will decrypt the payload after stripping the Salt from the end of it.
// The Salt length is expected to match the Key length (which is enforced by KeyGenerator).
func Unlock(key Key, data Encrypted) (Plaintext, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(data) < len(key) {
		return nil, fmt.Errorf("%w: payload is too short to contain a salt", ErrInvalidData)
	}
	return openNonce(gcm, data[:len(data)-len(key)])
}
