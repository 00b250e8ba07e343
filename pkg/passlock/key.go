package passlock

import (
	"crypto/rand"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 17
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	MaxRelBlockSize              uint8  = 32
	MaxCpuCost                   uint8  = 16
	AES256KeySize                uint8  = 256 / 8
	AES128KeySize                uint8  = 128 / 8

	// maxScryptMemory bounds the 128*r*N bytes scrypt allocates for one derivation.
	maxScryptMemory uint64 = 1 << 30
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidData     = errors.New("unable to use input data")
	ErrInvalidKeySize  = errors.New("invalid key size")
)

type (
	// Key is an AES key that can be used to encrypt or decrypt an encrypted payload.
	Key []byte
	// Salt is a slice of secure random bytes that is used with scrypt to generate a Key from a Passphrase.
	Salt []byte
	// Passphrase is a human-readable string used to generate a Key.
	Passphrase []byte
	// Encrypted is an encrypted payload.
	Encrypted []byte
	// Plaintext is an unencrypted payload.
	Plaintext []byte
)

// KeyGenerator derives AES keys from a Passphrase with scrypt.
// Its settings travel with passphrase locked payloads, so they're bounded to keep a crafted header from exhausting memory.
type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	aesKeySize        uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
		bin.Byte(&g.aesKeySize),
	)
}

// GeneratorOpt changes a KeyGenerator setting. Settings are checked together once all options are applied.
type GeneratorOpt = func(*KeyGenerator) error

func SetAES256KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES256KeySize
		return nil
	}
}

func SetAES128KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES128KeySize
		return nil
	}
}

// SetLongDelayIterations is suited to infrequent derivation, or keys that are cached for a long time. It's the default.
func SetLongDelayIterations() GeneratorOpt {
	return SetIterations(DefaultLargeIterations)
}

// SetShortDelayIterations is suited to frequent, interactive derivation. Pair it with longer passphrases.
func SetShortDelayIterations() GeneratorOpt {
	return SetIterations(DefaultInteractiveIterations)
}

// SetIterations sets the scrypt cost parameter N, which must be a power of 2 no larger than DefaultLargeIterations.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the scrypt parallelism factor p, between DefaultCpuCost and MaxCpuCost.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the scrypt block size r, between DefaultRelBlockSize and MaxRelBlockSize.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.relativeBlockSize = size
		return nil
	}
}

func (g *KeyGenerator) validate() error {
	n, r := g.iterations, uint64(g.relativeBlockSize)
	switch {
	case n <= 1 || n&(n-1) != 0:
		return fmt.Errorf("%w: iterations %d is not a power of 2", ErrInvalidData, n)
	case n > DefaultLargeIterations:
		return fmt.Errorf("%w: iterations %d exceeds %d", ErrInvalidData, n, DefaultLargeIterations)
	case g.cpuCost < DefaultCpuCost || g.cpuCost > MaxCpuCost:
		return fmt.Errorf("%w: cpu cost %d is outside [%d, %d]", ErrInvalidData, g.cpuCost, DefaultCpuCost, MaxCpuCost)
	case g.relativeBlockSize < DefaultRelBlockSize || g.relativeBlockSize > MaxRelBlockSize:
		return fmt.Errorf("%w: relative block size %d is outside [%d, %d]", ErrInvalidData, r, DefaultRelBlockSize, MaxRelBlockSize)
	case 128*r*n > maxScryptMemory:
		return fmt.Errorf("%w: block size %d with %d iterations needs more than %d bytes", ErrInvalidData, r, n, maxScryptMemory)
	case g.aesKeySize != AES256KeySize && g.aesKeySize != AES128KeySize:
		return fmt.Errorf("%w: %w %d", ErrInvalidData, ErrInvalidKeySize, g.aesKeySize)
	}
	return nil
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator generates a key for AES256KeySize using DefaultLargeIterations.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultLargeIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		aesKeySize:        AES256KeySize,
	}
	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	if err := gen.validate(); err != nil {
		return nil, err
	}
	return gen, nil
}

func (g *KeyGenerator) derive(pass Passphrase, salt Salt) (Key, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	key, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), int(g.aesKeySize))
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// GenerateKey will generate an AES key and a fresh salt from the passphrase.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (Key, Salt, error) {
	if len(pass) == 0 {
		return nil, nil, ErrEmptyPassPhrase
	}
	salt := make(Salt, g.aesKeySize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	key, err := g.derive(pass, salt)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

// DeriveKey will recover a key with the salt in the payload and the given passphrase.
// This doesn't ensure that the given passphrase is the *correct* passphrase used to encrypt the payload.
func (g *KeyGenerator) DeriveKey(pass Passphrase, data Encrypted) (Key, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	salt, err := g.DeriveSalt(data)
	if err != nil {
		return nil, err
	}
	return g.derive(pass, salt)
}

// DeriveSalt returns the salt appended to an encrypted payload by Lock.
func (g *KeyGenerator) DeriveSalt(data Encrypted) (Salt, error) {
	size := int(g.aesKeySize)
	if len(data) <= size {
		return nil, fmt.Errorf("%w: data is not long enough to contain a valid salt", ErrInvalidData)
	}
	return Salt(data[len(data)-size:]), nil
}

// GenerateRandomKey creates a random AES-256 Key for use with Seal and Open.
func GenerateRandomKey() (Key, error) {
	key := make(Key, AES256KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to read random key bytes: %w", err)
	}
	return key, nil
}
