// Package bridge is the surface the host app calls into.
// Every entry point follows the host convention that absent input produces absent output, and logs each call.
package bridge

import (
	"github.com/saylorsolutions/nativesec/internal/logging"
	"github.com/saylorsolutions/nativesec/pkg/devtrust"
	"github.com/saylorsolutions/nativesec/pkg/gatekeeper"
	"github.com/saylorsolutions/nativesec/pkg/scramble"
	"github.com/saylorsolutions/nativesec/pkg/token"
)

var (
	cryptoLog  = logging.Tagged("crypto")
	networkLog = logging.Tagged("network")
)

// Bridge groups the host entry points. It's safe for concurrent use once constructed.
type Bridge struct {
	scrambler  *scramble.Scrambler
	checker    *devtrust.Checker
	gatekeeper *gatekeeper.Gatekeeper
	tokens     token.Generator
}

// Opt configures a Bridge in New.
type Opt func(b *Bridge) error

// WithScrambleKey replaces the built-in scramble key.
func WithScrambleKey(key []byte) Opt {
	return func(b *Bridge) error {
		s, err := scramble.New(key)
		if err != nil {
			return err
		}
		b.scrambler = s
		return nil
	}
}

// WithTrustedHosts replaces the default connection allow-list.
func WithTrustedHosts(hosts ...string) Opt {
	return func(b *Bridge) error {
		gk, err := gatekeeper.New(hosts...)
		if err != nil {
			return err
		}
		b.gatekeeper = gk
		return nil
	}
}

// WithPropertySource sets where device properties are read from.
func WithPropertySource(src devtrust.PropertySource) Opt {
	return func(b *Bridge) error {
		b.checker = devtrust.NewChecker(src)
		return nil
	}
}

// WithTokenGenerator replaces the security token generator.
func WithTokenGenerator(gen token.Generator) Opt {
	return func(b *Bridge) error {
		b.tokens = gen
		return nil
	}
}

// New creates a Bridge. Without options it uses the built-in key, the default allow-list, and getprop.
func New(opts ...Opt) (*Bridge, error) {
	b := &Bridge{
		scrambler:  scramble.Default(),
		checker:    devtrust.NewChecker(nil),
		gatekeeper: gatekeeper.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Encrypt scrambles data. This is obfuscation, not encryption, despite the name the host uses.
func (b *Bridge) Encrypt(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := b.scrambler.Scramble(data)
	cryptoLog.Infof("Encrypted %d bytes", len(out))
	return out
}

// Decrypt reverses Encrypt.
func (b *Bridge) Decrypt(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := b.scrambler.Unscramble(data)
	cryptoLog.Infof("Decrypted %d bytes", len(out))
	return out
}

// GenerateSecurityToken returns a timestamp based token. It's predictable and is not a credential.
func (b *Bridge) GenerateSecurityToken() string {
	return b.tokens.Generate()
}

// IsDeviceSecure reports the device trust heuristic verdict.
func (b *Bridge) IsDeviceSecure() bool {
	return b.checker.IsDeviceSecure()
}

// ValidateConnection returns false for a nil url.
func (b *Bridge) ValidateConnection(url *string) bool {
	if url == nil {
		networkLog.Warn("No connection URL given")
		return false
	}
	return b.gatekeeper.ValidateConnection(*url)
}

// ObfuscateEndpoint returns nil for a nil endpoint.
func (b *Bridge) ObfuscateEndpoint(endpoint *string) *string {
	if endpoint == nil {
		return nil
	}
	out := gatekeeper.ObfuscateEndpoint(*endpoint)
	return &out
}

// Gatekeeper exposes the allow-list, e.g. for guarding an http.Client.
func (b *Bridge) Gatekeeper() *gatekeeper.Gatekeeper {
	return b.gatekeeper
}
