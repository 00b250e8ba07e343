package gatekeeper

import (
	"io"

	"github.com/saylorsolutions/nativesec/pkg/xor"
)

// EndpointKey is the single byte XOR key applied by ObfuscateEndpoint.
const EndpointKey byte = 0x5A

var endpointKey = []byte{EndpointKey}

// ObfuscateEndpoint XORs every byte of text with EndpointKey.
// Applying it twice returns the original text.
func ObfuscateEndpoint(text string) string {
	out, err := xor.Screen([]byte(text), endpointKey)
	if err != nil {
		panic("gatekeeper: " + err.Error())
	}
	return string(out)
}

// NewEndpointWriter obfuscates everything written to it before passing it on to target.
func NewEndpointWriter(target io.Writer) xor.Writer {
	w, err := xor.NewWriter(target, endpointKey)
	if err != nil {
		panic("gatekeeper: " + err.Error())
	}
	return w
}

// NewEndpointReader reveals everything read from source.
func NewEndpointReader(source io.Reader) xor.Reader {
	r, err := xor.NewReader(source, endpointKey)
	if err != nil {
		panic("gatekeeper: " + err.Error())
	}
	return r
}
