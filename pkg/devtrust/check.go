package devtrust

import (
	"strings"

	"github.com/saylorsolutions/nativesec/internal/logging"
)

const (
	PropDebuggable = "ro.debuggable"
	PropSecure     = "ro.secure"
)

var log = logging.Tagged("device")

// Checker evaluates device trust against a PropertySource.
type Checker struct {
	source PropertySource
}

// NewChecker creates a Checker. A nil source falls back to Getprop.
func NewChecker(source PropertySource) *Checker {
	if source == nil {
		source = Getprop{}
	}
	return &Checker{source: source}
}

// IsDeviceSecure returns false if the device reports itself as debuggable, or if secure mode is explicitly disabled.
// A property that can't be read is treated as not set, and doesn't fail the check by itself.
func (c *Checker) IsDeviceSecure() bool {
	if val, ok := c.source.Lookup(PropDebuggable); ok && isTruthy(val) {
		log.Warn("Device is debuggable")
		return false
	}
	if val, ok := c.source.Lookup(PropSecure); ok && isFalsy(val) {
		log.Warn("Device is not secure")
		return false
	}
	log.Info("Device security check passed")
	return true
}

// IsDeviceSecure checks the current device with getprop.
func IsDeviceSecure() bool {
	return NewChecker(nil).IsDeviceSecure()
}

func isTruthy(val string) bool {
	val = strings.TrimSpace(val)
	return val == "1" || strings.EqualFold(val, "true")
}

func isFalsy(val string) bool {
	val = strings.TrimSpace(val)
	return val == "0" || strings.EqualFold(val, "false")
}
