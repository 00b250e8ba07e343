package devtrust

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/magiconair/properties"
)

// PropertySource looks up system properties by name.
// The second return value is false when the property isn't set or couldn't be read.
type PropertySource interface {
	Lookup(name string) (string, bool)
}

// Properties is a static PropertySource.
type Properties map[string]string

func (p Properties) Lookup(name string) (string, bool) {
	val, ok := p[name]
	return val, ok
}

// Sources checks each PropertySource in order, returning the first hit.
type Sources []PropertySource

func (s Sources) Lookup(name string) (string, bool) {
	for _, src := range s {
		if src == nil {
			continue
		}
		if val, ok := src.Lookup(name); ok {
			return val, true
		}
	}
	return "", false
}

const defaultGetpropTimeout = 2 * time.Second

// Getprop reads properties with the platform getprop tool.
type Getprop struct {
	// Path to the getprop binary, "getprop" when empty.
	Path    string
	Timeout time.Duration
}

func (g Getprop) Lookup(name string) (string, bool) {
	path := g.Path
	if len(path) == 0 {
		path = "getprop"
	}
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = defaultGetpropTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, name).Output()
	if err != nil {
		log.WithError(err).Debugf("Unable to read property %s", name)
		return "", false
	}
	val := string(bytes.TrimSpace(out))
	if len(val) == 0 {
		return "", false
	}
	return val, true
}

// PropertyFile is a PropertySource loaded from an Android style prop file, like /default.prop or /system/build.prop.
type PropertyFile struct {
	props *properties.Properties
}

// LoadPropertyFile reads and parses the file at path.
func LoadPropertyFile(path string) (*PropertyFile, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to load property file '%s': %w", path, err)
	}
	return &PropertyFile{props: props}, nil
}

// ParsePropertyFile parses prop file content that's already in memory.
func ParsePropertyFile(content string) (*PropertyFile, error) {
	props, err := properties.LoadString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property content: %w", err)
	}
	return &PropertyFile{props: props}, nil
}

func (f *PropertyFile) Lookup(name string) (string, bool) {
	val, ok := f.props.Get(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(val), true
}
