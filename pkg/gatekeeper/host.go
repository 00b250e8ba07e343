package gatekeeper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var leadingScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ParseHost is used to parse and validate an allow-list entry.
// It accepts a bare host name, optionally with a port (which is dropped) or a leading "*." wildcard.
// The returned name is lower case without a trailing dot.
func ParseHost(given string) (string, error) {
	orig := given
	given = strings.TrimSpace(given)
	if len(given) == 0 {
		return "", fmt.Errorf("empty host name given")
	}
	wildcard := false
	if strings.HasPrefix(given, "*.") {
		wildcard = true
		given = strings.TrimPrefix(given, "*.")
	}
	if leadingScheme.MatchString(given) {
		return "", fmt.Errorf("expected host name without scheme: '%s'", orig)
	}
	u, err := url.ParseRequestURI("https://" + given)
	if err != nil {
		return "", err
	}
	if len(u.Host) == 0 || (len(u.Path) > 0 && u.Path != "/") {
		return "", fmt.Errorf("paths are not valid hostnames: '%s'", orig)
	}
	if u.User != nil {
		return "", fmt.Errorf("user info is not valid in a hostname: '%s'", orig)
	}
	host := normalizeHost(u.Hostname())
	if len(host) == 0 {
		return "", fmt.Errorf("invalid hostname: '%s'", orig)
	}
	if wildcard {
		return "*." + host, nil
	}
	return host, nil
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
