package gatekeeper

import (
	"net/url"
	"strings"

	"github.com/saylorsolutions/nativesec/internal/logging"
)

const requiredScheme = "https://"

// DefaultTrustedHosts is the allow-list used when none is configured.
var DefaultTrustedHosts = []string{
	"firebaseio.com",
	"*.firebaseio.com",
	"googleapis.com",
	"*.googleapis.com",
	"google.com",
	"*.google.com",
}

var log = logging.Tagged("network")

// Gatekeeper validates connection URLs against an allow-list of hosts.
// It's immutable after construction and safe for concurrent use.
type Gatekeeper struct {
	exact    map[string]struct{}
	suffixes []string
}

// New creates a Gatekeeper trusting the given hosts, or DefaultTrustedHosts if none are given.
// Every entry is validated with ParseHost.
func New(hosts ...string) (*Gatekeeper, error) {
	if len(hosts) == 0 {
		hosts = DefaultTrustedHosts
	}
	g := &Gatekeeper{exact: map[string]struct{}{}}
	for _, h := range hosts {
		host, err := ParseHost(h)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(host, "*.") {
			g.suffixes = append(g.suffixes, strings.TrimPrefix(host, "*"))
			continue
		}
		g.exact[host] = struct{}{}
	}
	return g, nil
}

// Default returns a Gatekeeper trusting DefaultTrustedHosts.
func Default() *Gatekeeper {
	g, err := New()
	if err != nil {
		panic("gatekeeper: invalid default trusted hosts: " + err.Error())
	}
	return g
}

// ValidateConnection returns true only if rawURL starts with "https://" and its host is trusted.
// An empty string is treated as absent and is refused.
func (g *Gatekeeper) ValidateConnection(rawURL string) bool {
	if len(rawURL) == 0 {
		return false
	}
	if !strings.HasPrefix(rawURL, requiredScheme) {
		log.WithField("url", rawURL).Warn("Connection is not HTTPS")
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		log.WithField("url", rawURL).WithError(err).Warn("Unable to parse connection URL")
		return false
	}
	host := normalizeHost(u.Hostname())
	if g.TrustsHost(host) {
		log.WithField("url", rawURL).Info("Connection to trusted domain")
		return true
	}
	log.WithField("url", rawURL).Warn("Unknown domain")
	return false
}

// TrustsHost reports whether a bare host name is on the allow-list.
func (g *Gatekeeper) TrustsHost(host string) bool {
	host = normalizeHost(host)
	if len(host) == 0 {
		return false
	}
	if _, ok := g.exact[host]; ok {
		return true
	}
	for _, suffix := range g.suffixes {
		if len(host) > len(suffix) && strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
