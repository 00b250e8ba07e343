package gatekeeper

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	HeaderSecurityToken = "X-Security-Token"
	HeaderAppVersion    = "X-App-Version"
)

// ErrBlocked is returned by a guarded transport when a request targets an untrusted or non-https URL.
var ErrBlocked = errors.New("insecure connection blocked")

// GuardOpt configures a guarded http.RoundTripper.
type GuardOpt func(g *guard)

// WithToken adds the result of token as the X-Security-Token header of every allowed request.
func WithToken(token func() string) GuardOpt {
	return func(g *guard) {
		g.token = token
	}
}

// WithAppVersion adds the X-App-Version header to every allowed request.
func WithAppVersion(version string) GuardOpt {
	return func(g *guard) {
		g.version = version
	}
}

type guard struct {
	gk      *Gatekeeper
	next    http.RoundTripper
	token   func() string
	version string
}

// Guard wraps next so that only requests passing ValidateConnection are sent.
// If next is nil, http.DefaultTransport is used.
func (g *Gatekeeper) Guard(next http.RoundTripper, opts ...GuardOpt) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	gd := &guard{gk: g, next: next}
	for _, opt := range opts {
		opt(gd)
	}
	return gd
}

func (g *guard) RoundTrip(req *http.Request) (*http.Response, error) {
	target := req.URL.String()
	if !g.gk.ValidateConnection(target) {
		log.WithField("url", target).Warn("Blocked insecure connection")
		return nil, fmt.Errorf("%w: %s", ErrBlocked, target)
	}
	// A RoundTripper must not modify the caller's request.
	req = req.Clone(req.Context())
	if g.token != nil {
		req.Header.Set(HeaderSecurityToken, g.token())
	}
	if len(g.version) > 0 {
		req.Header.Set(HeaderAppVersion, g.version)
	}
	return g.next.RoundTrip(req)
}
