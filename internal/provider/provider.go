package provider

import (
	"context"
	"strings"

	"github.com/handiism/beatport-downloader/internal/beatport"
)

// Subscription tiers and feature flags a usable account must carry.
// Streaming-only accounts authenticate fine but cannot fetch downloads.
const (
	scopeDJ = "user:dj"

	subscriptionLink    = "bp_link"
	subscriptionLinkPro = "bp_link_pro"
)

var requiredFeatures = []string{
	"feature:fulltrackplayback",
	"feature:cdnfulfillment",
	"feature:cdnfulfillment-link",
}

// Provider translates the raw Beatport API into the normalized records of
// internal/model: it resolves URLs to identifiers, aggregates paginated
// listings, assembles track/album/playlist records and maps quality tiers
// onto vendor encoding parameters.
//
// A Provider is a thin stateless shim over its Client; all calls are
// blocking and sequential.
type Provider struct {
	api       *beatport.Client
	coverSize int
}

// New creates a Provider on top of an authenticated client. coverSize is
// the edge length cover art URLs are rendered at (capped at 1400).
func New(api *beatport.Client, coverSize int) *Provider {
	return &Provider{api: api, coverSize: coverSize}
}

// Client returns the underlying API client.
func (p *Provider) Client() *beatport.Client {
	return p.api
}

// Login authenticates with account credentials and validates that the
// account can actually fetch downloads: the token must carry the user:dj
// scope, an active LINK or LINK PRO subscription, and the full-playback and
// CDN-fulfillment feature flags. Validation failures come back as *Error
// with a description of what is missing.
func (p *Provider) Login(ctx context.Context, username, password string) (beatport.Session, error) {
	session, err := p.api.Authenticate(ctx, username, password)
	if err != nil {
		return beatport.Session{}, err
	}

	if err := p.ValidateAccount(ctx); err != nil {
		return beatport.Session{}, err
	}
	return session, nil
}

// ValidateAccount introspects the current token and checks scope,
// subscription tier and feature flags.
func (p *Provider) ValidateAccount(ctx context.Context) error {
	account, err := p.api.Introspect(ctx)
	if err != nil {
		return err
	}

	if !account.HasScope(scopeDJ) {
		return Errorf("account does not have DJ/streaming permissions")
	}

	switch account.Subscription {
	case "":
		return Errorf("no active subscription found")
	case subscriptionLink, subscriptionLinkPro:
	default:
		return Errorf("account does not have a LINK or LINK PRO subscription")
	}

	var missing []string
	for _, feature := range requiredFeatures {
		if !account.HasFeature(feature) {
			missing = append(missing, feature)
		}
	}
	if len(missing) > 0 {
		return Errorf("account missing required features: %s", strings.Join(missing, ", "))
	}
	return nil
}
