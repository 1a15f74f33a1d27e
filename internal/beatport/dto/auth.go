package dto

import "strings"

// TokenResponse is the payload of the auth/o/token/ endpoint, returned by
// both the authorization-code exchange and the refresh grant.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int    `json:"expires_in"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	ErrorDescription string `json:"error_description"`
}

// Introspection is the payload of auth/o/introspect, describing the account
// behind the current access token.
type Introspection struct {
	Scope        string   `json:"scope"`
	Subscription string   `json:"subscription"`
	Features     []string `json:"feature"`
	Username     string   `json:"username"`
}

// HasScope reports whether the token carries the given scope.
// Scope is a space-separated list in the introspection payload.
func (i *Introspection) HasScope(scope string) bool {
	for _, s := range strings.Fields(i.Scope) {
		if s == scope {
			return true
		}
	}
	return false
}

// HasFeature reports whether the account has the given feature flag.
func (i *Introspection) HasFeature(feature string) bool {
	for _, f := range i.Features {
		if f == feature {
			return true
		}
	}
	return false
}
