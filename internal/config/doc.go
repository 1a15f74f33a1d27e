// Package config handles application settings and session persistence.
//
// Settings live in a JSON file; a missing file silently yields defaults so
// the tools work out of the box. The Beatport token triple is persisted
// separately (SaveSession/LoadSession) so repeated runs skip the credential
// login while the refresh token is still good. Account credentials
// themselves never enter the settings file; the commands read them from the
// environment.
package config
