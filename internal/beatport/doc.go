// Package beatport wraps the Beatport v4 REST API.
//
// The Client covers three concerns:
//
//  1. Authentication: the credential login flow (login, authorization code,
//     token exchange), token refresh, and an explicit Session token triple
//     the host persists between runs.
//  2. Catalog access: typed GET wrappers for tracks, releases, playlists,
//     charts, genre-hype charts, artists, labels, search, library playlists
//     and the signed download endpoint, with fixed 100-item pagination.
//  3. Debug tracing: an optional plain-text sink that records every request
//     and response with credential fields redacted.
//
// # Errors
//
// Failures are typed rather than retried:
//
//	*AuthError                 - 401, or a failed login-flow step
//	*StatusError               - any other non-success status, raw body kept
//	*DownloadNotAvailableError - 404 from the download endpoint
//
// StatusError.TerritoryRestricted reports the API's region-lock response,
// which the API only exposes as an error-body substring.
//
// # Basic usage
//
//	client := beatport.NewClient()
//	session, err := client.Authenticate(ctx, username, password)
//	// persist session ...
//	page, err := client.ChartTracks(ctx, "genre-12-hype-3", 1)
package beatport
