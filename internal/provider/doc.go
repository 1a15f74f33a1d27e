// Package provider adapts the Beatport catalog API into the normalized
// records the download pipeline consumes.
//
// The adapter sits between the raw client in internal/beatport and the
// host: it resolves public URLs to catalog content (ParseLink), aggregates
// releases, playlists and charts into flat track sets, assembles per-track
// metadata with tagging fields, and maps playback qualities onto the stream
// formats the delivery endpoint serves.
//
// Aggregations return a request-scoped Cache holding the documents the
// listing already produced, so assembling each member track needs no
// additional catalog round trips.
package provider
