// Package http provides the plain HTTP client used against the delivery
// CDN, separate from the authenticated API client in internal/beatport.
// It covers streaming file downloads with progress reporting, HEAD-based
// size checks and small in-memory fetches for cover art.
package http
