package beatport

import (
	"fmt"
	"strings"
)

// territoryRestrictedMarker is the substring the API uses in error bodies for
// region-locked releases. There is no structured error code for this case, so
// callers detect it through StatusError.TerritoryRestricted.
const territoryRestrictedMarker = "Territory Restricted."

// AuthError indicates the API rejected the request for authentication
// reasons: a 401 on a catalog call, or a failed step of the login flow.
// The host is expected to re-authenticate; the client never retries.
type AuthError struct {
	// Reason is a short description of which step failed.
	Reason string

	// Body is the raw response body, when one was available.
	Body string
}

func (e *AuthError) Error() string {
	if e.Body == "" {
		return "beatport: " + e.Reason
	}
	return fmt.Sprintf("beatport: %s: %s", e.Reason, e.Body)
}

// StatusError indicates a non-success HTTP status from the API. The raw
// response body is kept as the error detail, matching what the API returns
// for catalog failures.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("beatport: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("beatport: HTTP %d: %s", e.StatusCode, body)
}

// TerritoryRestricted reports whether the failure is the API's region-lock
// response for a release not licensed in the account's territory.
func (e *StatusError) TerritoryRestricted() bool {
	return strings.Contains(e.Body, territoryRestrictedMarker)
}

// DownloadNotAvailableError indicates the download endpoint returned 404:
// the track exists but has no downloadable file for the account.
type DownloadNotAvailableError struct {
	TrackID int64
}

func (e *DownloadNotAvailableError) Error() string {
	return fmt.Sprintf("beatport: track %d not available for download", e.TrackID)
}
