package model

import "strings"

// TrackInfo is the normalized record for a single track, assembled from the
// vendor's track and release documents.
//
// TrackInfo carries everything the download pipeline needs:
//   - Display name (mix name already folded in) and artist list
//   - Album linkage for folder layout and tagging
//   - Encoding parameters for the requested quality tier
//   - A Tags block for the file tagger
//   - CoverURL rendered at the configured artwork size
//
// Error is a non-empty human-readable string when the track cannot be
// downloaded (region locked, not streamable, or still in preorder). Such
// tracks are reported and skipped rather than failing the whole set.
type TrackInfo struct {
	// ID is the vendor track ID.
	ID int64

	// Name is the track title, including the mix name in parentheses
	// when the vendor provides one, e.g. "Darkside (Extended Mix)".
	Name string

	// Album is the parent release title.
	Album string

	// AlbumID is the vendor release ID.
	AlbumID int64

	// Artists are the track artist names in vendor order.
	Artists []string

	// ArtistID is the vendor ID of the first artist.
	ArtistID int64

	// ReleaseYear is the four-digit publish year, 0 if unknown.
	ReleaseYear int

	// Duration is the track length in whole seconds.
	Duration int

	// Bitrate is the nominal bitrate in kbps for the requested tier.
	Bitrate int

	// BitDepth is the sample bit depth (16 for FLAC, 0 for lossy).
	BitDepth int

	// SampleRate is the sample rate in kHz.
	SampleRate float64

	// Codec is the encoding the download will arrive in.
	Codec Codec

	// CoverURL is the artwork URL rendered at the configured size.
	CoverURL string

	// Tags holds the metadata written into the downloaded file.
	Tags Tags

	// Error is non-empty when the track is not downloadable.
	Error string
}

// ArtistLine returns the artists joined for display and tagging.
func (t *TrackInfo) ArtistLine() string {
	return strings.Join(t.Artists, ", ")
}

// Downloadable reports whether the track can actually be fetched.
func (t *TrackInfo) Downloadable() bool {
	return t.Error == ""
}

// Tags is the metadata block written to downloaded files.
type Tags struct {
	// AlbumArtist is the first release artist, which may differ from the
	// track artists on compilations.
	AlbumArtist string

	// TrackNumber is 1-based. Inside playlist or chart aggregations it is
	// the position within the set rather than within the release.
	TrackNumber int

	// TotalTracks is the release track count, or the set size inside
	// playlist/chart aggregations.
	TotalTracks int

	// UPC is the release barcode.
	UPC string

	// ISRC is the track recording code.
	ISRC string

	// Genres holds the primary genre and, when present, the sub-genre.
	Genres []string

	// ReleaseDate is the vendor publish date, YYYY-MM-DD.
	ReleaseDate string

	// Copyright is the rendered copyright line, "© YEAR LABEL".
	Copyright string

	// Label is the release label name.
	Label string

	// BPM is the vendor-reported tempo, 0 if absent.
	BPM int

	// Key is the musical key name, empty if absent.
	Key string
}
