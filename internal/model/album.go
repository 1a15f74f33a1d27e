package model

// AlbumInfo is the normalized record for a release and its track listing.
//
// TrackIDs preserves the order the vendor returned the tracks in, after
// renumbering 1..N across pagination.
type AlbumInfo struct {
	// ID is the vendor release ID.
	ID int64

	// Name is the release title.
	Name string

	// Artist is the first release artist name.
	Artist string

	// ArtistID is the vendor ID of the first release artist.
	ArtistID int64

	// ReleaseYear is the four-digit publish year, 0 if unknown.
	ReleaseYear int

	// Duration is the summed track length in whole seconds.
	Duration int

	// UPC is the release barcode.
	UPC string

	// CoverURL is the artwork URL rendered at the configured size.
	CoverURL string

	// TrackIDs lists the member tracks in release order.
	TrackIDs []int64
}

// PlaylistInfo is the normalized record for a playlist, a DJ chart, or a
// library playlist. The three variants differ only in how creator, cover and
// year were derived; the shape is identical downstream.
type PlaylistInfo struct {
	// ID is the vendor playlist or chart identifier. Chart identifiers may
	// be composite genre-hype tokens rather than plain numbers.
	ID string

	// Name is the playlist title.
	Name string

	// Creator is the chart owner name, "Beatport" for ownerless charts, or
	// "User" for regular and library playlists.
	Creator string

	// ReleaseYear is derived from the chart change date or the playlist
	// updated date, 0 if unknown.
	ReleaseYear int

	// Duration is the summed track length in whole seconds.
	Duration int

	// CoverURL is the artwork URL rendered at the configured size.
	CoverURL string

	// TrackIDs lists the member tracks in set order.
	TrackIDs []int64
}

// CoverInfo points at a piece of cover art rendered at a requested size.
type CoverInfo struct {
	// URL is the rendered artwork URL.
	URL string

	// FileType is the image file extension without the dot, e.g. "jpg".
	FileType string
}

// DownloadInfo is a resolved, signed download for a single track.
type DownloadInfo struct {
	// URL is the signed CDN URL. It expires; fetch it promptly.
	URL string

	// Codec tells the pipeline whether the payload is AAC or FLAC.
	Codec Codec
}
