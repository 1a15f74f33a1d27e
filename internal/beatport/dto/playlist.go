package dto

// Playlist is a public or library playlist document. Unlike charts it has no
// dynamic artwork; ReleaseImages holds four fixed-size cover URLs taken from
// member releases.
type Playlist struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	UpdatedDate   string   `json:"updated_date"`
	TrackCount    int      `json:"track_count"`
	ReleaseImages []string `json:"release_images"`
}

// PlaylistItem is one entry of a playlist track listing. The track document
// is nested one level down, unlike chart listings which return tracks
// directly.
type PlaylistItem struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
	Track    Track `json:"track"`
}

// PlaylistItemPage is one page of a paginated playlist track listing.
type PlaylistItemPage struct {
	Count   int            `json:"count"`
	Next    *string        `json:"next"`
	Results []PlaylistItem `json:"results"`
}
