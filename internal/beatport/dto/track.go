package dto

// Track is the catalog track document.
//
// Release is the embedded parent-release summary; the full release document
// (with UPC and track count) comes from a separate catalog/releases fetch.
type Track struct {
	ID                      int64    `json:"id"`
	Name                    string   `json:"name"`
	MixName                 string   `json:"mix_name"`
	Slug                    string   `json:"slug"`
	Artists                 []Artist `json:"artists"`
	Genre                   *Genre   `json:"genre"`
	SubGenre                *Genre   `json:"sub_genre"`
	Key                     *Key     `json:"key"`
	BPM                     int      `json:"bpm"`
	ISRC                    string   `json:"isrc"`
	LengthMs                int      `json:"length_ms"`
	Number                  int      `json:"number"`
	PublishDate             string   `json:"publish_date"`
	Release                 *Release `json:"release"`
	IsAvailableForStreaming bool     `json:"is_available_for_streaming"`
	PreOrder                bool     `json:"preorder"`
}

// Genre is a catalog genre reference.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Key is the musical key of a track.
type Key struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TrackPage is one page of a paginated track listing.
type TrackPage struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []Track `json:"results"`
}
