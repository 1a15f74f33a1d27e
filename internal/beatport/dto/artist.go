package dto

// Artist is a catalog artist reference.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Label is a catalog label reference.
type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchResults is the payload of catalog/search.
type SearchResults struct {
	Tracks   []Track   `json:"tracks"`
	Releases []Release `json:"releases"`
	Artists  []Artist  `json:"artists"`
}
