package dto

// Release is the catalog release document. The same shape appears embedded
// in track documents, where only ID, Name, Image and Label are populated.
type Release struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Artists     []Artist `json:"artists"`
	Image       *Image   `json:"image"`
	Label       *Label   `json:"label"`
	UPC         string   `json:"upc"`
	TrackCount  int      `json:"track_count"`
	PublishDate string   `json:"publish_date"`
}

// ReleasePage is one page of a paginated release listing.
type ReleasePage struct {
	Count   int       `json:"count"`
	Next    *string   `json:"next"`
	Results []Release `json:"results"`
}

// Image is a catalog artwork reference. DynamicURI contains {w} and {h}
// placeholders that render the image at arbitrary sizes; URI is a fixed
// resolution fallback.
type Image struct {
	ID         int64  `json:"id"`
	URI        string `json:"uri"`
	DynamicURI string `json:"dynamic_uri"`
}
