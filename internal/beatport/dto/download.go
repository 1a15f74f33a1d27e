package dto

// Download is the payload of catalog/tracks/{id}/download/. Location is a
// signed, short-lived CDN URL.
type Download struct {
	Location string `json:"location"`
	Quality  string `json:"quality"`
}
