package provider

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/handiism/beatport-downloader/internal/model"
)

const testTrackJSON = `{
	"id": 10844269,
	"name": "Darkside",
	"mix_name": "Extended Mix",
	"artists": [{"id": 7, "name": "Amelie Lens"}, {"id": 8, "name": "Regal"}],
	"genre": {"id": 6, "name": "Techno"},
	"sub_genre": {"id": 11, "name": "Peak Time"},
	"key": {"id": 1, "name": "A Minor"},
	"bpm": 132,
	"isrc": "GBKQU2479001",
	"length_ms": 421000,
	"number": 3,
	"publish_date": "2024-05-17",
	"release": {
		"id": 4721102,
		"name": "Darkside EP",
		"image": {"id": 1, "dynamic_uri": "https://geo-media.beatport.com/image_size/{w}x{h}/cover.jpg"}
	},
	"is_available_for_streaming": true,
	"preorder": false
}`

const testReleaseJSON = `{
	"id": 4721102,
	"name": "Darkside EP",
	"artists": [{"id": 7, "name": "Amelie Lens"}],
	"image": {"id": 1, "dynamic_uri": "https://geo-media.beatport.com/image_size/{w}x{h}/cover.jpg"},
	"label": {"id": 5, "name": "Drumcode"},
	"upc": "0075678645",
	"track_count": 4,
	"publish_date": "2024-05-17"
}`

func catalogHandler(t *testing.T, releaseStatus int, releaseBody string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/tracks/10844269", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testTrackJSON))
	})
	mux.HandleFunc("/catalog/releases/4721102", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(releaseStatus)
		w.Write([]byte(releaseBody))
	})
	return mux
}

func TestTrackInfo(t *testing.T) {
	p := newTestProvider(t, catalogHandler(t, http.StatusOK, testReleaseJSON))

	info, err := p.TrackInfo(context.Background(), 10844269, model.QualityHigh, nil)
	if err != nil {
		t.Fatalf("TrackInfo() error: %v", err)
	}

	if info.Name != "Darkside (Extended Mix)" {
		t.Errorf("Name = %q, want mix name folded in", info.Name)
	}
	if info.Album != "Darkside EP" || info.AlbumID != 4721102 {
		t.Errorf("Album = %q/%d, want Darkside EP/4721102", info.Album, info.AlbumID)
	}
	if got := info.ArtistLine(); got != "Amelie Lens, Regal" {
		t.Errorf("ArtistLine() = %q", got)
	}
	if info.ReleaseYear != 2024 {
		t.Errorf("ReleaseYear = %d, want 2024", info.ReleaseYear)
	}
	if info.Duration != 421 {
		t.Errorf("Duration = %d, want 421", info.Duration)
	}
	if info.Bitrate != 256 || info.Codec != model.CodecAAC {
		t.Errorf("encoding = %d kbps %s, want 256 kbps AAC", info.Bitrate, info.Codec)
	}
	if !strings.Contains(info.CoverURL, "800x800") {
		t.Errorf("CoverURL = %q, want 800x800 rendering", info.CoverURL)
	}
	if !info.Downloadable() {
		t.Errorf("Downloadable() = false, Error = %q", info.Error)
	}

	tags := info.Tags
	if tags.TrackNumber != 3 || tags.TotalTracks != 4 {
		t.Errorf("numbering = %d/%d, want 3/4", tags.TrackNumber, tags.TotalTracks)
	}
	if tags.AlbumArtist != "Amelie Lens" {
		t.Errorf("AlbumArtist = %q", tags.AlbumArtist)
	}
	if tags.Copyright != "© 2024 Drumcode" {
		t.Errorf("Copyright = %q, want © 2024 Drumcode", tags.Copyright)
	}
	if len(tags.Genres) != 2 || tags.Genres[0] != "Techno" || tags.Genres[1] != "Peak Time" {
		t.Errorf("Genres = %v", tags.Genres)
	}
	if tags.BPM != 132 || tags.Key != "A Minor" {
		t.Errorf("BPM/Key = %d/%q", tags.BPM, tags.Key)
	}
	if tags.UPC != "0075678645" || tags.ISRC != "GBKQU2479001" {
		t.Errorf("UPC/ISRC = %q/%q", tags.UPC, tags.ISRC)
	}
}

func TestTrackInfoRegionLocked(t *testing.T) {
	body := `{"detail": "Territory Restricted."}`
	p := newTestProvider(t, catalogHandler(t, http.StatusForbidden, body))

	info, err := p.TrackInfo(context.Background(), 10844269, model.QualityLossless, nil)
	if err != nil {
		t.Fatalf("TrackInfo() error: %v, want region lock in record", err)
	}
	if info.Downloadable() {
		t.Fatal("Downloadable() = true for region locked release")
	}
	if !strings.Contains(info.Error, "region locked") {
		t.Errorf("Error = %q, want region lock message", info.Error)
	}
	// Metadata still assembles from the embedded release summary.
	if info.Album != "Darkside EP" {
		t.Errorf("Album = %q, want embedded summary name", info.Album)
	}
}

func TestTrackInfoReleaseFailurePropagates(t *testing.T) {
	p := newTestProvider(t, catalogHandler(t, http.StatusBadGateway, "upstream down"))

	if _, err := p.TrackInfo(context.Background(), 10844269, model.QualityHigh, nil); err == nil {
		t.Fatal("TrackInfo() = nil error for non-restricted release failure")
	}
}

func TestTrackInfoUnstreamable(t *testing.T) {
	trackJSON := strings.Replace(testTrackJSON, `"is_available_for_streaming": true`,
		`"is_available_for_streaming": false`, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/tracks/10844269", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trackJSON))
	})
	mux.HandleFunc("/catalog/releases/4721102", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testReleaseJSON))
	})
	p := newTestProvider(t, mux)

	info, err := p.TrackInfo(context.Background(), 10844269, model.QualityHigh, nil)
	if err != nil {
		t.Fatalf("TrackInfo() error: %v", err)
	}
	if !strings.Contains(info.Error, "not streamable") {
		t.Errorf("Error = %q, want not streamable", info.Error)
	}
}

func TestTrackCover(t *testing.T) {
	p := newTestProvider(t, catalogHandler(t, http.StatusOK, testReleaseJSON))

	cover, err := p.TrackCover(context.Background(), 10844269, 1200, nil)
	if err != nil {
		t.Fatalf("TrackCover() error: %v", err)
	}
	if !strings.Contains(cover.URL, "1200x1200") {
		t.Errorf("URL = %q, want 1200x1200 rendering", cover.URL)
	}
	if cover.FileType != "jpg" {
		t.Errorf("FileType = %q, want jpg", cover.FileType)
	}
}
