package provider

import (
	"context"
	"net/http"
	"testing"

	"github.com/handiism/beatport-downloader/internal/model"
)

func albumServer(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/releases/4721102", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testReleaseJSON))
	})
	// Vendor numbering starts at 11; the aggregation renumbers from 1.
	mux.HandleFunc("/catalog/releases/4721102/tracks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 3, "results": [
			{"id": 101, "name": "One", "number": 11, "length_ms": 60000,
				"release": {"id": 4721102, "name": "Darkside EP"},
				"is_available_for_streaming": true},
			{"id": 102, "name": "Two", "number": 12, "length_ms": 60000,
				"release": {"id": 4721102, "name": "Darkside EP"},
				"is_available_for_streaming": true},
			{"id": 103, "name": "Three", "number": 13, "length_ms": 60000,
				"release": {"id": 4721102, "name": "Darkside EP"},
				"is_available_for_streaming": true}
		]}`))
	})
	return mux
}

func TestAlbumInfo(t *testing.T) {
	p := newTestProvider(t, albumServer(t))

	info, cache, err := p.AlbumInfo(context.Background(), 4721102)
	if err != nil {
		t.Fatalf("AlbumInfo() error: %v", err)
	}

	if info.Name != "Darkside EP" || info.Artist != "Amelie Lens" {
		t.Errorf("album = %q by %q", info.Name, info.Artist)
	}
	if info.ReleaseYear != 2024 || info.UPC != "0075678645" {
		t.Errorf("year/UPC = %d/%q", info.ReleaseYear, info.UPC)
	}
	if len(info.TrackIDs) != 3 {
		t.Fatalf("len(TrackIDs) = %d, want 3", len(info.TrackIDs))
	}
	if info.Duration != 180 {
		t.Errorf("Duration = %d, want 180", info.Duration)
	}

	// Listing order wins over the vendor numbering.
	middle, err := p.TrackInfo(context.Background(), 102, model.QualityHigh, cache)
	if err != nil {
		t.Fatalf("TrackInfo() error: %v", err)
	}
	if middle.Tags.TrackNumber != 2 || middle.Tags.TotalTracks != 3 {
		t.Errorf("numbering = %d/%d, want 2/3", middle.Tags.TrackNumber, middle.Tags.TotalTracks)
	}
}

func TestArtistTracksKeepReleaseNumbering(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/artists/449434/tracks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "results": [
			{"id": 101, "name": "One", "number": 7, "length_ms": 60000,
				"release": {"id": 4721102, "name": "Darkside EP"},
				"is_available_for_streaming": true}
		]}`))
	})
	mux.HandleFunc("/catalog/releases/4721102", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testReleaseJSON))
	})
	p := newTestProvider(t, mux)

	ids, cache, err := p.ArtistTracks(context.Background(), 449434)
	if err != nil {
		t.Fatalf("ArtistTracks() error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 101 {
		t.Fatalf("ids = %v", ids)
	}

	info, err := p.TrackInfo(context.Background(), 101, model.QualityHigh, cache)
	if err != nil {
		t.Fatalf("TrackInfo() error: %v", err)
	}
	if info.Tags.TrackNumber != 7 {
		t.Errorf("TrackNumber = %d, want vendor number 7", info.Tags.TrackNumber)
	}
}
