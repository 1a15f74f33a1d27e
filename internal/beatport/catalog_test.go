package beatport

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestChartTracksRouting(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantPath string
	}{
		{
			name:     "numeric chart",
			id:       "727744",
			wantPath: "/catalog/charts/727744/tracks",
		},
		{
			name:     "composite genre hype",
			id:       "genre-12-hype-3",
			wantPath: "/catalog/genres/12/hype/3/tracks",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			mux := http.NewServeMux()
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`{"count": 0, "results": []}`))
			})
			c := newTestClient(t, mux)

			if _, err := c.ChartTracks(context.Background(), tt.id, 1); err != nil {
				t.Fatalf("ChartTracks() error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("request path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestPaginationQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/releases/42/tracks", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "3" || q.Get("per_page") != "100" {
			t.Errorf("query = %v, want page=3 per_page=100", q)
		}
		w.Write([]byte(`{"count": 0, "results": []}`))
	})
	c := newTestClient(t, mux)

	if _, err := c.ReleaseTracks(context.Background(), 42, 3); err != nil {
		t.Fatalf("ReleaseTracks() error: %v", err)
	}
}

func TestLibraryPlaylistUsesMyPrefix(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 555, "name": "Mine"}`))
	})
	c := newTestClient(t, mux)

	if _, err := c.LibraryPlaylist(context.Background(), 555); err != nil {
		t.Fatalf("LibraryPlaylist() error: %v", err)
	}
	if gotPath != "/my/playlists/555" {
		t.Errorf("request path = %q, want /my/playlists/555", gotPath)
	}
}

func TestTrackDownloadQualityParam(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/tracks/7/download/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("quality"); got != "256k.aac" {
			t.Errorf("quality = %q, want 256k.aac", got)
		}
		w.Write([]byte(`{"location": "https://cdn.example.com/t.aac", "quality": "256k.aac"}`))
	})
	c := newTestClient(t, mux)

	dl, err := c.TrackDownload(context.Background(), 7, DownloadAAC256)
	if err != nil {
		t.Fatalf("TrackDownload() error: %v", err)
	}
	if dl.Location != "https://cdn.example.com/t.aac" {
		t.Errorf("Location = %q", dl.Location)
	}
}

func TestTrackDownloadNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/tracks/7/download/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	c := newTestClient(t, mux)

	_, err := c.TrackDownload(context.Background(), 7, DownloadLossless)
	var na *DownloadNotAvailableError
	if !errors.As(err, &na) {
		t.Fatalf("TrackDownload() = %v, want *DownloadNotAvailableError", err)
	}
	if na.TrackID != 7 {
		t.Errorf("TrackID = %d, want 7", na.TrackID)
	}
}

func TestLabelReleases(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/labels/5", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 5, "name": "Drumcode"}`))
	})
	mux.HandleFunc("/catalog/labels/5/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "results": [{"id": 42, "name": "Darkside EP"}]}`))
	})
	c := newTestClient(t, mux)

	label, err := c.Label(context.Background(), 5)
	if err != nil {
		t.Fatalf("Label() error: %v", err)
	}
	if label.Name != "Drumcode" {
		t.Errorf("Name = %q", label.Name)
	}

	releases, err := c.LabelReleases(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("LabelReleases() error: %v", err)
	}
	if len(releases.Results) != 1 || releases.Results[0].ID != 42 {
		t.Errorf("releases = %+v", releases)
	}
}

func TestSearchQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "amelie lens" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`{"tracks": [{"id": 1, "name": "Hit"}], "releases": []}`))
	})
	c := newTestClient(t, mux)

	results, err := c.Search(context.Background(), "amelie lens")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results.Tracks) != 1 || results.Tracks[0].Name != "Hit" {
		t.Errorf("results = %+v", results)
	}
}
