package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/beatport-downloader/internal/beatport"
	"github.com/handiism/beatport-downloader/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if settings.Quality != "lossless" {
		t.Errorf("Quality = %q, want lossless default", settings.Quality)
	}
	if settings.MaxConcurrentDownloads != 4 {
		t.Errorf("MaxConcurrentDownloads = %d, want 4", settings.MaxConcurrentDownloads)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	settings := DefaultSettings()
	settings.Quality = "high"
	settings.CoverSize = 500
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Quality != "high" || loaded.CoverSize != 500 {
		t.Errorf("loaded = %q/%d, want high/500", loaded.Quality, loaded.CoverSize)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"quality": "high"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if settings.Quality != "high" {
		t.Errorf("Quality = %q", settings.Quality)
	}
	if settings.DownloadMaxRetries != 7 {
		t.Errorf("DownloadMaxRetries = %d, unset field lost its default", settings.DownloadMaxRetries)
	}
}

func TestParseQuality(t *testing.T) {
	settings := DefaultSettings()
	settings.Quality = "hifi"
	quality, err := settings.ParseQuality()
	if err != nil {
		t.Fatalf("ParseQuality() error: %v", err)
	}
	if quality != model.QualityHiFi {
		t.Errorf("quality = %v, want hifi", quality)
	}

	settings.Quality = "ultra"
	if _, err := settings.ParseQuality(); err == nil {
		t.Error("ParseQuality() accepted unknown tier")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")

	session := beatport.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Expires:      time.Now().Add(time.Hour).Round(time.Second),
	}
	if err := SaveSession(path, session); err != nil {
		t.Fatalf("SaveSession() error: %v", err)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if !loaded.Expires.Equal(session.Expires) {
		t.Errorf("Expires = %v, want %v", loaded.Expires, session.Expires)
	}
	loaded.Expires = session.Expires
	if loaded != session {
		t.Errorf("loaded = %+v, want %+v", loaded, session)
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	session, err := LoadSession(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if session.Valid() || session.CanRefresh() {
		t.Errorf("missing file yielded non-zero session: %+v", session)
	}
}
