package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/beatport-downloader/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Quality is the requested tier: minimum, low, medium, high,
	// lossless or hifi.
	Quality string `json:"quality"`

	// Download settings
	DownloadsPath             string  `json:"downloads_path"`
	MaxConcurrentDownloads    int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries        int     `json:"download_max_retries"`
	DownloadRetryCooldown     float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent     float64 `json:"download_retry_exponent"`
	AllowedFileSizeDifference float64 `json:"allowed_file_size_difference"`

	// File naming
	FileNameFormat         string `json:"file_name_format"`
	CoverArtFileNameFormat string `json:"cover_art_file_name_format"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`

	// Cover art settings
	CoverSize               int  `json:"cover_size"`
	SaveCoverArtInFolder    bool `json:"save_cover_art_in_folder"`
	SaveCoverArtInTags      bool `json:"save_cover_art_in_tags"`
	CoverArtInFolderResize  bool `json:"cover_art_in_folder_resize"`
	CoverArtInFolderMaxSize int  `json:"cover_art_in_folder_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Session and debugging
	SessionPath  string `json:"session_path"`
	Debug        bool   `json:"debug"`
	DebugLogPath string `json:"debug_log_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Quality: "lossless",

		DownloadsPath:             filepath.Join(homeDir, "Music", "Beatport", "{artist}", "{album}"),
		MaxConcurrentDownloads:    4,
		DownloadMaxRetries:        7,
		DownloadRetryCooldown:     0.2,
		DownloadRetryExponent:     4.0,
		AllowedFileSizeDifference: 0.05,

		FileNameFormat:         "{tracknum} {artist} - {title}",
		CoverArtFileNameFormat: "{album}",
		PlaylistFileNameFormat: "{album}",

		CoverSize:               1400,
		SaveCoverArtInFolder:    false,
		SaveCoverArtInTags:      true,
		CoverArtInFolderResize:  false,
		CoverArtInFolderMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags: true,

		SessionPath:  filepath.Join(homeDir, ".config", "beatport-dl", "session.json"),
		DebugLogPath: filepath.Join(homeDir, ".config", "beatport-dl", "trace.log"),
	}
}

// ParseQuality resolves the configured quality name.
func (s *Settings) ParseQuality() (model.Quality, error) {
	quality, err := model.ParseQuality(s.Quality)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return quality, nil
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
