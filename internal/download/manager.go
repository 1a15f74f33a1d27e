package download

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/handiism/beatport-downloader/internal/audio"
	"github.com/handiism/beatport-downloader/internal/beatport"
	"github.com/handiism/beatport-downloader/internal/config"
	"github.com/handiism/beatport-downloader/internal/http"
	ioutils "github.com/handiism/beatport-downloader/internal/io"
	"github.com/handiism/beatport-downloader/internal/model"
	"github.com/handiism/beatport-downloader/internal/provider"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// trackSet is one resolved download unit: a single track, a release, a
// playlist, a chart, or an artist's catalog, flattened to an ordered list
// of track IDs plus the cache the aggregation produced.
type trackSet struct {
	name     string
	artist   string
	album    string
	coverURL string
	dir      string
	trackIDs []int64
	cache    *provider.Cache
}

// Manager coordinates downloads end to end: session handling, URL
// resolution, metadata assembly, CDN fetches, tagging and playlist files.
type Manager struct {
	settings     *config.Settings
	provider     *provider.Provider
	cdn          *http.Client
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService
	quality      model.Quality

	sets            []*trackSet
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a download Manager from settings. With the debug
// setting enabled, API traffic is traced (sanitized) to the debug log
// file. Extra client options are applied on top, which is how tests point
// the manager at a local server.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), apiOpts ...beatport.Option) (*Manager, error) {
	quality, err := settings.ParseQuality()
	if err != nil {
		return nil, err
	}

	var opts []beatport.Option
	if settings.Debug {
		if err := ioutils.EnsureDir(filepath.Dir(settings.DebugLogPath)); err != nil {
			return nil, err
		}
		traceFile, err := os.OpenFile(settings.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		opts = append(opts, beatport.WithTrace(traceFile))
	}
	opts = append(opts, apiOpts...)

	playlistFormat := audio.FormatM3U
	if settings.PlaylistFormat == "pls" {
		playlistFormat = audio.FormatPLS
	}

	api := beatport.NewClient(opts...)
	return &Manager{
		settings:     settings,
		provider:     provider.New(api, settings.CoverSize),
		cdn:          http.NewClient(),
		tagger:       audio.NewTagger(settings.ModifyTags),
		playlist:     audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		quality:      quality,
		onProgress:   onProgress,
	}, nil
}

// Provider returns the underlying catalog adapter, for callers that need
// direct lookups (like the search command) on the established session.
func (m *Manager) Provider() *provider.Provider {
	return m.provider
}

// Authenticate establishes a usable session: a persisted session is
// restored (refreshing an expired token when possible) and only when that
// fails are the credentials used for a fresh login. The resulting session
// is persisted for the next run.
func (m *Manager) Authenticate(ctx context.Context, username, password string) error {
	stored, err := config.LoadSession(m.settings.SessionPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Ignoring unreadable session file: %v", err), Level: LevelWarning})
	}

	if stored.Valid() || stored.CanRefresh() {
		if err := m.restoreSession(ctx, stored); err == nil {
			m.progress(ProgressEvent{Message: "Restored previous session", Level: LevelVerbose})
			return m.saveSession()
		}
		m.progress(ProgressEvent{Message: "Stored session unusable, logging in", Level: LevelVerbose})
	}

	if username == "" || password == "" {
		return fmt.Errorf("no stored session and no credentials provided")
	}
	if _, err := m.provider.Login(ctx, username, password); err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: "Logged in", Level: LevelInfo})
	return m.saveSession()
}

func (m *Manager) restoreSession(ctx context.Context, stored beatport.Session) error {
	api := m.provider.Client()
	api.SetSession(stored)
	if !stored.Valid() {
		if _, err := api.Refresh(ctx); err != nil {
			return err
		}
	}
	return m.provider.ValidateAccount(ctx)
}

func (m *Manager) saveSession() error {
	return config.SaveSession(m.settings.SessionPath, m.provider.Client().Session())
}

// Initialize resolves the input URLs (one per line) into download sets.
// A URL that cannot be resolved is reported and skipped; the rest of the
// input still initializes.
func (m *Manager) Initialize(ctx context.Context, inputURLs string) error {
	for _, line := range strings.Split(inputURLs, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		link, err := provider.ParseLink(line)
		if err != nil {
			m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
			continue
		}

		set, err := m.resolveLink(ctx, link)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error resolving %s: %v", line, err), Level: LevelError})
			continue
		}

		set.dir = m.setDir(set.artist, set.album)
		m.sets = append(m.sets, set)
		m.totalFiles += int32(len(set.trackIDs))
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Found %s: %s (%d tracks)", link.Type, set.name, len(set.trackIDs)),
			Level:   LevelInfo,
		})
	}

	if len(m.sets) == 0 {
		return fmt.Errorf("no downloadable content found in input")
	}
	return nil
}

func (m *Manager) resolveLink(ctx context.Context, link provider.Link) (*trackSet, error) {
	switch link.Type {
	case provider.LinkTrack:
		id, err := link.NumericID()
		if err != nil {
			return nil, err
		}
		info, err := m.provider.TrackInfo(ctx, id, m.quality, nil)
		if err != nil {
			return nil, err
		}
		return &trackSet{
			name:     info.Name,
			artist:   info.ArtistLine(),
			album:    info.Album,
			coverURL: info.CoverURL,
			trackIDs: []int64{id},
		}, nil

	case provider.LinkAlbum:
		id, err := link.NumericID()
		if err != nil {
			return nil, err
		}
		info, cache, err := m.provider.AlbumInfo(ctx, id)
		if err != nil {
			return nil, err
		}
		return &trackSet{
			name:     info.Name,
			artist:   info.Artist,
			album:    info.Name,
			coverURL: info.CoverURL,
			trackIDs: info.TrackIDs,
			cache:    cache,
		}, nil

	case provider.LinkArtist:
		id, err := link.NumericID()
		if err != nil {
			return nil, err
		}
		artist, err := m.provider.Client().Artist(ctx, id)
		if err != nil {
			return nil, err
		}
		ids, cache, err := m.provider.ArtistTracks(ctx, id)
		if err != nil {
			return nil, err
		}
		return &trackSet{
			name:     artist.Name,
			artist:   artist.Name,
			album:    artist.Name,
			trackIDs: ids,
			cache:    cache,
		}, nil

	case provider.LinkPlaylist:
		info, cache, err := m.provider.PlaylistInfo(ctx, link)
		if err != nil {
			return nil, err
		}
		return &trackSet{
			name:     info.Name,
			artist:   info.Creator,
			album:    info.Name,
			coverURL: info.CoverURL,
			trackIDs: info.TrackIDs,
			cache:    cache,
		}, nil
	}
	return nil, fmt.Errorf("unsupported link type %s", link.Type)
}

// StartDownloads downloads all initialized sets sequentially, with tracks
// inside each set fetched concurrently up to the configured limit.
func (m *Manager) StartDownloads(ctx context.Context) error {
	for _, set := range m.sets {
		if err := m.downloadSet(ctx, set); err != nil {
			return err
		}
	}
	return nil
}

// GetProgress returns the current file counters.
func (m *Manager) GetProgress() (filesReceived, filesTotal int32) {
	return atomic.LoadInt32(&m.downloadedFiles), m.totalFiles
}

// GetSetNames returns display names of all initialized sets.
func (m *Manager) GetSetNames() []string {
	names := make([]string, len(m.sets))
	for i, set := range m.sets {
		names[i] = fmt.Sprintf("%s (%d tracks)", set.name, len(set.trackIDs))
	}
	return names
}

func (m *Manager) downloadSet(ctx context.Context, set *trackSet) error {
	if err := ioutils.EnsureDir(set.dir); err != nil {
		return err
	}

	var artwork []byte
	if (m.settings.SaveCoverArtInTags || m.settings.SaveCoverArtInFolder) && set.coverURL != "" {
		var err error
		artwork, err = m.fetchArtwork(ctx, set)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading artwork for %s: %v", set.name, err), Level: LevelWarning})
		}
	}

	entries := make([]audio.PlaylistEntry, len(set.trackIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for i, id := range set.trackIDs {
		i, id := i, id
		g.Go(func() error {
			entry, err := m.downloadTrack(gctx, set, id, artwork)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading track %d: %v", id, err), Level: LevelError})
				return nil // keep going with the rest of the set
			}
			if entry != nil {
				mu.Lock()
				entries[i] = *entry
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist && len(set.trackIDs) > 1 {
		m.writePlaylist(ctx, set, entries)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s", set.name), Level: LevelSuccess})
	return nil
}

// downloadTrack fetches one track. A nil entry with nil error means the
// track was skipped (not downloadable in this territory or tier).
func (m *Manager) downloadTrack(ctx context.Context, set *trackSet, id int64, artwork []byte) (*audio.PlaylistEntry, error) {
	info, err := m.provider.TrackInfo(ctx, id, m.quality, set.cache)
	if err != nil {
		return nil, err
	}
	if !info.Downloadable() {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %s", info.Name, info.Error), Level: LevelWarning})
		return nil, nil
	}

	download, err := m.provider.TrackDownload(ctx, id, m.quality)
	if err != nil {
		return nil, err
	}

	fileName := m.trackFileName(info)
	destPath := filepath.Join(set.dir, fileName)
	entry := &audio.PlaylistEntry{
		FileName: fileName,
		Title:    fmt.Sprintf("%s - %s", info.ArtistLine(), info.Name),
		Duration: info.Duration,
	}

	if m.skipExisting(ctx, destPath, download.URL) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", fileName), Level: LevelVerbose})
		atomic.AddInt32(&m.downloadedFiles, 1)
		return entry, nil
	}

	for tries := 0; ; tries++ {
		err = m.cdn.DownloadFile(ctx, download.URL, destPath, nil)
		if err == nil {
			break
		}
		if tries+1 >= m.settings.DownloadMaxRetries {
			return nil, err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, info.Name), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}

	atomic.AddInt32(&m.downloadedFiles, 1)

	// FLAC arrives tagged by the vendor; only AAC files get frames written.
	if info.Codec == model.CodecAAC && (m.settings.ModifyTags || (m.settings.SaveCoverArtInTags && artwork != nil)) {
		tagArtwork := artwork
		if !m.settings.SaveCoverArtInTags {
			tagArtwork = nil
		}
		if err := m.tagger.SaveTags(destPath, info, tagArtwork); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", info.Name, err), Level: LevelWarning})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", fileName), Level: LevelVerbose})
	return entry, nil
}

// skipExisting reports whether destPath already holds a file whose size is
// within the allowed difference of what the CDN would serve.
func (m *Manager) skipExisting(ctx context.Context, destPath, url string) bool {
	info, err := os.Stat(destPath)
	if err != nil {
		return false
	}
	expected, err := m.cdn.GetFileSize(ctx, url)
	if err != nil || expected <= 0 {
		return false
	}
	diff := float64(info.Size()-expected) / float64(expected)
	return math.Abs(diff) <= m.settings.AllowedFileSizeDifference
}

func (m *Manager) fetchArtwork(ctx context.Context, set *trackSet) ([]byte, error) {
	var artwork []byte
	var err error
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		artwork, err = m.cdn.Get(ctx, set.coverURL)
		if err == nil {
			break
		}
		m.waitForRetry(ctx, tries)
	}
	if err != nil {
		return nil, err
	}

	if m.settings.SaveCoverArtInFolder {
		toSave := artwork
		if m.settings.CoverArtInFolderResize {
			if resized, err := m.imageService.ResizeImage(ctx, toSave, m.settings.CoverArtInFolderMaxSize, m.settings.CoverArtInFolderMaxSize); err == nil {
				toSave = resized
			}
		}
		coverPath := filepath.Join(set.dir, m.coverFileName(set))
		if err := ioutils.WriteFile(ctx, coverPath, toSave); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving artwork: %v", err), Level: LevelWarning})
		}
	}

	if m.settings.SaveCoverArtInTags {
		if converted, err := m.imageService.ConvertToJPEG(ctx, artwork); err == nil {
			artwork = converted
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded artwork for %s", set.name), Level: LevelVerbose})
	return artwork, nil
}

func (m *Manager) writePlaylist(ctx context.Context, set *trackSet, entries []audio.PlaylistEntry) {
	// Drop the holes left by skipped tracks, keeping set order.
	present := make([]audio.PlaylistEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.FileName != "" {
			present = append(present, entry)
		}
	}
	if len(present) == 0 {
		return
	}

	content := m.playlist.CreatePlaylist(present)
	path := filepath.Join(set.dir, m.playlistFileName(set))
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", set.name), Level: LevelSuccess})
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
