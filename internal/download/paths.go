package download

import (
	"fmt"
	"strings"

	ioutils "github.com/handiism/beatport-downloader/internal/io"
	"github.com/handiism/beatport-downloader/internal/model"
)

// expandFormat fills the {token} placeholders of a naming format. Values
// are sanitized individually so a slash inside a track title cannot change
// the directory layout.
func expandFormat(format string, values map[string]string) string {
	for token, value := range values {
		format = strings.ReplaceAll(format, "{"+token+"}", ioutils.SanitizeFileName(value))
	}
	return format
}

// trackFileName renders the configured file name format for a track and
// appends the codec extension.
//
// Supported tokens: {tracknum}, {artist}, {title}, {album}, {id}.
func (m *Manager) trackFileName(info *model.TrackInfo) string {
	name := expandFormat(m.settings.FileNameFormat, map[string]string{
		"tracknum": fmt.Sprintf("%02d", info.Tags.TrackNumber),
		"artist":   info.ArtistLine(),
		"title":    info.Name,
		"album":    info.Album,
		"id":       fmt.Sprintf("%d", info.ID),
	})
	return name + info.Codec.Extension()
}

// setDir renders the downloads path template for a set.
//
// Supported tokens: {artist}, {album}. The template's own separators
// survive; separators inside token values are sanitized away.
func (m *Manager) setDir(artist, album string) string {
	return expandFormat(m.settings.DownloadsPath, map[string]string{
		"artist": artist,
		"album":  album,
	})
}

// coverFileName renders the folder cover art file name, always JPEG.
func (m *Manager) coverFileName(set *trackSet) string {
	name := expandFormat(m.settings.CoverArtFileNameFormat, map[string]string{
		"artist": set.artist,
		"album":  set.album,
	})
	return name + ".jpg"
}

// playlistFileName renders the playlist file name with the configured
// format's extension.
func (m *Manager) playlistFileName(set *trackSet) string {
	name := expandFormat(m.settings.PlaylistFileNameFormat, map[string]string{
		"artist": set.artist,
		"album":  set.album,
	})
	return name + m.playlist.Format().Extension()
}
