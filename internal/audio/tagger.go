package audio

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/beatport-downloader/internal/model"
)

// Tagger writes ID3 tags to downloaded AAC files.
//
// FLAC downloads arrive fully tagged from the vendor and use a different
// tag container, so the tagger only runs on AAC files. Frames written:
//   - Title, artist, album artist, album
//   - Track number as "n/total", year and full release date
//   - Genre(s), ISRC, label, copyright line
//   - BPM and musical key
//   - Cover art (attached picture)
//
// Example:
//
//	tagger := NewTagger(true)
//	err := tagger.SaveTags(path, info, artworkBytes)
type Tagger struct {
	modifyTags bool
}

// NewTagger creates a Tagger. With modifyTags false only artwork is
// embedded; the text frames stay untouched.
func NewTagger(modifyTags bool) *Tagger {
	return &Tagger{modifyTags: modifyTags}
}

// SaveTags writes the track's metadata into the file at path. artwork is
// JPEG bytes for the cover frame; nil skips artwork embedding.
func (t *Tagger) SaveTags(path string, info *model.TrackInfo, artwork []byte) error {
	// Raw AAC files start without a tag header; Open handles that and
	// yields an empty tag to fill.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.modifyTags {
		t.writeTextFrames(tag, info)
	}
	if artwork != nil {
		t.writeArtwork(tag, artwork)
	}

	return tag.Save()
}

func (t *Tagger) writeTextFrames(tag *id3v2.Tag, info *model.TrackInfo) {
	tag.SetTitle(info.Name)
	tag.SetArtist(info.ArtistLine())
	tag.SetAlbum(info.Album)

	tags := info.Tags
	if tags.AlbumArtist != "" {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, tags.AlbumArtist)
	}
	if info.ReleaseYear > 0 {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, fmt.Sprintf("%d", info.ReleaseYear))
	}
	if tags.ReleaseDate != "" {
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, tags.ReleaseDate)
	}
	if tags.TrackNumber > 0 {
		number := fmt.Sprintf("%d", tags.TrackNumber)
		if tags.TotalTracks > 0 {
			number = fmt.Sprintf("%d/%d", tags.TrackNumber, tags.TotalTracks)
		}
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, number)
	}
	if len(tags.Genres) > 0 {
		tag.SetGenre(strings.Join(tags.Genres, "; "))
	}
	if tags.ISRC != "" {
		tag.AddTextFrame("TSRC", id3v2.EncodingUTF8, tags.ISRC)
	}
	if tags.Label != "" {
		tag.AddTextFrame("TPUB", id3v2.EncodingUTF8, tags.Label)
	}
	if tags.Copyright != "" {
		tag.AddTextFrame("TCOP", id3v2.EncodingUTF8, tags.Copyright)
	}
	if tags.BPM > 0 {
		tag.AddTextFrame("TBPM", id3v2.EncodingUTF8, fmt.Sprintf("%d", tags.BPM))
	}
	if tags.Key != "" {
		tag.AddTextFrame("TKEY", id3v2.EncodingUTF8, tags.Key)
	}
}

func (t *Tagger) writeArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
