package provider

import (
	"fmt"
	"regexp"
)

// LinkType classifies what a Beatport URL points at.
type LinkType int

const (
	LinkTrack LinkType = iota
	LinkAlbum
	LinkArtist
	LinkPlaylist
)

// String returns the link type name.
func (t LinkType) String() string {
	switch t {
	case LinkTrack:
		return "track"
	case LinkAlbum:
		return "album"
	case LinkArtist:
		return "artist"
	case LinkPlaylist:
		return "playlist"
	}
	return "unknown"
}

// Link identifies a piece of catalog content resolved from a URL.
//
// Charts and library playlists both surface as LinkPlaylist; the Chart and
// Library flags route them to their distinct endpoints downstream. Chart
// identifiers may be composite genre-hype tokens, so ID stays a string.
type Link struct {
	Type    LinkType
	ID      string
	Chart   bool
	Library bool
}

// NumericID returns the link identifier as an int64. Composite genre-hype
// chart identifiers are not numeric and fail.
func (l Link) NumericID() (int64, error) {
	return parseID(l.ID)
}

var (
	// library playlists live under /library/ and route to my/playlists.
	libraryPlaylistURL = regexp.MustCompile(`https?://(www\.)?beatport\.com/library/playlists/(\d+)`)

	// genre hype charts have no chart ID of their own; a composite token
	// is synthesized from the genre ID and hype type.
	genreChartURL = regexp.MustCompile(`/genre/[^/]+/(\d+)/hype-(\d+)`)

	// generic catalog URLs, with an optional two-letter locale segment.
	catalogURL = regexp.MustCompile(`https?://(www\.)?beatport\.com/(?:[a-z]{2}/)?(track|release|artist|playlists|chart)/.+?/(\d+)`)
)

// ParseLink resolves a Beatport URL to a Link.
//
//	https://www.beatport.com/track/darkside/10844269        -> track 10844269
//	https://www.beatport.com/release/some-ep/4721102        -> album 4721102
//	https://www.beatport.com/chart/peak-hour/727744         -> playlist, Chart
//	https://www.beatport.com/genre/techno/6/hype-10         -> playlist, Chart, ID "genre-6-hype-10"
//	https://www.beatport.com/library/playlists/555          -> playlist, Library
//	https://www.beatport.com/playlists/my-set/555           -> playlist
func ParseLink(link string) (Link, error) {
	if m := libraryPlaylistURL.FindStringSubmatch(link); m != nil {
		return Link{Type: LinkPlaylist, ID: m[2], Library: true}, nil
	}

	if m := genreChartURL.FindStringSubmatch(link); m != nil {
		return Link{
			Type:  LinkPlaylist,
			ID:    fmt.Sprintf("genre-%s-hype-%s", m[1], m[2]),
			Chart: true,
		}, nil
	}

	m := catalogURL.FindStringSubmatch(link)
	if m == nil {
		return Link{}, Errorf("unrecognized Beatport URL: %s", link)
	}

	switch m[2] {
	case "track":
		return Link{Type: LinkTrack, ID: m[3]}, nil
	case "release":
		return Link{Type: LinkAlbum, ID: m[3]}, nil
	case "artist":
		return Link{Type: LinkArtist, ID: m[3]}, nil
	case "playlists":
		return Link{Type: LinkPlaylist, ID: m[3]}, nil
	case "chart":
		return Link{Type: LinkPlaylist, ID: m[3], Chart: true}, nil
	}
	return Link{}, Errorf("unrecognized Beatport URL: %s", link)
}
