package beatport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/handiism/beatport-downloader/internal/beatport/dto"
)

// DownloadQuality is the vendor-side quality parameter of the download
// endpoint.
type DownloadQuality string

const (
	DownloadAAC128   DownloadQuality = "128k.aac"
	DownloadAAC256   DownloadQuality = "256k.aac"
	DownloadLossless DownloadQuality = "lossless"
)

// genreChartID matches composite chart identifiers of the form
// "genre-<genreID>-hype-<chartType>", which route to the genre hype endpoint
// instead of the regular chart endpoint.
var genreChartID = regexp.MustCompile(`^genre-(\d+)-hype-(\d+)$`)

// Track fetches a catalog track document.
func (c *Client) Track(ctx context.Context, id int64) (*dto.Track, error) {
	var track dto.Track
	if err := c.get(ctx, fmt.Sprintf("catalog/tracks/%d", id), nil, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// Release fetches a catalog release document.
func (c *Client) Release(ctx context.Context, id int64) (*dto.Release, error) {
	var release dto.Release
	if err := c.get(ctx, fmt.Sprintf("catalog/releases/%d", id), nil, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// ReleaseTracks fetches one page (100 items) of a release's track listing.
// Pages are 1-based.
func (c *Client) ReleaseTracks(ctx context.Context, id int64, page int) (*dto.TrackPage, error) {
	var tracks dto.TrackPage
	if err := c.get(ctx, fmt.Sprintf("catalog/releases/%d/tracks", id), pageQuery(page), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}

// Playlist fetches a public playlist document.
func (c *Client) Playlist(ctx context.Context, id int64) (*dto.Playlist, error) {
	var playlist dto.Playlist
	if err := c.get(ctx, fmt.Sprintf("catalog/playlists/%d", id), nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// PlaylistTracks fetches one page of a public playlist's track listing.
// Each result wraps the track document one level down.
func (c *Client) PlaylistTracks(ctx context.Context, id int64, page int) (*dto.PlaylistItemPage, error) {
	var items dto.PlaylistItemPage
	if err := c.get(ctx, fmt.Sprintf("catalog/playlists/%d/tracks", id), pageQuery(page), &items); err != nil {
		return nil, err
	}
	return &items, nil
}

// LibraryPlaylist fetches a playlist owned by the authenticated account.
// Library playlists live under my/ rather than catalog/.
func (c *Client) LibraryPlaylist(ctx context.Context, id int64) (*dto.Playlist, error) {
	var playlist dto.Playlist
	if err := c.get(ctx, fmt.Sprintf("my/playlists/%d", id), nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// LibraryPlaylistTracks fetches one page of a library playlist's tracks.
func (c *Client) LibraryPlaylistTracks(ctx context.Context, id int64, page int) (*dto.PlaylistItemPage, error) {
	var items dto.PlaylistItemPage
	if err := c.get(ctx, fmt.Sprintf("my/playlists/%d/tracks", id), pageQuery(page), &items); err != nil {
		return nil, err
	}
	return &items, nil
}

// Chart fetches a chart document. The id must be a plain numeric chart ID;
// composite genre-hype identifiers have no chart document of their own.
func (c *Client) Chart(ctx context.Context, id string) (*dto.Chart, error) {
	var chart dto.Chart
	if err := c.get(ctx, fmt.Sprintf("catalog/charts/%s", id), nil, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// ChartTracks fetches one page of a chart's track listing.
//
// A composite "genre-<id>-hype-<type>" identifier is routed to the genre
// hype endpoint catalog/genres/{id}/hype/{type}/tracks; anything else goes
// to the regular chart endpoint.
func (c *Client) ChartTracks(ctx context.Context, id string, page int) (*dto.TrackPage, error) {
	endpoint := fmt.Sprintf("catalog/charts/%s/tracks", id)
	if m := genreChartID.FindStringSubmatch(id); m != nil {
		endpoint = fmt.Sprintf("catalog/genres/%s/hype/%s/tracks", m[1], m[2])
	}

	var tracks dto.TrackPage
	if err := c.get(ctx, endpoint, pageQuery(page), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}

// Artist fetches a catalog artist document.
func (c *Client) Artist(ctx context.Context, id int64) (*dto.Artist, error) {
	var artist dto.Artist
	if err := c.get(ctx, fmt.Sprintf("catalog/artists/%d", id), nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// ArtistTracks fetches one page of an artist's track listing.
func (c *Client) ArtistTracks(ctx context.Context, id int64, page int) (*dto.TrackPage, error) {
	var tracks dto.TrackPage
	if err := c.get(ctx, fmt.Sprintf("catalog/artists/%d/tracks", id), pageQuery(page), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}

// Label fetches a catalog label document.
func (c *Client) Label(ctx context.Context, id int64) (*dto.Label, error) {
	var label dto.Label
	if err := c.get(ctx, fmt.Sprintf("catalog/labels/%d", id), nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// LabelReleases fetches one page of a label's release listing.
func (c *Client) LabelReleases(ctx context.Context, id int64, page int) (*dto.ReleasePage, error) {
	var releases dto.ReleasePage
	if err := c.get(ctx, fmt.Sprintf("catalog/labels/%d/releases", id), pageQuery(page), &releases); err != nil {
		return nil, err
	}
	return &releases, nil
}

// Search queries the catalog search endpoint.
func (c *Client) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	var results dto.SearchResults
	if err := c.get(ctx, "catalog/search", url.Values{"q": {query}}, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// Introspect fetches the account description behind the current token,
// including scope, subscription tier and feature flags.
func (c *Client) Introspect(ctx context.Context) (*dto.Introspection, error) {
	var account dto.Introspection
	if err := c.get(ctx, "auth/o/introspect", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// TrackDownload fetches a signed download URL for a track at the given
// vendor quality. A 404 from the endpoint means the track has no
// downloadable file and is reported as *DownloadNotAvailableError.
func (c *Client) TrackDownload(ctx context.Context, id int64, quality DownloadQuality) (*dto.Download, error) {
	query := url.Values{"quality": {string(quality)}}

	var download dto.Download
	err := c.get(ctx, fmt.Sprintf("catalog/tracks/%d/download/", id), query, &download)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, &DownloadNotAvailableError{TrackID: id}
		}
		return nil, err
	}
	return &download, nil
}
