package provider

import (
	"context"
	"strconv"

	"github.com/handiism/beatport-downloader/internal/beatport/dto"
	"github.com/handiism/beatport-downloader/internal/model"
)

// pageSize is the fixed page size of the vendor's paginated listings.
const pageSize = 100

// PlaylistInfo aggregates a playlist, DJ chart, or library playlist into a
// normalized record. The link's Chart/Library flags pick the endpoint set.
//
// Page 1 establishes the total item count; remaining pages are fetched
// sequentially until all items are collected. A failed page fetch aborts
// the whole aggregation. Every member track lands in the returned Cache
// annotated with its 1-based position and the set size, so subsequent
// TrackInfo calls need no refetch.
func (p *Provider) PlaylistInfo(ctx context.Context, link Link) (*model.PlaylistInfo, *Cache, error) {
	if link.Type != LinkPlaylist {
		return nil, nil, Errorf("link %s/%s is not a playlist", link.Type, link.ID)
	}

	var (
		tracks []dto.Track
		total  int
		err    error
	)
	if link.Chart {
		tracks, total, err = p.chartTracks(ctx, link.ID)
	} else {
		tracks, total, err = p.playlistTracks(ctx, link.ID, link.Library)
	}
	if err != nil {
		return nil, nil, err
	}

	cache := NewCache()
	info := &model.PlaylistInfo{ID: link.ID}
	for i, track := range tracks {
		cache.putTrack(track, i+1, total)
		info.TrackIDs = append(info.TrackIDs, track.ID)
		info.Duration += track.LengthMs / 1000
	}

	if err := p.describePlaylist(ctx, link, info); err != nil {
		return nil, nil, err
	}
	return info, cache, nil
}

// chartTracks collects all pages of a chart track listing. Chart listings
// return track documents directly.
func (p *Provider) chartTracks(ctx context.Context, id string) ([]dto.Track, int, error) {
	first, err := p.api.ChartTracks(ctx, id, 1)
	if err != nil {
		return nil, 0, err
	}

	tracks := first.Results
	for page := 2; (page-1)*pageSize < first.Count; page++ {
		more, err := p.api.ChartTracks(ctx, id, page)
		if err != nil {
			return nil, 0, err
		}
		tracks = append(tracks, more.Results...)
	}
	return tracks, first.Count, nil
}

// playlistTracks collects all pages of a playlist track listing, unwrapping
// the nested track element of each entry.
func (p *Provider) playlistTracks(ctx context.Context, id string, library bool) ([]dto.Track, int, error) {
	playlistID, err := parseID(id)
	if err != nil {
		return nil, 0, err
	}

	fetch := p.api.PlaylistTracks
	if library {
		fetch = p.api.LibraryPlaylistTracks
	}

	first, err := fetch(ctx, playlistID, 1)
	if err != nil {
		return nil, 0, err
	}

	tracks := unwrapItems(first.Results)
	for page := 2; (page-1)*pageSize < first.Count; page++ {
		more, err := fetch(ctx, playlistID, page)
		if err != nil {
			return nil, 0, err
		}
		tracks = append(tracks, unwrapItems(more.Results)...)
	}
	return tracks, first.Count, nil
}

func unwrapItems(items []dto.PlaylistItem) []dto.Track {
	tracks := make([]dto.Track, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, item.Track)
	}
	return tracks
}

// describePlaylist fills name, creator, year and cover. The derivation
// differs per variant: charts use the owner name, change date and dynamic
// artwork; playlists have no owner or dynamic artwork, so the creator is
// the generic "User", the year comes from the updated date and the cover
// from the first of the four static release images. Composite genre-hype
// charts have no chart document at all; the identifier doubles as the name.
func (p *Provider) describePlaylist(ctx context.Context, link Link, info *model.PlaylistInfo) error {
	if link.Chart {
		if _, err := strconv.ParseInt(link.ID, 10, 64); err != nil {
			info.Name = link.ID
			info.Creator = "Beatport"
			return nil
		}

		chart, err := p.api.Chart(ctx, link.ID)
		if err != nil {
			return err
		}
		info.Name = chart.Name
		info.Creator = "Beatport"
		if chart.Person != nil {
			info.Creator = chart.Person.OwnerName
		}
		info.ReleaseYear = yearOf(chart.ChangeDate)
		if chart.Image != nil {
			info.CoverURL = artworkURL(chart.Image.DynamicURI, p.coverSize)
		}
		return nil
	}

	playlistID, err := parseID(link.ID)
	if err != nil {
		return err
	}

	var playlist *dto.Playlist
	if link.Library {
		playlist, err = p.api.LibraryPlaylist(ctx, playlistID)
	} else {
		playlist, err = p.api.Playlist(ctx, playlistID)
	}
	if err != nil {
		return err
	}

	info.Name = playlist.Name
	info.Creator = "User"
	info.ReleaseYear = yearOf(playlist.UpdatedDate)
	if len(playlist.ReleaseImages) > 0 {
		info.CoverURL = artworkURL(playlist.ReleaseImages[0], p.coverSize)
	}
	return nil
}

// parseID converts a numeric link identifier.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, Errorf("invalid numeric identifier %q", id)
	}
	return n, nil
}
