package provider

import (
	"context"

	"github.com/handiism/beatport-downloader/internal/model"
)

// AlbumInfo aggregates a release and its full track listing into a
// normalized record.
//
// Listing order wins over the release-relative track numbers: tracks are
// renumbered 1..N in the order the pages returned them, so multi-disc
// releases come out as one consecutive sequence. The release document and
// every member track are cached for the per-track assembly that follows.
func (p *Provider) AlbumInfo(ctx context.Context, id int64) (*model.AlbumInfo, *Cache, error) {
	cache := NewCache()
	release, err := p.lookupRelease(ctx, id, cache)
	if err != nil {
		return nil, nil, wrapError("fetch release", err)
	}

	first, err := p.api.ReleaseTracks(ctx, id, 1)
	if err != nil {
		return nil, nil, wrapError("fetch release tracks", err)
	}
	tracks := first.Results
	for page := 2; (page-1)*pageSize < first.Count; page++ {
		more, err := p.api.ReleaseTracks(ctx, id, page)
		if err != nil {
			return nil, nil, wrapError("fetch release tracks", err)
		}
		tracks = append(tracks, more.Results...)
	}

	info := &model.AlbumInfo{
		ID:          release.ID,
		Name:        release.Name,
		ReleaseYear: yearOf(release.PublishDate),
		UPC:         release.UPC,
	}
	if len(release.Artists) > 0 {
		info.Artist = release.Artists[0].Name
		info.ArtistID = release.Artists[0].ID
	}
	if release.Image != nil {
		info.CoverURL = artworkURL(release.Image.DynamicURI, p.coverSize)
	}

	for i, track := range tracks {
		cache.putTrack(track, i+1, first.Count)
		info.TrackIDs = append(info.TrackIDs, track.ID)
		info.Duration += track.LengthMs / 1000
	}
	return info, cache, nil
}

// ArtistTracks collects the IDs of every track credited to an artist,
// newest first, caching the track documents without position overrides so
// each keeps its own release-relative numbering.
func (p *Provider) ArtistTracks(ctx context.Context, id int64) ([]int64, *Cache, error) {
	cache := NewCache()

	first, err := p.api.ArtistTracks(ctx, id, 1)
	if err != nil {
		return nil, nil, wrapError("fetch artist tracks", err)
	}
	tracks := first.Results
	for page := 2; (page-1)*pageSize < first.Count; page++ {
		more, err := p.api.ArtistTracks(ctx, id, page)
		if err != nil {
			return nil, nil, wrapError("fetch artist tracks", err)
		}
		tracks = append(tracks, more.Results...)
	}

	ids := make([]int64, 0, len(tracks))
	for _, track := range tracks {
		cache.putTrack(track, 0, 0)
		ids = append(ids, track.ID)
	}
	return ids, cache, nil
}
