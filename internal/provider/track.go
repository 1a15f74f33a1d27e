package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/handiism/beatport-downloader/internal/beatport"
	"github.com/handiism/beatport-downloader/internal/beatport/dto"
	"github.com/handiism/beatport-downloader/internal/model"
)

// TrackInfo assembles the normalized record for a single track.
//
// The track and its release document are taken from the cache when the
// caller obtained them through an aggregation, and fetched otherwise. A
// nil cache is fine for standalone lookups.
//
// Availability problems do not fail the call; they surface in the record's
// Error field so set-level operations keep going: a territory-restricted
// release marks the track region locked, and unstreamable or pre-order
// tracks are flagged with their own messages. Any other failure is
// returned as an error.
func (p *Provider) TrackInfo(ctx context.Context, id int64, quality model.Quality, cache *Cache) (*model.TrackInfo, error) {
	track, position, total, err := p.lookupTrack(ctx, id, cache)
	if err != nil {
		return nil, err
	}
	if track.Release == nil {
		return nil, Errorf("track %d has no release", id)
	}

	var availability string
	release, err := p.lookupRelease(ctx, track.Release.ID, cache)
	if err != nil {
		var se *beatport.StatusError
		if !errors.As(err, &se) || !se.TerritoryRestricted() {
			return nil, err
		}
		availability = fmt.Sprintf("release %d is region locked", track.Release.ID)
		release = track.Release
	}

	// Streamability problems take precedence over the region lock.
	if !track.IsAvailableForStreaming {
		availability = fmt.Sprintf("track %q is not streamable", track.Name)
	} else if track.PreOrder {
		availability = fmt.Sprintf("track %q is not released yet", track.Name)
	}

	name := track.Name
	if track.MixName != "" {
		name = fmt.Sprintf("%s (%s)", track.Name, track.MixName)
	}

	info := &model.TrackInfo{
		ID:          track.ID,
		Name:        name,
		Album:       release.Name,
		AlbumID:     release.ID,
		Artists:     artistNames(track.Artists),
		ReleaseYear: yearOf(track.PublishDate),
		Duration:    track.LengthMs / 1000,
		Bitrate:     quality.Bitrate(),
		BitDepth:    quality.BitDepth(),
		SampleRate:  44.1,
		Codec:       quality.Codec(),
		Error:       availability,
	}
	if len(track.Artists) > 0 {
		info.ArtistID = track.Artists[0].ID
	}
	if release.Image != nil {
		info.CoverURL = artworkURL(release.Image.DynamicURI, p.coverSize)
	}

	info.Tags = model.Tags{
		TrackNumber: track.Number,
		TotalTracks: release.TrackCount,
		UPC:         release.UPC,
		ISRC:        track.ISRC,
		ReleaseDate: track.PublishDate,
	}
	if position > 0 {
		info.Tags.TrackNumber = position
		info.Tags.TotalTracks = total
	}
	if len(release.Artists) > 0 {
		info.Tags.AlbumArtist = release.Artists[0].Name
	}
	if track.Genre != nil {
		info.Tags.Genres = append(info.Tags.Genres, track.Genre.Name)
	}
	if track.SubGenre != nil {
		info.Tags.Genres = append(info.Tags.Genres, track.SubGenre.Name)
	}
	if track.Key != nil {
		info.Tags.Key = track.Key.Name
	}
	info.Tags.BPM = track.BPM
	if release.Label != nil {
		info.Tags.Label = release.Label.Name
		info.Tags.Copyright = fmt.Sprintf("© %d %s", info.ReleaseYear, release.Label.Name)
	}
	return info, nil
}

// TrackCover resolves a track's cover art at the requested square size.
func (p *Provider) TrackCover(ctx context.Context, id int64, size int, cache *Cache) (*model.CoverInfo, error) {
	track, _, _, err := p.lookupTrack(ctx, id, cache)
	if err != nil {
		return nil, err
	}
	if track.Release == nil || track.Release.Image == nil {
		return nil, Errorf("track %d has no cover art", id)
	}
	return &model.CoverInfo{
		URL:      artworkURL(track.Release.Image.DynamicURI, size),
		FileType: "jpg",
	}, nil
}

func (p *Provider) lookupTrack(ctx context.Context, id int64, cache *Cache) (*dto.Track, int, int, error) {
	if entry, ok := cache.track(id); ok {
		return &entry.track, entry.position, entry.total, nil
	}
	track, err := p.api.Track(ctx, id)
	if err != nil {
		return nil, 0, 0, wrapError(fmt.Sprintf("fetch track %d", id), err)
	}
	return track, 0, 0, nil
}

func (p *Provider) lookupRelease(ctx context.Context, id int64, cache *Cache) (*dto.Release, error) {
	if release, ok := cache.release(id); ok {
		return release, nil
	}
	release, err := p.api.Release(ctx, id)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache.putRelease(release)
	}
	return release, nil
}

func artistNames(artists []dto.Artist) []string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return names
}

// yearOf extracts the year from a yyyy-mm-dd date string. Malformed or
// empty dates yield zero.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
