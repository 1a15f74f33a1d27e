package provider

import "github.com/handiism/beatport-downloader/internal/beatport/dto"

// Cache holds documents fetched during one aggregation call so the
// per-track assembly does not refetch what the listing already returned.
//
// The cache is request-scoped: an aggregation creates it,
// TrackInfo reads from it, and it is discarded when the host is done with
// the set. Entries are never evicted.
type Cache struct {
	tracks   map[int64]cachedTrack
	releases map[int64]*dto.Release
}

// cachedTrack is a listing track plus its position annotations. Position
// and Total override the release-relative numbering for playlist and chart
// sets, and carry the renumbering for albums.
type cachedTrack struct {
	track    dto.Track
	position int
	total    int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		tracks:   make(map[int64]cachedTrack),
		releases: make(map[int64]*dto.Release),
	}
}

func (c *Cache) putTrack(track dto.Track, position, total int) {
	c.tracks[track.ID] = cachedTrack{track: track, position: position, total: total}
}

func (c *Cache) putRelease(release *dto.Release) {
	if release != nil {
		c.releases[release.ID] = release
	}
}

func (c *Cache) track(id int64) (cachedTrack, bool) {
	if c == nil {
		return cachedTrack{}, false
	}
	entry, ok := c.tracks[id]
	return entry, ok
}

func (c *Cache) release(id int64) (*dto.Release, bool) {
	if c == nil {
		return nil, false
	}
	release, ok := c.releases[id]
	return release, ok
}
