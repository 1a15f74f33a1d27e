package provider

import (
	"context"
	"errors"

	"github.com/handiism/beatport-downloader/internal/beatport"
	"github.com/handiism/beatport-downloader/internal/model"
)

// downloadQuality maps a playback quality to the stream format parameter
// the download endpoint expects. The three AAC tiers collapse onto two
// encodes; lossless tiers request the FLAC stream.
func downloadQuality(quality model.Quality) beatport.DownloadQuality {
	if quality.Codec() == model.CodecFLAC {
		return beatport.DownloadLossless
	}
	if quality.Bitrate() >= 256 {
		return beatport.DownloadAAC256
	}
	return beatport.DownloadAAC128
}

// TrackDownload resolves the signed delivery URL for a track at the given
// quality. A track the account cannot fetch yields a descriptive error
// rather than a bare status code.
func (p *Provider) TrackDownload(ctx context.Context, id int64, quality model.Quality) (*model.DownloadInfo, error) {
	download, err := p.api.TrackDownload(ctx, id, downloadQuality(quality))
	if err != nil {
		var notAvailable *beatport.DownloadNotAvailableError
		if errors.As(err, &notAvailable) {
			return nil, Errorf("track %d is not available for download", id)
		}
		return nil, wrapError("resolve download", err)
	}
	if download.Location == "" {
		return nil, Errorf("no download URL for track %d", id)
	}
	return &model.DownloadInfo{
		URL:   download.Location,
		Codec: quality.Codec(),
	}, nil
}
