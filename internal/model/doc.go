// Package model defines the normalized media records used throughout
// beatport-downloader.
//
// # Records
//
// The provider package translates raw Beatport JSON into these records:
//
//	TrackInfo    - one track, with tags and encoding parameters
//	AlbumInfo    - a release and its ordered track listing
//	PlaylistInfo - a playlist, DJ chart, or library playlist
//	CoverInfo    - cover art rendered at a requested size
//	DownloadInfo - a signed CDN URL plus codec flag
//
// # Quality tiers
//
// Quality is the abstract tier the user requests; it determines the vendor
// encoding parameters:
//
//	q := model.QualityHigh
//	q.Codec()   // CodecAAC
//	q.Bitrate() // 256
//
// Lossless and HiFi both map to FLAC (16-bit, 1411 kbps); everything below
// High maps to AAC 128 kbps.
package model
