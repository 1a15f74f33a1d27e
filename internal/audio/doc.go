// Package audio post-processes downloaded files: ID3 tagging of AAC
// downloads (FLAC arrives tagged from the vendor) and playlist file
// generation in M3U and PLS formats.
package audio
