package provider

import (
	"regexp"
	"strconv"
	"strings"
)

// maxArtworkSize is the largest edge length the image CDN renders.
const maxArtworkSize = 1400

// fixedResolution matches a hardcoded WxH token inside an artwork URL,
// e.g. "500x500".
var fixedResolution = regexp.MustCompile(`\d{3,4}x\d{3,4}`)

// artworkURL renders a vendor artwork URL at the requested square size.
//
// Dynamic URIs carry {w} and {h} placeholders which are filled directly.
// URLs with a hardcoded resolution token are first rewritten into the
// placeholder form, so both shapes come out at the requested size. Sizes
// above the CDN maximum are clamped to 1400.
func artworkURL(coverURL string, size int) string {
	if size > maxArtworkSize {
		size = maxArtworkSize
	}

	if fixedResolution.MatchString(coverURL) {
		coverURL = fixedResolution.ReplaceAllString(coverURL, "{w}x{h}")
	}

	edge := strconv.Itoa(size)
	coverURL = strings.ReplaceAll(coverURL, "{w}", edge)
	return strings.ReplaceAll(coverURL, "{h}", edge)
}
