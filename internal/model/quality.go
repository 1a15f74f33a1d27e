package model

import "fmt"

// Quality is the abstract quality tier requested by the user.
//
// Tiers map onto the two encodings Beatport actually serves:
//
//	Minimum/Low/Medium -> AAC 128 kbps
//	High               -> AAC 256 kbps
//	Lossless/HiFi      -> FLAC (16-bit, 1411 kbps)
type Quality int

const (
	QualityMinimum Quality = iota
	QualityLow
	QualityMedium
	QualityHigh
	QualityLossless
	QualityHiFi
)

// ParseQuality parses a quality tier name as used in config files and flags.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "minimum":
		return QualityMinimum, nil
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	case "lossless":
		return QualityLossless, nil
	case "hifi":
		return QualityHiFi, nil
	}
	return 0, fmt.Errorf("unknown quality tier %q", s)
}

// String returns the config-file name of the tier.
func (q Quality) String() string {
	switch q {
	case QualityMinimum:
		return "minimum"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityLossless:
		return "lossless"
	case QualityHiFi:
		return "hifi"
	}
	return "unknown"
}

// Codec returns the codec Beatport serves for this tier.
func (q Quality) Codec() Codec {
	if q == QualityLossless || q == QualityHiFi {
		return CodecFLAC
	}
	return CodecAAC
}

// Bitrate returns the nominal bitrate in kbps for this tier.
func (q Quality) Bitrate() int {
	switch q {
	case QualityHigh:
		return 256
	case QualityLossless, QualityHiFi:
		return 1411
	default:
		return 128
	}
}

// BitDepth returns the sample bit depth, or 0 for lossy tiers where
// the notion does not apply.
func (q Quality) BitDepth() int {
	if q.Codec() == CodecFLAC {
		return 16
	}
	return 0
}

// Codec identifies the audio encoding of a download.
type Codec int

const (
	CodecAAC Codec = iota
	CodecFLAC
)

// String returns the codec name.
func (c Codec) String() string {
	if c == CodecFLAC {
		return "FLAC"
	}
	return "AAC"
}

// Extension returns the file extension for the codec, including the dot.
func (c Codec) Extension() string {
	if c == CodecFLAC {
		return ".flac"
	}
	return ".aac"
}
