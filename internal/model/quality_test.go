package model

import "testing"

func TestQuality_Mapping(t *testing.T) {
	tests := []struct {
		quality  Quality
		codec    Codec
		bitrate  int
		bitDepth int
	}{
		{QualityMinimum, CodecAAC, 128, 0},
		{QualityLow, CodecAAC, 128, 0},
		{QualityMedium, CodecAAC, 128, 0},
		{QualityHigh, CodecAAC, 256, 0},
		{QualityLossless, CodecFLAC, 1411, 16},
		{QualityHiFi, CodecFLAC, 1411, 16},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			if got := tt.quality.Codec(); got != tt.codec {
				t.Errorf("Codec() = %v, want %v", got, tt.codec)
			}
			if got := tt.quality.Bitrate(); got != tt.bitrate {
				t.Errorf("Bitrate() = %d, want %d", got, tt.bitrate)
			}
			if got := tt.quality.BitDepth(); got != tt.bitDepth {
				t.Errorf("BitDepth() = %d, want %d", got, tt.bitDepth)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	for _, q := range []Quality{QualityMinimum, QualityLow, QualityMedium, QualityHigh, QualityLossless, QualityHiFi} {
		got, err := ParseQuality(q.String())
		if err != nil {
			t.Fatalf("ParseQuality(%q) returned error: %v", q.String(), err)
		}
		if got != q {
			t.Errorf("ParseQuality(%q) = %v, want %v", q.String(), got, q)
		}
	}

	if _, err := ParseQuality("ultra"); err == nil {
		t.Error("ParseQuality(\"ultra\") expected error, got none")
	}
}

func TestCodec_Extension(t *testing.T) {
	if got := CodecAAC.Extension(); got != ".aac" {
		t.Errorf("CodecAAC.Extension() = %q, want %q", got, ".aac")
	}
	if got := CodecFLAC.Extension(); got != ".flac" {
		t.Errorf("CodecFLAC.Extension() = %q, want %q", got, ".flac")
	}
}
