package audio

import (
	"strings"
	"testing"
)

var testEntries = []PlaylistEntry{
	{FileName: "01 Amelie Lens - Darkside (Extended Mix).flac", Title: "Amelie Lens - Darkside (Extended Mix)", Duration: 421},
	{FileName: "02 Regal - Still Raving.flac", Title: "Regal - Still Raving", Duration: 380},
}

func TestCreateM3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)
	content := creator.CreatePlaylist(testEntries)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	want := []string{
		"#EXTM3U",
		"#EXTINF:421,Amelie Lens - Darkside (Extended Mix)",
		"01 Amelie Lens - Darkside (Extended Mix).flac",
		"#EXTINF:380,Regal - Still Raving",
		"02 Regal - Still Raving.flac",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), content)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCreateM3USimple(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)
	content := creator.CreatePlaylist(testEntries)

	if strings.Contains(content, "#EXT") {
		t.Errorf("simple M3U contains extended directives:\n%s", content)
	}
	if !strings.HasPrefix(content, "01 Amelie Lens") {
		t.Errorf("unexpected first line:\n%s", content)
	}
}

func TestCreatePLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)
	content := creator.CreatePlaylist(testEntries)

	for _, want := range []string{
		"[playlist]",
		"File1=01 Amelie Lens - Darkside (Extended Mix).flac",
		"Title2=Regal - Still Raving",
		"Length1=421",
		"NumberOfEntries=2",
		"Version=2",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS output missing %q:\n%s", want, content)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatM3U.Extension(); got != ".m3u" {
		t.Errorf("FormatM3U.Extension() = %q", got)
	}
	if got := FormatPLS.Extension(); got != ".pls" {
		t.Errorf("FormatPLS.Extension() = %q", got)
	}
}
