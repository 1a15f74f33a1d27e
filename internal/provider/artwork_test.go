package provider

import "testing"

func TestArtworkURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		size int
		want string
	}{
		{
			name: "dynamic placeholders",
			url:  "https://geo-media.beatport.com/image_size/{w}x{h}/cover.jpg",
			size: 800,
			want: "https://geo-media.beatport.com/image_size/800x800/cover.jpg",
		},
		{
			name: "hardcoded resolution rewritten",
			url:  "https://geo-media.beatport.com/image_size/500x500/cover.jpg",
			size: 800,
			want: "https://geo-media.beatport.com/image_size/800x800/cover.jpg",
		},
		{
			name: "oversize clamped to CDN maximum",
			url:  "https://geo-media.beatport.com/image_size/{w}x{h}/cover.jpg",
			size: 3000,
			want: "https://geo-media.beatport.com/image_size/1400x1400/cover.jpg",
		},
		{
			name: "four-digit resolution rewritten",
			url:  "https://geo-media.beatport.com/image_size/1400x1400/cover.jpg",
			size: 250,
			want: "https://geo-media.beatport.com/image_size/250x250/cover.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artworkURL(tt.url, tt.size); got != tt.want {
				t.Errorf("artworkURL(%q, %d) = %q, want %q", tt.url, tt.size, got, tt.want)
			}
		})
	}
}
