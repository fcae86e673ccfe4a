package platform

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestNativeSelector(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"bestvideo+bestaudio/best", "best"},
		{"bestvideo[height<=1080]+bestaudio/best[height<=1080]", "height<=1080"},
		{"bestvideo[height<=720]+bestaudio/best[height<=720]", "height<=720"},
		{"bestvideo[height<=480]+bestaudio/best[height<=480]", "height<=480"},
		{"best", "best"},
		{"", "best"},
	}

	for _, tt := range tests {
		if got := NativeSelector(tt.format); got != tt.expected {
			t.Errorf("NativeSelector(%q) = %q, expected %q", tt.format, got, tt.expected)
		}
	}
}

func TestNativeExtractorSetPlaylistLimit(t *testing.T) {
	n := NewNativeExtractor()
	if n.playlistLimit != 0 {
		t.Errorf("expected unlimited playlist by default, got %d", n.playlistLimit)
	}

	n.SetPlaylistLimit(25)
	if n.playlistLimit != 25 {
		t.Errorf("expected limit 25, got %d", n.playlistLimit)
	}

	n.SetPlaylistLimit(-3)
	if n.playlistLimit != 0 {
		t.Errorf("expected negative limit to clamp to 0, got %d", n.playlistLimit)
	}
}

func TestNativeExtractorRejectsOtherSites(t *testing.T) {
	n := NewNativeExtractor()

	_, err := n.Resolve(context.Background(), "https://vimeo.com/12345", true)
	if !errors.Is(err, ErrNotYouTubeURL) {
		t.Errorf("expected ErrNotYouTubeURL, got %v", err)
	}
}
