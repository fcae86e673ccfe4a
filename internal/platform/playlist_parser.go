package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// URL parameters
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate    = "https://www.youtube.com/watch?v=%s"
	YouTubePlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
)

// ErrNotYouTubeURL is returned by YouTube-only helpers for other hosts
var ErrNotYouTubeURL = errors.New("not a YouTube URL")

var youTubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// IsPlaylistURL reports whether the URL carries a playlist parameter
func IsPlaylistURL(rawURL string) bool {
	return strings.Contains(rawURL, PlaylistURLParam)
}

// ExtractPlaylistID extracts the playlist ID from a YouTube playlist URL.
// Supported forms:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(rawURL string) (string, error) {
	if !IsPlaylistURL(rawURL) {
		return "", errors.New("URL does not contain playlist parameter")
	}

	parts := strings.SplitN(rawURL, PlaylistURLParam, 2)
	playlistID := parts[1]

	// Drop any parameters after the list value
	if strings.Contains(playlistID, PlaylistParamSeparator) {
		playlistID = strings.Split(playlistID, PlaylistParamSeparator)[0]
	}

	if playlistID == "" {
		return "", errors.New("empty playlist ID")
	}
	return playlistID, nil
}

// ValidateYouTubeURL checks that the URL points at a YouTube host
func ValidateYouTubeURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return errors.Wrapf(ErrNotYouTubeURL, "%s: %v", rawURL, err)
	}
	if !youTubeHosts[strings.ToLower(u.Host)] {
		return errors.Wrapf(ErrNotYouTubeURL, "%s", rawURL)
	}
	return nil
}

// VideoURL builds a watch URL for a video ID
func VideoURL(videoID string) string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, videoID)
}

// PlaylistURL builds a playlist URL for a playlist ID
func PlaylistURL(playlistID string) string {
	return fmt.Sprintf(YouTubePlaylistURLTemplate, playlistID)
}
