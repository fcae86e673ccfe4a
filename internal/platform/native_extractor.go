package platform

import (
	"context"
	"log"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytpick/internal/model"
)

// Native selectors understood by github.com/ytget/ytdlp/v2
const (
	NativeSelectorBest = "best"
)

var heightCapPattern = regexp.MustCompile(`height<=(\d+)`)

// NativeExtractor resolves and downloads YouTube URLs with the pure-Go
// client, without an external yt-dlp binary. Other sites are rejected.
type NativeExtractor struct {
	playlistLimit int // 0 means all items
}

// NewNativeExtractor creates a native YouTube extractor
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// SetPlaylistLimit caps the number of playlist items fetched
func (n *NativeExtractor) SetPlaylistLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	n.playlistLimit = limit
}

// Resolve lists playlist items or fetches single-video details. Playlist
// listing is always flat with this backend.
func (n *NativeExtractor) Resolve(ctx context.Context, url string, flat bool) (*model.MetadataResult, error) {
	if err := ValidateYouTubeURL(url); err != nil {
		return nil, err
	}

	if IsPlaylistURL(url) {
		playlistID, err := ExtractPlaylistID(url)
		if err != nil {
			return nil, errors.Wrapf(err, "could not extract playlist ID from %s", url)
		}
		entries, err := n.playlistEntries(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		return model.NewPlaylistResult(playlistID, "", PlaylistURL(playlistID), entries), nil
	}

	_, info, err := ytdlp.New().ResolveURL(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve video")
	}
	return model.NewVideoResult(info.ID, info.Title, url), nil
}

// Download fetches each URL in turn. Playlist URLs are expanded first since
// the native client downloads single videos only. Files are named after the
// video title inside the template's directory.
func (n *NativeExtractor) Download(ctx context.Context, urls []string, format, outputTemplate string, onProgress model.ProgressFunc) error {
	outputDir := filepath.Dir(outputTemplate)
	selector := NativeSelector(format)

	for _, url := range urls {
		videoURLs := []string{url}
		if IsPlaylistURL(url) {
			playlistID, err := ExtractPlaylistID(url)
			if err != nil {
				return errors.Wrapf(err, "could not extract playlist ID from %s", url)
			}
			entries, err := n.playlistEntries(ctx, playlistID)
			if err != nil {
				return err
			}
			videoURLs = model.EntryURLs(entries)
		}

		for _, videoURL := range videoURLs {
			if err := n.downloadOne(ctx, videoURL, selector, outputDir, onProgress); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *NativeExtractor) downloadOne(ctx context.Context, url, selector, outputDir string, onProgress model.ProgressFunc) error {
	started := time.Now()
	d := ytdlp.New().
		WithFormat(selector, "").
		WithOutputPath(outputDir)
	if onProgress != nil {
		d = d.WithProgress(func(p ytdlp.Progress) {
			onProgress(model.Progress{
				DownloadedBytes: p.DownloadedSize,
				TotalBytes:      p.TotalSize,
				Started:         started,
			})
		})
	}

	info, err := d.Download(ctx, url)
	if err != nil {
		return errors.Wrapf(err, "native download of %s failed", url)
	}
	log.Printf("Saved %q to %s", info.Title, outputDir)
	return nil
}

func (n *NativeExtractor) playlistEntries(ctx context.Context, playlistID string) ([]*model.Entry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, n.playlistLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get playlist items")
	}

	entries := make([]*model.Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, &model.Entry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   VideoURL(it.VideoID),
		})
	}
	return entries, nil
}

// NativeSelector translates a yt-dlp format selector into the native
// selector syntax. Height caps are kept, everything else becomes "best".
func NativeSelector(format string) string {
	if m := heightCapPattern.FindStringSubmatch(format); m != nil {
		return "height<=" + m[1]
	}
	return NativeSelectorBest
}
