package download

import (
	"context"

	"github.com/ytget/ytpick/internal/model"
)

// Extractor is the boundary to the external extraction/download library.
type Extractor interface {
	// Resolve returns metadata for url without downloading anything. With
	// flat set, playlist entries are listed without per-video extraction.
	Resolve(ctx context.Context, url string, flat bool) (*model.MetadataResult, error)

	// Download fetches urls with the given format selector, writing files
	// according to outputTemplate. It blocks until every URL is done.
	Download(ctx context.Context, urls []string, format, outputTemplate string, onProgress model.ProgressFunc) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// ListVideos resolves url into a playlist or a single video
	ListVideos(ctx context.Context, url string) (*model.MetadataResult, error)

	// DownloadVideos downloads url as a whole when selected is nil, or each
	// selected entry in order otherwise
	DownloadVideos(ctx context.Context, url, format string, selected []*model.Entry) ([]*model.DownloadTask, error)

	// GetAllTasks returns the tasks of the last batch in order
	GetAllTasks() []*model.DownloadTask

	// OutputTemplate returns the output path template passed to the backend
	OutputTemplate() string

	// DownloadDirectory returns the directory files are written to
	DownloadDirectory() string
}
