package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/alessio/shellescape"
	"github.com/cockroachdb/errors"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytpick/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is reported
const DefaultProgressInterval = 500 * time.Millisecond

// yt-dlp result types
const (
	ytdlpTypePlaylist   = "playlist"
	ytdlpTypeMultiVideo = "multi_video"
)

// YTDLPOptions configures the yt-dlp backend
type YTDLPOptions struct {
	Executable            string // yt-dlp binary; empty or "yt-dlp" uses PATH / the managed install
	AutoInstall           bool   // download yt-dlp if it is missing
	ForceGenericExtractor bool
	Verbose               bool // log the equivalent shell command before each run
	PlaylistLimit         int  // list at most this many playlist entries, 0 for all
}

// YTDLPExtractor resolves and downloads through the yt-dlp binary
type YTDLPExtractor struct {
	opts             YTDLPOptions
	progressInterval time.Duration

	installOnce sync.Once
	installErr  error
}

// NewYTDLPExtractor creates a yt-dlp backed extractor
func NewYTDLPExtractor(opts YTDLPOptions) *YTDLPExtractor {
	return &YTDLPExtractor{
		opts:             opts,
		progressInterval: DefaultProgressInterval,
	}
}

// Resolve runs yt-dlp in JSON dump mode and decodes the result
func (y *YTDLPExtractor) Resolve(ctx context.Context, url string, flat bool) (*model.MetadataResult, error) {
	if err := y.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	dl := y.resolveCommand(flat)
	y.logCommand(dl, url)
	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "yt-dlp metadata extraction failed")
	}

	return decodeMetadata([]byte(res.Stdout), url)
}

// Download runs yt-dlp once for all urls
func (y *YTDLPExtractor) Download(ctx context.Context, urls []string, format, outputTemplate string, onProgress model.ProgressFunc) error {
	if err := y.ensureInstalled(ctx); err != nil {
		return err
	}

	dl := y.command().
		Format(format).
		ForceOverwrites().
		Output(outputTemplate)

	if onProgress != nil {
		dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(progressFromUpdate(update))
		})
	}

	y.logCommand(dl, urls...)
	if _, err := dl.Run(ctx, urls...); err != nil {
		return errors.Wrap(err, "yt-dlp download failed")
	}
	return nil
}

// resolveCommand builds the metadata-only command used by Resolve
func (y *YTDLPExtractor) resolveCommand(flat bool) *ytdlp.Command {
	dl := y.command().
		DumpSingleJSON().
		SkipDownload()
	if flat {
		dl = dl.FlatPlaylist()
	}
	if y.opts.ForceGenericExtractor {
		dl = dl.ForceGenericExtractor()
	}
	if y.opts.PlaylistLimit > 0 {
		dl = dl.PlaylistEnd(y.opts.PlaylistLimit)
	}
	return dl
}

// command returns a fresh yt-dlp command with the configured executable
func (y *YTDLPExtractor) command() *ytdlp.Command {
	dl := ytdlp.New()
	if exe := strings.TrimSpace(y.opts.Executable); exe != "" && exe != "yt-dlp" {
		dl = dl.SetExecutable(exe)
	}
	return dl
}

// ensureInstalled installs yt-dlp once per process when auto-install is on
func (y *YTDLPExtractor) ensureInstalled(ctx context.Context) error {
	if !y.opts.AutoInstall {
		return nil
	}
	y.installOnce.Do(func() {
		log.Printf("Ensuring yt-dlp is installed...")
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			y.installErr = errors.Wrap(err, "failed to install yt-dlp")
		}
	})
	return y.installErr
}

func (y *YTDLPExtractor) logCommand(dl *ytdlp.Command, args ...string) {
	if !y.opts.Verbose {
		return
	}
	log.Printf("Running: %s", shellescape.QuoteCommand(y.commandLine(dl, args...)))
}

// commandLine returns the argv yt-dlp is started with for dl and args
func (y *YTDLPExtractor) commandLine(dl *ytdlp.Command, args ...string) []string {
	exe := strings.TrimSpace(y.opts.Executable)
	if exe == "" {
		exe = "yt-dlp"
	}

	argv := []string{exe}
	for _, flag := range dl.GetFlagConfig().ToFlags() {
		argv = append(argv, flag.Raw()...)
	}
	return append(argv, args...)
}

func progressFromUpdate(update ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETA:             update.ETA(),
		Started:         update.Started,
	}
	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}
	return p
}

// ytdlpInfo is the subset of yt-dlp's --dump-single-json output we use.
// Entries is a pointer so that a missing key can be told from an empty list.
type ytdlpInfo struct {
	Type       string        `json:"_type"`
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	URL        string        `json:"url"`
	WebpageURL string        `json:"webpage_url"`
	Entries    *[]ytdlpEntry `json:"entries"`
}

type ytdlpEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	WebpageURL string `json:"webpage_url"`
}

// decodeMetadata converts yt-dlp JSON into a MetadataResult
func decodeMetadata(data []byte, requestedURL string) (*model.MetadataResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("yt-dlp returned no metadata")
	}

	var info ytdlpInfo
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode yt-dlp metadata")
	}

	url := info.WebpageURL
	if url == "" {
		url = requestedURL
	}

	isPlaylist := info.Entries != nil || info.Type == ytdlpTypePlaylist || info.Type == ytdlpTypeMultiVideo
	if !isPlaylist {
		return model.NewVideoResult(info.ID, info.Title, url), nil
	}

	result := model.NewPlaylistResult(info.ID, info.Title, url, nil)
	if info.Entries == nil {
		return result, nil
	}
	for _, e := range *info.Entries {
		entryURL := e.URL
		if entryURL == "" {
			entryURL = e.WebpageURL
		}
		title := e.Title
		if title == "" {
			title = entryURL
		}
		result.AddEntry(&model.Entry{ID: e.ID, Title: title, URL: entryURL})
	}
	return result, nil
}
