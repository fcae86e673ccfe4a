package model

import (
	"fmt"
	"strings"
	"time"
)

// ProgressFunc receives progress reports from a backend
type ProgressFunc func(Progress)

// Progress is a backend-neutral progress report for the running download call
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64
	ETA             time.Duration
	Title           string // title reported by the backend, if known
	Started         time.Time
}

// Percent returns completion in the 0..100 range, or 0 if the total is unknown
func (p Progress) Percent() float64 {
	if p.TotalBytes <= 0 {
		return 0
	}
	return float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
}

// DownloadTask represents one download call issued to the extractor
type DownloadTask struct {
	ID             string
	Index          int // 1-based position in the batch
	BatchSize      int // number of tasks in the batch
	URL            string
	Title          string // entry or video title, if known before download
	Format         string // format selector passed to the backend
	OutputTemplate string // output path template passed to the backend
	Status         TaskStatus
	Progress       float64   // 0.0 to 1.0
	Percent        int       // 0 to 100
	Speed          string    // human readable speed (e.g., "1.2MB/s")
	ETASec         int       // ETA in seconds, -1 if unknown
	LastError      string    // last error message if any
	StartedAt      time.Time // when download started
	FinishedAt     time.Time // when download finished
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns the title if it is a real one, the URL otherwise
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}
	return dt.URL
}

// ApplyProgress copies a progress report into the task
func (dt *DownloadTask) ApplyProgress(p Progress) {
	if p.TotalBytes > 0 {
		percent := p.Percent()
		dt.Percent = int(percent)
		dt.Progress = percent / 100.0
	}

	if !p.Started.IsZero() {
		elapsed := time.Since(p.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(p.DownloadedBytes) / elapsed.Seconds()
			dt.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if p.ETA > 0 {
		dt.ETASec = int(p.ETA.Seconds())
	}

	if p.Title != "" && dt.Title == "" {
		dt.Title = p.Title
	}
}
