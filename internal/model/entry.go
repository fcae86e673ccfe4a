package model

// ResultType tells whether a metadata result describes a playlist or a single video
type ResultType string

const (
	ResultTypePlaylist ResultType = "playlist"
	ResultTypeVideo    ResultType = "video"
)

// Entry represents a single video inside a playlist result
type Entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MetadataResult is what an extractor returns for a URL. A playlist carries
// its entries in order; a single video carries none.
type MetadataResult struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	URL     string     `json:"url"`
	Type    ResultType `json:"type"`
	Entries []*Entry   `json:"entries,omitempty"`
}

// NewVideoResult creates a single-video result
func NewVideoResult(id, title, url string) *MetadataResult {
	return &MetadataResult{
		ID:    id,
		Title: title,
		URL:   url,
		Type:  ResultTypeVideo,
	}
}

// NewPlaylistResult creates a playlist result. entries may be empty, the
// result is still a playlist.
func NewPlaylistResult(id, title, url string, entries []*Entry) *MetadataResult {
	if entries == nil {
		entries = make([]*Entry, 0)
	}
	return &MetadataResult{
		ID:      id,
		Title:   title,
		URL:     url,
		Type:    ResultTypePlaylist,
		Entries: entries,
	}
}

// IsPlaylist reports whether the result came with an entries sequence
func (r *MetadataResult) IsPlaylist() bool {
	return r != nil && r.Type == ResultTypePlaylist
}

// AddEntry appends an entry to the result
func (r *MetadataResult) AddEntry(entry *Entry) {
	r.Entries = append(r.Entries, entry)
}

// EntryCount returns the number of entries
func (r *MetadataResult) EntryCount() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// EntryURLs returns the URLs of the given entries, preserving order
func EntryURLs(entries []*Entry) []string {
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.URL)
	}
	return urls
}
