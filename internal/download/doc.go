package download

// Package download implements metadata listing and the download pipeline on
// top of an Extractor backend (yt-dlp via github.com/lrstanley/go-ytdlp, or
// the native YouTube client). Downloads run one at a time, in order, and the
// first failure stops the batch. Progress is propagated to the terminal UI
// through an update callback.
