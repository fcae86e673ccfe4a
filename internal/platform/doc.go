package platform

// Package platform contains OS integration and external tooling glue: the
// Downloads directory, opening it in the file manager, YouTube URL helpers,
// and the two extractor backends (yt-dlp via go-ytdlp, and the native
// ytget/ytdlp client).
