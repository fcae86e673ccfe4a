package platform

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
)

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name          string
		json          string
		isPlaylist    bool
		expectedCount int
		expectedURL   string
		check         func(t *testing.T, titles, urls []string)
	}{
		{
			name:        "single video",
			json:        `{"_type":"video","id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up","webpage_url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","ext":"webm"}`,
			isPlaylist:  false,
			expectedURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:        "single video without type or webpage URL",
			json:        `{"id":"x","title":"Clip"}`,
			isPlaylist:  false,
			expectedURL: "https://example.com/clip",
		},
		{
			name: "flat playlist",
			json: `{"_type":"playlist","id":"PL1","title":"Mix","webpage_url":"https://www.youtube.com/playlist?list=PL1","entries":[
				{"_type":"url","id":"a","title":"First","url":"https://www.youtube.com/watch?v=a"},
				{"_type":"url","id":"b","title":"Second","url":"https://www.youtube.com/watch?v=b"},
				{"_type":"url","id":"c","title":"Third","url":"https://www.youtube.com/watch?v=c"}]}`,
			isPlaylist:    true,
			expectedCount: 3,
			expectedURL:   "https://www.youtube.com/playlist?list=PL1",
			check: func(t *testing.T, titles, urls []string) {
				if titles[0] != "First" || titles[2] != "Third" {
					t.Errorf("unexpected titles %v", titles)
				}
				if urls[1] != "https://www.youtube.com/watch?v=b" {
					t.Errorf("unexpected urls %v", urls)
				}
			},
		},
		{
			name:          "empty entries is still a playlist",
			json:          `{"_type":"playlist","id":"PL2","title":"Empty","entries":[]}`,
			isPlaylist:    true,
			expectedCount: 0,
			expectedURL:   "https://example.com/clip",
		},
		{
			name:          "entries without type",
			json:          `{"id":"g","title":"Generic page","entries":[{"url":"https://cdn.example.com/v.mp4","title":"v"}]}`,
			isPlaylist:    true,
			expectedCount: 1,
			expectedURL:   "https://example.com/clip",
		},
		{
			name:          "entry falls back to webpage URL and URL as title",
			json:          `{"_type":"playlist","id":"PL3","entries":[{"id":"z","webpage_url":"https://www.youtube.com/watch?v=z"}]}`,
			isPlaylist:    true,
			expectedCount: 1,
			expectedURL:   "https://example.com/clip",
			check: func(t *testing.T, titles, urls []string) {
				if urls[0] != "https://www.youtube.com/watch?v=z" {
					t.Errorf("expected webpage URL fallback, got %s", urls[0])
				}
				if titles[0] != urls[0] {
					t.Errorf("expected URL as title, got %s", titles[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeMetadata([]byte(tt.json), "https://example.com/clip")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.IsPlaylist() != tt.isPlaylist {
				t.Errorf("expected IsPlaylist %v, got %v", tt.isPlaylist, result.IsPlaylist())
			}
			if result.EntryCount() != tt.expectedCount {
				t.Errorf("expected %d entries, got %d", tt.expectedCount, result.EntryCount())
			}
			if result.URL != tt.expectedURL {
				t.Errorf("expected URL %s, got %s", tt.expectedURL, result.URL)
			}
			if tt.check != nil {
				var titles, urls []string
				for _, e := range result.Entries {
					titles = append(titles, e.Title)
					urls = append(urls, e.URL)
				}
				tt.check(t, titles, urls)
			}
		})
	}
}

func TestDecodeMetadataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty output", ""},
		{"whitespace only", "  \n"},
		{"not json", "ERROR: Unsupported URL"},
		{"truncated json", `{"_type":"playlist","entries":[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeMetadata([]byte(tt.data), "https://example.com"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewYTDLPExtractor(t *testing.T) {
	y := NewYTDLPExtractor(YTDLPOptions{Executable: "/usr/local/bin/yt-dlp", ForceGenericExtractor: true})

	if y.progressInterval != DefaultProgressInterval {
		t.Errorf("expected progress interval %v, got %v", DefaultProgressInterval, y.progressInterval)
	}
	if !y.opts.ForceGenericExtractor {
		t.Error("expected generic extractor option to be kept")
	}
	if y.command() == nil {
		t.Error("expected a command")
	}
}

func TestEnsureInstalledDisabled(t *testing.T) {
	y := NewYTDLPExtractor(YTDLPOptions{})

	if err := y.ensureInstalled(context.Background()); err != nil {
		t.Errorf("expected no error with auto-install off, got %v", err)
	}
}

func TestCommandLine(t *testing.T) {
	y := NewYTDLPExtractor(YTDLPOptions{Executable: "/opt/bin/yt-dlp"})
	dl := y.command().
		Format("best").
		ForceOverwrites().
		Output("/tmp/Downloads/%(title)s.%(ext)s")

	argv := y.commandLine(dl, "https://youtu.be/x")

	if argv[0] != "/opt/bin/yt-dlp" {
		t.Errorf("expected executable first, got %q", argv[0])
	}
	if argv[len(argv)-1] != "https://youtu.be/x" {
		t.Errorf("expected URL last, got %q", argv[len(argv)-1])
	}

	joined := strings.Join(argv, " ")
	for _, want := range []string{"--format best", "--force-overwrites", "--output /tmp/Downloads/%(title)s.%(ext)s"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in %q", want, joined)
		}
	}
}

func TestCommandLineDefaultExecutable(t *testing.T) {
	y := NewYTDLPExtractor(YTDLPOptions{})

	argv := y.commandLine(y.command().SkipDownload())
	if argv[0] != "yt-dlp" {
		t.Errorf("expected yt-dlp, got %q", argv[0])
	}
	if len(argv) != 2 || argv[1] != "--skip-download" {
		t.Errorf("unexpected argv %q", argv)
	}
}

func TestLogCommandVerbose(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	quiet := NewYTDLPExtractor(YTDLPOptions{})
	quiet.logCommand(quiet.command().Format("best"), "https://youtu.be/x")
	if buf.Len() != 0 {
		t.Errorf("expected nothing logged without verbose, got %q", buf.String())
	}

	verbose := NewYTDLPExtractor(YTDLPOptions{Verbose: true})
	verbose.logCommand(verbose.command().Output("/tmp/My Videos/%(title)s.%(ext)s"), "https://youtu.be/x")
	if !strings.Contains(buf.String(), "'/tmp/My Videos/%(title)s.%(ext)s'") {
		t.Errorf("expected quoted output template in log, got %q", buf.String())
	}
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name    string
		opts    YTDLPOptions
		flat    bool
		want    []string
		notWant []string
	}{
		{
			name:    "defaults",
			opts:    YTDLPOptions{ForceGenericExtractor: true},
			flat:    true,
			want:    []string{"--dump-single-json", "--skip-download", "--flat-playlist", "--force-generic-extractor"},
			notWant: []string{"--playlist-end"},
		},
		{
			name:    "playlist limit",
			opts:    YTDLPOptions{PlaylistLimit: 10},
			flat:    true,
			want:    []string{"--flat-playlist", "--playlist-end 10"},
			notWant: []string{"--force-generic-extractor"},
		},
		{
			name:    "not flat",
			opts:    YTDLPOptions{},
			want:    []string{"--dump-single-json"},
			notWant: []string{"--flat-playlist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := NewYTDLPExtractor(tt.opts)
			joined := strings.Join(y.commandLine(y.resolveCommand(tt.flat)), " ")

			for _, flag := range tt.want {
				if !strings.Contains(joined, flag) {
					t.Errorf("expected %q in %q", flag, joined)
				}
			}
			for _, flag := range tt.notWant {
				if strings.Contains(joined, flag) {
					t.Errorf("did not expect %q in %q", flag, joined)
				}
			}
		})
	}
}
