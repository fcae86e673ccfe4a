package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/ui"
)

// LogPrefix prefixes every log line
const LogPrefix = "ytpick: "

// options holds the command line flags
type options struct {
	configPath string
	backend    string
	verbose    bool
	language   string
	saveConfig bool
}

// NewRootCommand creates the ytpick command
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ytpick",
		Short: "Interactive YouTube video and playlist downloader",
		Long: `ytpick asks for a video or playlist URL, lets you pick which playlist
entries to fetch and at what quality, and saves the files to your Downloads
folder.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			configureLogging(settings.Verbose, os.Stderr)
			log.Printf("ytpick %s starting (backend %s)", version, settings.Backend)

			loc, err := newLocalization(settings)
			if err != nil {
				return err
			}
			log.Printf("Prompt language: %s", loc.GetCurrentLanguage())

			if opts.saveConfig {
				if err := saveSettings(settings, opts.configPath); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, settings, loc)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: user config dir/ytpick/config.yaml)")
	flags.StringVar(&opts.backend, "backend", "", "extraction backend: yt-dlp or native")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress details to stderr")
	flags.StringVar(&opts.language, "lang", "", "prompt language: en, ru, pt or system")
	flags.BoolVar(&opts.saveConfig, "save-config", false, "write the effective settings to the settings file before starting")

	return cmd
}

// Execute runs the root command
func Execute(version string) error {
	return NewRootCommand(version).ExecuteContext(context.Background())
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			log.Printf("No settings file: %v", err)
		}
		path = defaultPath
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		if err := settings.SetBackend(opts.backend); err != nil {
			return nil, err
		}
	}
	if flags.Changed("lang") {
		settings.SetLanguage(opts.language)
	}
	if opts.verbose {
		settings.Verbose = true
	}
	return settings, nil
}

// saveSettings writes settings to path, or to the default location when
// path is empty
func saveSettings(settings *config.Settings, path string) error {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	if err := settings.Save(path); err != nil {
		return errors.Wrapf(err, "failed to save settings to %s", path)
	}
	log.Printf("Settings saved to %s", path)
	return nil
}

// newLocalization returns the prompt texts for the configured language
func newLocalization(settings *config.Settings) (*ui.Localization, error) {
	loc := ui.NewLocalization()
	if err := loc.SetLanguage(settings.Language); err != nil {
		return nil, err
	}
	return loc, nil
}

// configureLogging routes log output to w when verbose, and discards it
// otherwise so prompts stay readable
func configureLogging(verbose bool, w io.Writer) {
	log.SetPrefix(LogPrefix)
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

// newExtractor builds the extractor for the configured backend
func newExtractor(settings *config.Settings) (download.Extractor, error) {
	switch settings.Backend {
	case config.BackendYTDLP:
		return platform.NewYTDLPExtractor(ytdlpOptions(settings)), nil
	case config.BackendNative:
		native := platform.NewNativeExtractor()
		native.SetPlaylistLimit(settings.PlaylistLimit)
		return native, nil
	}
	return nil, errors.Wrapf(config.ErrUnknownBackend, "%q", settings.Backend)
}

// ytdlpOptions maps settings onto the yt-dlp backend options
func ytdlpOptions(settings *config.Settings) platform.YTDLPOptions {
	return platform.YTDLPOptions{
		Executable:            settings.YTDLPPath,
		AutoInstall:           settings.AutoInstall,
		ForceGenericExtractor: settings.ForceGenericExtractor,
		Verbose:               settings.Verbose,
		PlaylistLimit:         settings.PlaylistLimit,
	}
}

func run(ctx context.Context, settings *config.Settings, loc *ui.Localization) error {
	extractor, err := newExtractor(settings)
	if err != nil {
		return err
	}

	downloadsDir, err := settings.GetDownloadDirectory()
	if err != nil {
		return err
	}
	svc := download.NewService(extractor, downloadsDir)

	out := colorable.NewColorableStdout()
	prompter, err := ui.NewReadlinePrompter(out)
	if err != nil {
		return err
	}
	defer prompter.Close()

	if err := ui.NewDriver(prompter, out, svc, loc).Run(ctx); err != nil {
		return err
	}

	if settings.RevealOnComplete {
		if err := platform.OpenDirectory(downloadsDir); err != nil {
			log.Printf("Could not open %s: %v", downloadsDir, err)
		}
	}
	return nil
}
