package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/model"
)

// Driver runs one interactive download session
type Driver struct {
	prompter Prompter
	out      io.Writer
	svc      download.Downloader
	loc      *Localization
	progress *ProgressPrinter
}

// NewDriver creates a driver and registers its progress printer with svc
func NewDriver(prompter Prompter, out io.Writer, svc download.Downloader, loc *Localization) *Driver {
	d := &Driver{
		prompter: prompter,
		out:      out,
		svc:      svc,
		loc:      loc,
		progress: NewProgressPrinter(out, loc),
	}
	svc.SetUpdateCallback(d.progress.Update)
	return d
}

// Run walks through URL entry, playlist selection and quality choice, then
// downloads. Any error ends the session before the next step.
func (d *Driver) Run(ctx context.Context) error {
	PrintBanner(d.out, d.loc.GetText(KeyAppTitle))

	url, err := d.prompter.Prompt(d.loc.GetText(KeyEnterURL))
	if err != nil {
		return err
	}
	url = strings.TrimSpace(url)

	fmt.Fprint(d.out, "\n"+d.loc.GetText(KeyCheckingURL)+"\n\n")
	result, err := d.svc.ListVideos(ctx, url)
	if err != nil {
		return err
	}

	selected, err := d.chooseEntries(result)
	if err != nil {
		return err
	}

	format, err := d.chooseFormat()
	if err != nil {
		return err
	}

	PrintBanner(d.out, d.loc.GetText(KeyDownloading))
	if _, err := d.svc.DownloadVideos(ctx, url, format, selected); err != nil {
		return err
	}

	PrintBanner(d.out, d.loc.GetText(KeyDownloadCompleted))
	fmt.Fprintf(d.out, "%s %s\n", d.loc.GetText(KeySavedTo), d.svc.DownloadDirectory())
	return nil
}

// chooseEntries returns nil for "download the URL as is", or the entries the
// user picked from a playlist
func (d *Driver) chooseEntries(result *model.MetadataResult) ([]*model.Entry, error) {
	if !result.IsPlaylist() {
		fmt.Fprintln(d.out, d.loc.GetText(KeyNotPlaylist))
		return nil, nil
	}

	PrintBanner(d.out, d.loc.GetText(KeyPlaylistDetected))
	answer, err := d.prompter.Prompt(d.loc.GetText(KeyDownloadEntire))
	if err != nil {
		return nil, err
	}
	if WantsWholePlaylist(answer) {
		return nil, nil
	}

	fmt.Fprint(d.out, "\n"+d.loc.GetText(KeyAvailableVideos)+"\n")
	PrintRule(d.out)
	for i, entry := range result.Entries {
		fmt.Fprintf(d.out, ListItemFormat+"\n", i+1, entry.Title)
	}
	PrintRule(d.out)
	fmt.Fprintln(d.out)

	input, err := d.prompter.Prompt(d.loc.GetText(KeyEnterIndices))
	if err != nil {
		return nil, err
	}
	selected, err := ParseSelection(input, result.Entries)
	if err != nil {
		return nil, err
	}

	log.Printf("Selected %d of %d playlist entries", len(selected), result.EntryCount())
	return selected, nil
}

// chooseFormat shows the quality menu and maps the raw answer to a selector
func (d *Driver) chooseFormat() (string, error) {
	PrintMenuBanner(d.out, d.loc.GetText(KeySelectQuality))
	for _, tier := range config.QualityTiers() {
		fmt.Fprintf(d.out, MenuItemFormat+"\n", tier.Choice, d.loc.GetText(tier.Label))
	}
	PrintRule(d.out)

	choice, err := d.prompter.Prompt(d.loc.GetText(KeyEnterQuality))
	if err != nil {
		return "", err
	}

	format := config.FormatSelector(choice)
	log.Printf("Quality choice %q -> format %q", choice, format)
	return format, nil
}
