package ui

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ytget/ytpick/internal/model"
)

// Selection errors
var (
	ErrInvalidIndex    = errors.New("invalid video number")
	ErrIndexOutOfRange = errors.New("video number out of range")
)

// WantsWholePlaylist reports whether the answer to the whole-playlist
// question is yes
func WantsWholePlaylist(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == WholePlaylistAnswer
}

// ParseSelection turns a comma-separated list of 1-based numbers into the
// matching entries, in input order. Duplicates are kept.
func ParseSelection(input string, entries []*model.Entry) ([]*model.Entry, error) {
	pieces := strings.Split(input, SelectionSeparator)
	selected := make([]*model.Entry, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidIndex, "%q", piece)
		}

		index := n - 1
		if index < 0 || index >= len(entries) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "%d (numbering starts at 1, playlist has %d videos)", n, len(entries))
		}
		selected = append(selected, entries[index])
	}
	return selected, nil
}
