package ui

// Terminal layout constants used by banners and listings.

// Banner layout
const (
	BannerWidth = 50
	RuleChar    = "-"
)

// Text fragments
const (
	ListItemFormat      = "%d. %s"
	MenuItemFormat      = "%s. %s"
	ProgressLineFormat  = "[%d/%d] %s %3d%%"
	ClearToEndOfLine    = "\033[K"
	MiddleDotSeparator  = " · "
	SelectionSeparator  = ","
	WholePlaylistAnswer = "y"
)
