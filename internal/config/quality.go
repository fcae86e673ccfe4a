package config

// QualityTier is one entry of the quality menu
type QualityTier struct {
	Choice   string // menu input that selects the tier
	Label    string // localization key of the menu label
	Selector string // yt-dlp format selector
}

// Format selectors understood by yt-dlp
const (
	SelectorBest  = "bestvideo+bestaudio/best"
	Selector1080p = "bestvideo[height<=1080]+bestaudio/best[height<=1080]"
	Selector720p  = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	Selector480p  = "bestvideo[height<=480]+bestaudio/best[height<=480]"

	// SelectorFallback is used for any unrecognized menu input
	SelectorFallback = "best"
)

// Menu label keys, resolved by the ui localization table
const (
	LabelQualityBest   = "quality_best"
	LabelQualityHigh   = "quality_high"
	LabelQualityMedium = "quality_medium"
	LabelQualityLow    = "quality_low"
)

var qualityTiers = []QualityTier{
	{Choice: "1", Label: LabelQualityBest, Selector: SelectorBest},
	{Choice: "2", Label: LabelQualityHigh, Selector: Selector1080p},
	{Choice: "3", Label: LabelQualityMedium, Selector: Selector720p},
	{Choice: "4", Label: LabelQualityLow, Selector: Selector480p},
}

// QualityTiers returns the menu tiers in display order
func QualityTiers() []QualityTier {
	tiers := make([]QualityTier, len(qualityTiers))
	copy(tiers, qualityTiers)
	return tiers
}

// FormatSelector maps raw menu input to a format selector. The input is
// matched verbatim; anything that is not exactly "1".."4" yields "best".
func FormatSelector(choice string) string {
	for _, tier := range qualityTiers {
		if tier.Choice == choice {
			return tier.Selector
		}
	}
	return SelectorFallback
}
