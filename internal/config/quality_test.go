package config

import "testing"

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		name     string
		choice   string
		expected string
	}{
		{"best", "1", "bestvideo+bestaudio/best"},
		{"1080p", "2", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
		{"720p", "3", "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{"480p", "4", "bestvideo[height<=480]+bestaudio/best[height<=480]"},
		{"empty input", "", "best"},
		{"out of range", "5", "best"},
		{"zero", "0", "best"},
		{"text", "high", "best"},
		{"padded input is not trimmed", " 1", "best"},
		{"trailing space is not trimmed", "2 ", "best"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSelector(tt.choice); got != tt.expected {
				t.Errorf("FormatSelector(%q) = %q, expected %q", tt.choice, got, tt.expected)
			}
		})
	}
}

func TestQualityTiers(t *testing.T) {
	tiers := QualityTiers()
	if len(tiers) != 4 {
		t.Fatalf("expected 4 tiers, got %d", len(tiers))
	}

	for i, tier := range tiers {
		expectedChoice := string(rune('1' + i))
		if tier.Choice != expectedChoice {
			t.Errorf("tier %d: expected choice %s, got %s", i, expectedChoice, tier.Choice)
		}
		if FormatSelector(tier.Choice) != tier.Selector {
			t.Errorf("tier %s selector does not round-trip", tier.Choice)
		}
	}

	// Returned slice is a copy
	tiers[0].Selector = "changed"
	if FormatSelector("1") != SelectorBest {
		t.Error("mutating QualityTiers result changed the table")
	}
}
