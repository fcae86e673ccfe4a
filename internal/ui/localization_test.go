package ui

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/ytget/ytpick/internal/config"
)

func TestNewLocalization(t *testing.T) {
	loc := NewLocalization()

	if loc.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got '%s'", loc.GetCurrentLanguage())
	}
	if loc.GetText(KeySelectQuality) != "SELECT VIDEO QUALITY" {
		t.Errorf("Unexpected text: %s", loc.GetText(KeySelectQuality))
	}
}

func TestSetLanguage(t *testing.T) {
	loc := NewLocalization()

	if err := loc.SetLanguage("ru"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loc.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected 'ru', got '%s'", loc.GetCurrentLanguage())
	}

	// Unknown languages are rejected and leave the language unchanged
	if err := loc.SetLanguage("xx"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Expected ErrUnknownLanguage, got %v", err)
	}
	if loc.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay 'ru', got '%s'", loc.GetCurrentLanguage())
	}
}

func TestSetLanguageSystem(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")

	loc := NewLocalization()
	if err := loc.SetLanguage(SystemLanguage); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loc.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected 'pt' from LANG, got '%s'", loc.GetCurrentLanguage())
	}

	for _, locale := range []string{"C", "de_DE.UTF-8"} {
		t.Setenv("LANG", locale)
		loc = NewLocalization()
		if err := loc.SetLanguage(SystemLanguage); err != nil {
			t.Fatalf("Expected no error for %s, got %v", locale, err)
		}
		if loc.GetCurrentLanguage() != "en" {
			t.Errorf("Expected 'en' for %s, got '%s'", locale, loc.GetCurrentLanguage())
		}
	}
}

func TestGetTextFallback(t *testing.T) {
	loc := NewLocalization()
	if err := loc.SetLanguage("pt"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if loc.GetText("no_such_key") != "no_such_key" {
		t.Error("Expected unknown key to be returned as is")
	}

	// Remove one translation to exercise the English fallback
	delete(loc.texts["pt"], KeyETA)
	if loc.GetText(KeyETA) != "ETA" {
		t.Errorf("Expected English fallback, got '%s'", loc.GetText(KeyETA))
	}
}

func TestTranslationsComplete(t *testing.T) {
	loc := NewLocalization()

	for lang := range loc.GetAvailableLanguages() {
		texts, ok := loc.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key := range loc.texts["en"] {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}

	for _, tier := range config.QualityTiers() {
		if loc.GetText(tier.Label) == tier.Label {
			t.Errorf("Quality label %s has no text", tier.Label)
		}
	}
}
