package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rule returns a full-width horizontal rule
func Rule() string {
	return strings.Repeat(RuleChar, BannerWidth)
}

// Banner renders a section header: a rule, the title centered with a
// surrounding space, and another rule.
func Banner(title string) string {
	centered := lipgloss.PlaceHorizontal(BannerWidth, lipgloss.Center, " "+title+" ")
	return Rule() + "\n" + centered + "\n" + Rule()
}

// PrintBanner writes a banner set off by a blank line on each side
func PrintBanner(w io.Writer, title string) {
	fmt.Fprint(w, "\n"+Banner(title)+"\n\n")
}

// PrintMenuBanner writes a banner that a menu follows directly
func PrintMenuBanner(w io.Writer, title string) {
	fmt.Fprint(w, "\n"+Banner(title)+"\n")
}

// PrintRule writes a rule on its own line
func PrintRule(w io.Writer) {
	fmt.Fprintln(w, Rule())
}
