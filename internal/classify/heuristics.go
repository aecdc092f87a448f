// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// emailPattern matches local@domain.tld with a TLD of two or more letters.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePattern matches 3-3-4 digit groups separated by space, dot, or hyphen.
	phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)

	// urlPattern is applied to lowercased text.
	urlPattern = regexp.MustCompile(`https?://|www\.`)

	// numberedItem matches "1."-style list numbering at the start of a line.
	numberedItem = regexp.MustCompile(`^\d+\.`)

	bulletPrefix = regexp.MustCompile(`^[•\-\*–—]\s*`)
	numberPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// bulletGlyphs are the characters that introduce an unordered list item.
var bulletGlyphs = []string{"•", "-", "*", "–", "—"}

// sectionVocabulary lists headings that resumes conventionally use, matched
// against the whole lowercased fragment.
var sectionVocabulary = map[string]bool{
	"education":       true,
	"experience":      true,
	"work experience": true,
	"skills":          true,
	"projects":        true,
	"certifications":  true,
	"awards":          true,
	"publications":    true,
	"summary":         true,
	"objective":       true,
	"contact":         true,
	"references":      true,
}

// isLikelyName reports whether text reads like a person's name: two to four
// words, every word starting with an uppercase letter, at most 50 characters
// in total.
func isLikelyName(text string) bool {
	text = strings.TrimSpace(text)
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return utf8.RuneCountInString(text) <= 50
}

// isLikelyContactInfo reports whether text contains an email address, a
// phone number, or a URL. Only the URL check is case-insensitive.
func isLikelyContactInfo(text string) bool {
	return emailPattern.MatchString(text) ||
		phonePattern.MatchString(text) ||
		urlPattern.MatchString(strings.ToLower(text))
}

// detectSectionHeading reports whether text reads like a section heading:
// fully uppercase, or at most three words each starting with an uppercase
// letter, or an exact match against the section vocabulary. The per-word
// capitalization requirement keeps short sentences like "Built a thing."
// out of the heading class.
func detectSectionHeading(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if isAllUpper(text) {
		return true
	}
	words := strings.Fields(text)
	if len(words) <= 3 && allWordsCapitalized(words) {
		return true
	}
	return sectionVocabulary[strings.ToLower(text)]
}

// allWordsCapitalized reports whether every word starts with an uppercase
// letter.
func allWordsCapitalized(words []string) bool {
	for _, w := range words {
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return len(words) > 0
}

// isAllUpper reports whether s contains at least one cased letter and no
// lowercase ones.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// detectBulletPoint reports whether text starts with a bullet glyph or
// "1."-style numbering.
func detectBulletPoint(text string) bool {
	text = strings.TrimSpace(text)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(text, g) {
			return true
		}
	}
	return numberedItem.MatchString(text)
}

// stripBullet removes the leading bullet glyph or numbering from a list
// item. It trusts the caller's bullet classification and does not re-check it.
func stripBullet(text string) string {
	text = strings.TrimSpace(text)
	text = bulletPrefix.ReplaceAllString(text, "")
	return numberPrefix.ReplaceAllString(text, "")
}
