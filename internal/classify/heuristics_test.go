// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "testing"

func TestIsLikelyName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Jane Doe", true},
		{"Jane A. Doe", true},
		{"Jane Anne Marie Doe", true},
		{"Jane", false},                  // one word
		{"Jane Anne Marie Doe X", false}, // five words
		{"jane doe", false},              // lowercase
		{"Jane de Vries", false},         // lowercase particle
		{"Aaaaaaaaaaaaaaaaaaaaaaaaaa Bbbbbbbbbbbbbbbbbbbbbbbbbb", false}, // > 50 chars
		{"  Jane Doe  ", true},
		{"123 Main", false}, // digit-leading word
	}

	for _, tt := range tests {
		if got := isLikelyName(tt.text); got != tt.want {
			t.Errorf("isLikelyName(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsLikelyContactInfo(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"jane@example.com", true},
		{"reach me at jane.doe+hire@sub.example.co.uk today", true},
		{"jane@example.c", false}, // one-letter TLD
		{"555-123-4567", true},
		{"555.123.4567", true},
		{"555 123 4567", true},
		{"5551234567", true}, // separators optional
		{"call 12-34", false},
		{"https://example.com/jane", true},
		{"HTTP://EXAMPLE.COM", true}, // URL check is case-insensitive
		{"www.example.com", true},
		{"WWW.EXAMPLE.COM", true},
		{"no contact details here", false},
	}

	for _, tt := range tests {
		if got := isLikelyContactInfo(tt.text); got != tt.want {
			t.Errorf("isLikelyContactInfo(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectSectionHeading(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"EXPERIENCE", true},
		{"WORK EXPERIENCE", true},
		{"Work Experience", true},  // two capitalized words
		{"work experience", true},  // vocabulary match
		{"education", true},        // vocabulary match
		{"Built a thing.", false},  // short sentence, lowercase words
		{"references", true},
		{"not a heading at all really", false},
		{"2019-2023", false}, // no cased letters
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if got := detectSectionHeading(tt.text); got != tt.want {
			t.Errorf("detectSectionHeading(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectBulletPoint(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"• item", true},
		{"- item", true},
		{"* item", true},
		{"– item", true},
		{"— item", true},
		{"1. item", true},
		{"12. item", true},
		{"1) item", false},
		{"plain text", false},
		{"  - indented item", true},
	}

	for _, tt := range tests {
		if got := detectBulletPoint(tt.text); got != tt.want {
			t.Errorf("detectBulletPoint(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"• item one", "item one"},
		{"- item two", "item two"},
		{"* item three", "item three"},
		{"– dash item", "dash item"},
		{"— long dash item", "long dash item"},
		{"1. numbered item", "numbered item"},
		{"12.  wide numbered item", "wide numbered item"},
		{"  - indented item  ", "indented item"},
		{"no prefix", "no prefix"},
	}

	for _, tt := range tests {
		if got := stripBullet(tt.text); got != tt.want {
			t.Errorf("stripBullet(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
