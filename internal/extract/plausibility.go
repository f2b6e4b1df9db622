package extract

import (
	"fmt"
	"strings"
)

// Cue phrases checked around each candidate surface form. Reject cues
// mark names acting as team, school, company or university labels;
// accept cues mark clear geographic usage.
var (
	rejectCues = []string{
		"%s team", "%s steelers", "%s pirates", "%s penguins",
		"university of %s",
		"%s company", "%s corporation", "%s inc", "%s llc",
		"%s school", "%s high school", "%s elementary",
	}

	acceptCues = []string{
		"in %s", "near %s", "from %s",
		"%s neighborhood", "%s community", "%s area", "%s residents",
		"%s officials", "%s government", "%s council",
	}
)

// Plausible reports whether surface reads as a place in text rather
// than part of a team, company, school or university name. Matching is
// case-insensitive on whole-word phrase boundaries.
func Plausible(surface, text string) bool {
	surfaceLower := strings.ToLower(strings.TrimSpace(surface))
	if surfaceLower == "" {
		return false
	}
	textLower := strings.ToLower(text)

	for _, cue := range rejectCues {
		if containsPhrase(textLower, fmt.Sprintf(cue, surfaceLower)) {
			return false
		}
	}

	// Accept cues and the default both admit the mention; a match just
	// settles it without scanning the rest.
	for _, cue := range acceptCues {
		if containsPhrase(textLower, fmt.Sprintf(cue, surfaceLower)) {
			return true
		}
	}

	return true
}

// containsPhrase reports whether phrase occurs in text with word
// boundaries on both sides, so "in oakland" does not match inside
// "within oakland".
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start

		end := idx + len(phrase)
		leftOK := idx == 0 || !isWordByte(text[idx-1])
		rightOK := end == len(text) || !isWordByte(text[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
