// Package classify decides a life category for a calendar event title using
// a layered rule system: user mappings, then the keyword table, then a default.
package classify

import (
	"strings"
	"unicode"
)

// stopWords are tokens that never make it into an extracted pattern:
// articles, pronouns, auxiliaries and common meeting-ish words.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
		"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
		"used", "my", "your", "his", "her", "its", "our", "their", "this", "that",
		"these", "those", "i", "you", "he", "she", "it", "we", "they", "me", "him",
		"us", "them", "what", "which", "who", "whom", "whose", "where", "when", "why",
		"how", "all", "each", "every", "both", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"re", "meeting", "call", "session", "event", "appointment",
	} {
		stopWords[w] = struct{}{}
	}
}

// maxPatternWords caps extracted patterns at three significant tokens.
const maxPatternWords = 3

// ExtractPattern derives a short, normalized pattern from an event title:
// lowercase, punctuation stripped, tokens of length <=2 and stop words
// dropped, at most three tokens joined by single spaces. The result can
// be empty (all-stopword titles); callers treat that as "no usable pattern".
func ExtractPattern(title string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, title)

	var words []string
	for _, w := range strings.Fields(stripped) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
		if len(words) == maxPatternWords {
			break
		}
	}

	return strings.Join(words, " ")
}

// TitleMatchesPattern reports whether every whitespace-separated token of
// the pattern is a substring of the title. Order and adjacency do not
// matter; matching is case-insensitive.
func TitleMatchesPattern(title, pattern string) bool {
	lowerTitle := strings.ToLower(title)
	for _, word := range strings.Fields(strings.ToLower(pattern)) {
		if !strings.Contains(lowerTitle, word) {
			return false
		}
	}
	return true
}
