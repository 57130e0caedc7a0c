package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// MaxExtractedKeywords bounds the raw extraction pass.
	MaxExtractedKeywords = 15

	// MaxSuggestedKeywords bounds the derived suggestion list.
	MaxSuggestedKeywords = 5

	// suggestionSeedKeywords is how many leading keywords feed the
	// suggestion templates.
	suggestionSeedKeywords = 3
)

// stopWords is a fixed set of articles, prepositions and conjunctions
// that carry no discoverability value on their own.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"at": {}, "by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"of": {}, "off": {}, "on": {}, "onto": {}, "out": {}, "over": {},
	"to": {}, "up": {}, "with": {}, "as": {}, "about": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "it": {}, "its": {},
}

// suggestionTemplates are the fixed phrase templates combined with the
// leading extracted keywords. %s is the keyword.
var suggestionTemplates = []string{
	"%s tutorial",
	"best %s",
	"%s tips",
}

// ExtractKeywords derives a ranked keyword list from free text.
//
// The heuristic is purely lexical: lower-case, split on whitespace, keep
// alphabetic-only tokens, drop stop words, truncate to MaxExtractedKeywords
// in original order. Duplicates are not removed. This is a documented
// limitation, not semantic analysis.
func ExtractKeywords(text string) []string {
	keywords := make([]string, 0, MaxExtractedKeywords)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		if !isAlphabetic(token) {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == MaxExtractedKeywords {
			break
		}
	}

	return keywords
}

// SuggestKeywords combines each of the first three keywords with the
// fixed phrase templates, truncated to MaxSuggestedKeywords in
// generation order.
func SuggestKeywords(keywords []string) []string {
	seeds := keywords
	if len(seeds) > suggestionSeedKeywords {
		seeds = seeds[:suggestionSeedKeywords]
	}

	suggestions := make([]string, 0, MaxSuggestedKeywords)
	for _, kw := range seeds {
		for _, tmpl := range suggestionTemplates {
			suggestions = append(suggestions, fmt.Sprintf(tmpl, kw))
			if len(suggestions) == MaxSuggestedKeywords {
				return suggestions
			}
		}
	}

	return suggestions
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
