package matching

import (
	"strings"
	"unicode"
)

// normalize lowercases, trims and collapses internal whitespace. Every
// string comparison in this package goes through it, on both the vacancy
// and the candidate side, so the required-skill view and the candidate-side
// relevance view stay consistent.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// titleStopWords are common words that add noise to title keyword matching.
var titleStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "our": true,
	"your": true, "job": true, "role": true, "team": true, "work": true,
	"new": true, "all": true, "a": true, "an": true, "of": true,
	"in": true, "at": true, "to": true, "or": true,
}

// tokenize splits text into lowercase keyword tokens, dropping stop words
// and tokens shorter than three runes. Tech suffixes such as "c++", "c#"
// and "node.js" survive because + # . count as word characters.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !titleStopWords[w] {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if isWordRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// tokenSet builds a membership set from tokenized text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenize(text) {
		set[token] = true
	}
	return set
}
