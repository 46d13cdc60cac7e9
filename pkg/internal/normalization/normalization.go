// Package normalization provides text normalization utilities for ROM title matching and sorting.
package normalization

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// leadingArticlePattern matches leading articles (a, an, the)
	leadingArticlePattern = regexp.MustCompile(`(?i)^(a|an|the)\b`)

	// commaArticlePattern matches No-Intro style trailing articles (", The")
	commaArticlePattern = regexp.MustCompile(`(?i),\s(a|an|the)\b(?:\s*[^\w\s]|$)`)

	// nonWordSpacePattern matches non-word, non-space characters
	nonWordSpacePattern = regexp.MustCompile(`[^\w\s]`)

	// multipleSpacePattern matches multiple consecutive spaces
	multipleSpacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeSearchTerm normalizes a title for fuzzy comparison.
// It performs the following transformations:
// - Converts to lowercase
// - Normalizes Unicode characters and removes accents
// - Replaces underscores with spaces
// - Optionally removes articles (a, an, the)
// - Optionally removes punctuation
//
// Accents must be folded before punctuation removal, which keeps only ASCII
// word characters.
func NormalizeSearchTerm(name string, removeArticles, removePunctuation bool) string {
	name = FoldAccents(strings.ToLower(name))
	name = strings.ReplaceAll(name, "_", " ")

	if removeArticles {
		name = leadingArticlePattern.ReplaceAllString(name, "")
		name = commaArticlePattern.ReplaceAllString(name, "")
	}

	if removePunctuation {
		name = nonWordSpacePattern.ReplaceAllString(name, " ")
		name = multipleSpacePattern.ReplaceAllString(name, " ")
	}

	return strings.TrimSpace(name)
}

// NormalizeSearchTermDefault normalizes a search term with default options (remove articles and punctuation).
func NormalizeSearchTermDefault(name string) string {
	return NormalizeSearchTerm(name, true, true)
}

// FoldAccents removes diacritical marks, so "Pokémon" becomes "Pokemon".
// ASCII input is returned as is.
func FoldAccents(s string) string {
	if !hasNonASCII(s) {
		return s
	}

	// NFD splits "é" into "e" plus a combining mark.
	decomposed := norm.NFD.String(s)

	var result strings.Builder
	result.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			result.WriteRune(r)
		}
	}

	return norm.NFC.String(result.String())
}

// hasNonASCII checks if the string contains non-ASCII characters.
func hasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return true
		}
	}
	return false
}
