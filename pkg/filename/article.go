package filename

import "strings"

// trailingArticles are the comma suffixes No-Intro uses to keep an article
// out of the primary sort position.
var trailingArticles = []string{"The", "An", "A"}

// NormalizeArticle moves a trailing ", The", ", A" or ", An" to the front of
// title, e.g. "Legend of Zelda, The" becomes "The Legend of Zelda".
// Matching is case-insensitive and the article keeps its original casing.
// Titles without such a suffix are returned unchanged.
func NormalizeArticle(title string) string {
	for {
		article, rest, ok := cutTrailingArticle(title)
		if !ok {
			return title
		}
		if rest == "" {
			title = article
		} else {
			title = article + " " + rest
		}
	}
}

func cutTrailingArticle(title string) (article, rest string, ok bool) {
	for _, a := range trailingArticles {
		suffix := ", " + a
		if len(title) < len(suffix) {
			continue
		}
		start := len(title) - len(suffix)
		if strings.EqualFold(title[start:], suffix) {
			return title[start+2:], title[:start], true
		}
	}
	return "", title, false
}
