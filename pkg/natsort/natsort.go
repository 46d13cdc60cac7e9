// Package natsort implements the natural, case-insensitive string ordering
// used to list ROM titles.
//
// Runs of digits compare by numeric value ("Game 9" < "Game 10"), leading
// zeros are ignored ("file01" == "file1") and a leading "The ", "An " or "A "
// is skipped so "The Legend of Zelda" sorts under L.
package natsort

import (
	"cmp"
	"slices"
	"strings"
)

// leadingArticles are checked in order; "An " must precede "A ".
var leadingArticles = []string{"The ", "An ", "A "}

// SkipArticle returns s without a leading "The ", "An " or "A ", matched
// case-insensitively. The trailing space is required, so "Theater" and
// "Ant" are returned unchanged.
func SkipArticle(s string) string {
	for _, article := range leadingArticles {
		if len(s) >= len(article) && strings.EqualFold(s[:len(article)], article) {
			return s[len(article):]
		}
	}
	return s
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b.
func Compare(a, b string) int {
	a = SkipArticle(a)
	b = SkipArticle(b)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			for i < len(a) && a[i] == '0' {
				i++
			}
			for j < len(b) && b[j] == '0' {
				j++
			}

			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			// Without leading zeros a longer run is a larger number.
			if c := cmp.Compare(i-si, j-sj); c != 0 {
				return c
			}
			if c := strings.Compare(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}

		if c := cmp.Compare(toLower(a[i]), toLower(b[j])); c != 0 {
			return c
		}
		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// CompareNullable is Compare with nil sorting before any string.
func CompareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return Compare(*a, *b)
	}
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts s in natural order. Equal elements keep their order.
func Strings(s []string) {
	slices.SortStableFunc(s, Compare)
}

// SortFunc sorts items in natural order of key. Equal keys keep their order.
func SortFunc[T any](items []T, key func(T) string) {
	slices.SortStableFunc(items, func(x, y T) int {
		return Compare(key(x), key(y))
	})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
