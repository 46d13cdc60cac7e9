package filename

import (
	"strings"
	"unicode"
)

// ExtractTag removes the right-most tag delimited by open and close from text.
//
// It finds the last close character and pairs it with the nearest open
// character to its left. The returned tag is the verbatim content between the
// delimiters. The remaining text has the whole span removed along with any
// whitespace immediately before it. ok is false when no close character
// exists or no open character precedes it; text is then returned unchanged.
func ExtractTag(text string, open, close byte) (remaining, tag string, ok bool) {
	closePos := strings.LastIndexByte(text, close)
	if closePos < 0 {
		return text, "", false
	}

	openPos := strings.LastIndexByte(text[:closePos], open)
	if openPos < 0 {
		return text, "", false
	}

	tag = text[openPos+1 : closePos]
	remaining = strings.TrimRightFunc(text[:openPos], unicode.IsSpace) + text[closePos+1:]
	return remaining, tag, true
}

// extractAll peels every open/close tag off text, right to left, calling fn
// for each one. It returns what is left of text.
func extractAll(text string, open, close byte, fn func(tag string)) string {
	for {
		remaining, tag, ok := ExtractTag(text, open, close)
		if !ok {
			return text
		}
		fn(tag)
		text = remaining
	}
}
