package filename

import "strings"

const (
	// minExtensionLen and maxExtensionLen bound an extension segment,
	// counting the leading dot (".a" through ".abcde").
	minExtensionLen = 2
	maxExtensionLen = 6

	// maxExtensionSegments covers two-part extensions such as ".p8.png".
	maxExtensionSegments = 2
)

// baseName returns the final path segment of name.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

// StripExtension removes the trailing file extension from a filename.
//
// Only the final path segment is considered. An extension is removed when
// its dot lies to the right of the last ')' or ']' and the segment is 2-6
// characters long including the dot, so dots inside tags like "(v1.2)" are
// never mistaken for an extension. At most two segments are removed.
func StripExtension(name string) string {
	base, _ := stripExtension(name)
	return base
}

// stripExtension returns the title candidate and the last extension segment
// removed (without the dot), or "" if nothing was removed.
func stripExtension(name string) (string, string) {
	base := baseName(name)
	lastTag := max(strings.LastIndexByte(base, ')'), strings.LastIndexByte(base, ']'))

	var ext string
	for range maxExtensionSegments {
		dot := strings.LastIndexByte(base, '.')
		if dot < 0 || dot < lastTag {
			break
		}
		n := len(base) - dot
		if n < minExtensionLen || n > maxExtensionLen {
			break
		}
		if ext == "" {
			ext = base[dot+1:]
		}
		base = base[:dot]
	}
	return base, ext
}
