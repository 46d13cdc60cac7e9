// Package filename parses ROM filenames that follow the No-Intro naming
// convention into a title and typed metadata fields.
//
// A filename such as
//
//	Legend of Zelda, The (USA) (En,Ja) (v1.2) (Beta).nes
//
// is decomposed by stripping the extension, peeling bracket tags and then
// parenthesized tags off the right-hand side, and classifying each tag by
// its shape. Whatever is left is the title.
package filename

import (
	"strings"
)

// ParsedName contains the components parsed from a No-Intro filename.
//
// Unset fields are empty strings. Each metadata field holds at most one tag.
type ParsedName struct {
	// Title is the input without extension and tags, e.g. "Legend of Zelda, The"
	Title string `json:"title"`
	// DisplayName is Title with a trailing article moved to the front
	DisplayName string `json:"display_name"`
	// Region is the region tag, e.g. "USA" or "Japan, USA"
	Region string `json:"region"`
	// Language is the language tag, e.g. "En" or "En,Ja"
	Language string `json:"language"`
	// Version is the version tag, e.g. "v1.2" or "Rev A"
	Version string `json:"version"`
	// DevStatus is the development status tag, e.g. "Beta" or "Proto"
	DevStatus string `json:"dev_status"`
	// License is "Unl" for unlicensed releases
	License string `json:"license"`
	// Additional is the first unrecognized tag, e.g. "Disc 1"
	Additional string `json:"additional"`
	// Special is reserved for flags such as "ST" or "MB"; no rule sets it
	Special string `json:"special"`
	// Status is a single-character dump flag, e.g. "b" or "!"
	Status string `json:"status"`
	// HasTags is true when any metadata field above was set
	HasTags bool `json:"has_tags"`

	// Extension is the last extension segment stripped, lowercased
	Extension string `json:"extension,omitempty"`
	// Tags is every extracted tag in extraction order
	Tags []string `json:"tags,omitempty"`
}

// ParseNoIntroFilename parses a No-Intro filename, optionally with a leading
// path. It never fails: malformed input leaves text in the title.
//
// Bracket tags are extracted right to left first, then parenthesized tags,
// so the right-most unrecognized tag is the one kept in Additional.
func ParseNoIntroFilename(name string) ParsedName {
	base, ext := stripExtension(name)

	p := ParsedName{Extension: strings.ToLower(ext)}
	classify := func(tag string) {
		p.Tags = append(p.Tags, tag)
		Classify(tag, &p)
	}

	base = extractAll(base, '[', ']', classify)
	base = extractAll(base, '(', ')', classify)

	p.Title = base
	p.DisplayName = NormalizeArticle(base)
	return p
}

// RegionTags maps region names to normalized region codes.
var RegionTags = map[string]string{
	"usa":         "us",
	"america":     "us",
	"canada":      "ca",
	"world":       "wor",
	"europe":      "eu",
	"japan":       "jp",
	"korea":       "kr",
	"china":       "cn",
	"taiwan":      "tw",
	"hong kong":   "hk",
	"asia":        "as",
	"australia":   "au",
	"brazil":      "br",
	"france":      "fr",
	"germany":     "de",
	"italy":       "it",
	"spain":       "es",
	"netherlands": "nl",
	"sweden":      "se",
	"russia":      "ru",
	"scandinavia": "scn",
	"unknown":     "unk",
}

var (
	// demoTags are tags that indicate a demo/prototype file
	demoTags = map[string]bool{
		"demo":      true,
		"sample":    true,
		"trial":     true,
		"preview":   true,
		"proto":     true,
		"prototype": true,
		"beta":      true,
		"alpha":     true,
		"kiosk":     true,
	}

	// unlicensedTags are tags that indicate an unlicensed game
	unlicensedTags = map[string]bool{
		"unl":        true,
		"unlicensed": true,
		"pirate":     true,
		"hack":       true,
	}
)

// RegionCodes splits a region field such as "Japan, USA" into normalized
// codes ("jp", "us"). Unknown names are skipped and duplicates collapsed.
func RegionCodes(region string) []string {
	var codes []string
	seen := make(map[string]bool)
	for part := range strings.SplitSeq(region, ",") {
		code, ok := RegionTags[strings.ToLower(strings.TrimSpace(part))]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

// LanguageCodes splits a language field such as "En,Ja" into lowercase codes.
func LanguageCodes(language string) []string {
	if language == "" {
		return nil
	}
	var codes []string
	for part := range strings.SplitSeq(language, ",") {
		if part = strings.TrimSpace(part); part != "" {
			codes = append(codes, strings.ToLower(part))
		}
	}
	return codes
}

// GetFileExtension returns the file extension from a filename (without the dot, lowercased).
// For two-part extensions only the last segment is returned.
func GetFileExtension(name string) string {
	_, ext := stripExtension(name)
	return strings.ToLower(ext)
}

// ExtractTags returns the tags of a filename in the order the parser sees
// them: bracket tags right to left, then parenthesized tags right to left.
func ExtractTags(name string) []string {
	return ParseNoIntroFilename(name).Tags
}

// IsBiosFile checks if a filename appears to be a BIOS file.
func IsBiosFile(name string) bool {
	return strings.Contains(strings.ToLower(baseName(name)), "bios")
}

// IsDemoFile checks if a filename appears to be a demo, prototype, or beta.
func IsDemoFile(name string) bool {
	p := ParseNoIntroFilename(name)
	if p.DevStatus != "" {
		return true
	}
	return anyTag(p.Tags, demoTags)
}

// IsUnlicensed checks if a filename indicates an unlicensed game.
func IsUnlicensed(name string) bool {
	p := ParseNoIntroFilename(name)
	if p.License != "" {
		return true
	}
	return anyTag(p.Tags, unlicensedTags)
}

// IsVerifiedDump reports whether the filename carries the [!] flag.
func IsVerifiedDump(name string) bool {
	return ParseNoIntroFilename(name).Status == "!"
}

// IsBadDump reports whether the filename carries the [b] flag.
func IsBadDump(name string) bool {
	return ParseNoIntroFilename(name).Status == "b"
}

func anyTag(tags []string, set map[string]bool) bool {
	for _, tag := range tags {
		if set[strings.ToLower(strings.TrimSpace(tag))] {
			return true
		}
	}
	return false
}
