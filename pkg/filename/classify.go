package filename

import (
	"strings"
	"unicode/utf8"
)

// rule assigns a tag to one field of a ParsedName.
type rule struct {
	// Name identifies the field the rule targets
	Name string
	// Match reports whether the rule applies to tag given the record so far
	Match func(tag string, p *ParsedName) bool
	// Apply stores tag on the record
	Apply func(tag string, p *ParsedName)
}

// devStatusMarkers are case-sensitive substrings marking a development build.
var devStatusMarkers = []string{"Beta", "Proto", "Sample"}

// regionNames are the region names recognized anywhere inside a tag.
var regionNames = []string{
	"USA", "Japan", "Europe", "World", "Asia", "Korea", "China",
	"Australia", "Brazil", "Canada", "France", "Germany", "Spain", "Italy",
}

// rules is the ordered classification table. The first matching rule wins.
// It is never modified, so Classify is safe for concurrent use.
var rules = []rule{
	{
		Name:  "status",
		Match: func(tag string, _ *ParsedName) bool { return utf8.RuneCountInString(tag) == 1 },
		Apply: func(tag string, p *ParsedName) { p.Status = tag },
	},
	{
		Name:  "license",
		Match: func(tag string, _ *ParsedName) bool { return tag == "Unl" },
		Apply: func(tag string, p *ParsedName) { p.License = tag },
	},
	{
		Name:  "dev_status",
		Match: func(tag string, _ *ParsedName) bool { return containsAny(tag, devStatusMarkers) },
		Apply: func(tag string, p *ParsedName) { p.DevStatus = tag },
	},
	{
		Name:  "version",
		Match: func(tag string, _ *ParsedName) bool { return isVersionTag(tag) },
		Apply: func(tag string, p *ParsedName) { p.Version = tag },
	},
	{
		Name:  "language",
		Match: func(tag string, p *ParsedName) bool { return p.Language == "" && isLanguageTag(tag) },
		Apply: func(tag string, p *ParsedName) { p.Language = tag },
	},
	{
		Name:  "region",
		Match: func(tag string, p *ParsedName) bool { return p.Region == "" && containsAny(tag, regionNames) },
		Apply: func(tag string, p *ParsedName) { p.Region = tag },
	},
	{
		Name:  "additional",
		Match: func(_ string, p *ParsedName) bool { return p.Additional == "" },
		Apply: func(tag string, p *ParsedName) { p.Additional = tag },
	},
}

// Classify assigns tag to the first field whose rule matches and reports the
// name of that rule. A tag no rule accepts, including an empty tag, is
// dropped and "" is returned.
func Classify(tag string, p *ParsedName) string {
	if tag == "" {
		return ""
	}
	for _, r := range rules {
		if r.Match(tag, p) {
			r.Apply(tag, p)
			p.HasTags = true
			return r.Name
		}
	}
	return ""
}

// RuleNames returns the classification rule names in evaluation order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isVersionTag matches "v<digit>..." and "Rev <token>".
func isVersionTag(tag string) bool {
	if len(tag) > 1 && tag[0] == 'v' && isDigit(tag[1]) {
		return true
	}
	return strings.HasPrefix(tag, "Rev ")
}

// isLanguageTag matches "En" and comma lists like "En,Fr,De". Every unit must
// be an uppercase letter followed by a lowercase letter.
func isLanguageTag(tag string) bool {
	if len(tag) != 2 && !(len(tag) > 2 && strings.Contains(tag, ",")) {
		return false
	}
	for unit := range strings.SplitSeq(tag, ",") {
		if len(unit) != 2 || !isUpper(unit[0]) || !isLower(unit[1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
