// Package romname builds sortable, searchable libraries of ROM files from
// their No-Intro filenames.
package romname

import (
	"strings"

	"github.com/josegonzalez/romname/pkg/cache"
	"github.com/josegonzalez/romname/pkg/filename"
	"github.com/josegonzalez/romname/pkg/platform"
)

// Entry is one ROM file in a Library.
type Entry struct {
	// Filename is the name as passed to Add, path included
	Filename string `json:"filename"`
	// Parsed is the parse of Filename
	Parsed filename.ParsedName `json:"parsed"`
	// Platform is inferred from the file extension; empty when unknown
	Platform platform.Slug `json:"platform,omitempty"`
	// Alias is the display name from an alias map, if any
	Alias string `json:"alias,omitempty"`
}

// Name is the alias when set, otherwise the parsed display name.
func (e Entry) Name() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Parsed.DisplayName
}

// Hidden reports whether an alias map hides the entry.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Alias, ".")
}

// Match is a fuzzy search hit.
type Match struct {
	Entry Entry `json:"entry"`
	// Score is the Jaro-Winkler similarity in [0, 1]
	Score float64 `json:"score"`
	// Confidence is "exact", "high", "medium", "low" or "none"
	Confidence string `json:"confidence"`
}

// Stats reports the size of a Library and its cache.
type Stats struct {
	Entries int         `json:"entries"`
	Workers int         `json:"workers"`
	Cache   cache.Stats `json:"cache"`
}
