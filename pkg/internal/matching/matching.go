// Package matching provides fuzzy title matching using Jaro-Winkler similarity.
package matching

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/josegonzalez/romname/pkg/internal/normalization"
)

// DefaultMinSimilarity is the default minimum similarity score for a match.
const DefaultMinSimilarity = 0.75

// jaroWinkler is a reusable Jaro-Winkler metric instance.
var jaroWinkler = metrics.NewJaroWinkler()

// JaroWinklerSimilarity calculates the Jaro-Winkler similarity between two strings.
// The comparison is case-insensitive and returns a value between 0 and 1,
// where 1 indicates an exact match.
func JaroWinklerSimilarity(s1, s2 string) float64 {
	return strutil.Similarity(strings.ToLower(s1), strings.ToLower(s2), jaroWinkler)
}

// FindBestMatchOptions contains options for FindBestMatch.
type FindBestMatchOptions struct {
	// MinSimilarityScore is the minimum similarity score to consider a match
	MinSimilarityScore float64
	// Normalize indicates whether to normalize strings before comparison
	Normalize bool
	// FirstNOnly limits matching to the first N candidates
	FirstNOnly int
}

// DefaultFindBestMatchOptions returns sensible defaults for FindBestMatch.
func DefaultFindBestMatchOptions() FindBestMatchOptions {
	return FindBestMatchOptions{
		MinSimilarityScore: DefaultMinSimilarity,
		Normalize:          true,
	}
}

func prepare(s string, normalize bool) string {
	if normalize {
		return normalization.NormalizeSearchTermDefault(s)
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// FindBestMatch finds the candidate most similar to searchTerm.
// It returns the candidate's index and score, or (-1, 0.0) if no candidate
// meets the minimum threshold. The earliest candidate wins a tie.
func FindBestMatch(searchTerm string, candidates []string, opts FindBestMatchOptions) (int, float64) {
	if len(candidates) == 0 {
		return -1, 0.0
	}

	searchTermNormalized := prepare(searchTerm, opts.Normalize)

	candidatesToCheck := candidates
	if opts.FirstNOnly > 0 && opts.FirstNOnly < len(candidates) {
		candidatesToCheck = candidates[:opts.FirstNOnly]
	}

	best := -1
	var bestScore float64

	for i, candidate := range candidatesToCheck {
		score := JaroWinklerSimilarity(searchTermNormalized, prepare(candidate, opts.Normalize))
		if score > bestScore {
			best = i
			bestScore = score

			// Early exit for perfect match
			if score == 1.0 {
				break
			}
		}
	}

	if best >= 0 && bestScore >= opts.MinSimilarityScore {
		return best, bestScore
	}

	return -1, 0.0
}

// MatchResult represents a match result with its score.
type MatchResult struct {
	Index int
	Name  string
	Score float64
}

// FindAllMatches finds all candidates above the minimum similarity threshold.
// Results are sorted by score in descending order; equal scores keep
// candidate order.
func FindAllMatches(searchTerm string, candidates []string, minScore float64, maxResults int) []MatchResult {
	if len(candidates) == 0 {
		return nil
	}

	searchTermNormalized := normalization.NormalizeSearchTermDefault(searchTerm)

	var matches []MatchResult
	for i, candidate := range candidates {
		score := JaroWinklerSimilarity(searchTermNormalized, normalization.NormalizeSearchTermDefault(candidate))
		if score >= minScore {
			matches = append(matches, MatchResult{Index: i, Name: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	return matches
}

// MatchConfidence returns a human-readable confidence level for a match.
func MatchConfidence(searchTerm, matchedName string) string {
	s1 := normalization.NormalizeSearchTermDefault(searchTerm)
	s2 := normalization.NormalizeSearchTermDefault(matchedName)

	if s1 == s2 {
		return "exact"
	}

	score := JaroWinklerSimilarity(s1, s2)

	switch {
	case score >= 0.95:
		return "high"
	case score >= 0.85:
		return "medium"
	case score >= DefaultMinSimilarity:
		return "low"
	default:
		return "none"
	}
}
