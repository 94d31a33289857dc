package pkg

import (
	"cmp"
	"slices"
	"strings"

	levenshtein "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// MaxSuggestions is the number of near-match names attached to "not found"
// errors.
const MaxSuggestions = 3

// Suggest returns up to limit names from candidates that are plausible typos
// of name, closest first.
//
// Candidates are ranked by case-insensitive edit distance. A candidate that
// is too far away by edit distance is still kept when name matches it as a
// subsequence (for example "spd" and "Speed"). Ties are broken by the
// subsequence match score and then by name. A limit below one selects
// [MaxSuggestions].
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" {
		return nil
	}

	return rankNames(name, candidates, limit, max(2, (len(name)+1)/2))
}

// Nearest returns up to limit names from candidates ordered as [Suggest]
// orders them, without dropping distant candidates. Only name itself is
// excluded. A limit below one selects [MaxSuggestions].
func Nearest(name string, candidates []string, limit int) []string {
	return rankNames(name, candidates, limit, -1)
}

// rankNames ranks candidates against name. A negative cutoff keeps every
// candidate.
func rankNames(name string, candidates []string, limit, cutoff int) []string {
	if limit < 1 {
		limit = MaxSuggestions
	}

	if len(candidates) == 0 {
		return nil
	}

	type rank struct {
		name  string
		dist  int
		score int
	}

	subseq := make(map[string]int)
	for _, m := range fuzzy.Find(name, candidates) {
		subseq[m.Str] = m.Score
	}

	folded := strings.ToLower(name)

	ranks := make([]rank, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup || c == name {
			continue
		}

		seen[c] = struct{}{}

		dist := levenshtein.LevenshteinDistance(folded, strings.ToLower(c))
		score, isSubseq := subseq[c]

		if cutoff >= 0 && dist > cutoff && !isSubseq {
			continue
		}

		ranks = append(ranks, rank{name: c, dist: dist, score: score})
	}

	slices.SortFunc(ranks, func(a, b rank) int {
		return cmp.Or(
			cmp.Compare(a.dist, b.dist),
			cmp.Compare(b.score, a.score),
			cmp.Compare(a.name, b.name),
		)
	})

	out := make([]string, 0, min(limit, len(ranks)))
	for _, r := range ranks[:min(limit, len(ranks))] {
		out = append(out, r.name)
	}

	return out
}
