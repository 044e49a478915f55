// Package fuzzy scores how closely a typed reference resembles item texts.
// It backs the "did you mean" hints of the command line; the list filter
// itself never uses it.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores pattern against text from 0 (no match) to 100 (equal,
// ignoring case). Every rune of pattern has to appear in text in order.
func Match(pattern, text string) int {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	text = strings.ToLower(strings.TrimSpace(text))
	if pattern == "" || text == "" {
		return 0
	}
	if pattern == text {
		return 100
	}

	p := []rune(pattern)
	t := []rune(text)
	if len(p) > len(t) {
		return 0
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	score := 40.0
	score += float64(len(p)) / float64(len(t)) * 30.0
	score += float64(longestRun(positions)) / float64(len(p)) * 20.0
	if positions[0] == 0 {
		score += 10.0
	}
	score += float64(boundaryHits(t, positions)) / float64(len(p)) * 5.0
	score -= float64(len(t)-len(p)) * 0.5

	return clamp(int(score), 0, 99)
}

// Suggest returns up to limit candidates scoring at least threshold, best first.
// Ties keep candidate order.
func Suggest(pattern string, candidates []string, threshold, limit int) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for i, text := range candidates {
		if score := Match(pattern, text); score >= threshold {
			results = append(results, MatchResult{Text: text, Score: score, Index: i})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// positions of p in t as a subsequence, nil when p does not fit
func subsequence(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	pi := 0
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if p[pi] == t[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(p) {
		return nil
	}
	return positions
}

func longestRun(positions []int) int {
	best, run := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}

// matches that start a word
func boundaryHits(t []rune, positions []int) int {
	hits := 0
	for _, pos := range positions {
		if pos == 0 || !unicode.IsLetter(t[pos-1]) && !unicode.IsDigit(t[pos-1]) {
			hits++
		}
	}
	return hits
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
