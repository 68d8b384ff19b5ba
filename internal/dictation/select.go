package dictation

import (
	"math"
	"strings"

	"github.com/abhisek/harjutus/internal/rng"
)

const (
	// ShortQuotaMax is the largest quota for which every selected sentence
	// must match a preference.
	ShortQuotaMax = 5

	// CoverageRatio is the minimum share of matching sentences for quotas
	// above ShortQuotaMax.
	CoverageRatio = 0.75
)

// Select returns up to quota distinct sentences of corpus in random order.
//
// Without preference terms it samples the whole corpus. With terms, a
// sentence matches when it contains any term, ignoring case, and the
// selection takes RequiredMatches(quota) matching sentences (all of them
// when fewer exist) before filling up from the non-matching ones. If the
// non-matching sentences run out, further matching ones fill the gap, so
// the result always has min(quota, len(corpus)) entries.
//
// Quotas up to ShortQuotaMax use the same rule on purpose: when too few
// sentences match, every match is kept and the rest come from the
// non-matching sentences, rather than falling back to sampling the whole
// corpus.
func Select(src rng.Source, corpus Corpus, prefs []string, quota int) []string {
	sentences := distinct(corpus)
	if quota <= 0 || len(sentences) == 0 {
		return []string{}
	}

	terms := lowerTerms(prefs)
	if len(terms) == 0 {
		return rng.Pick(src, sentences, quota)
	}

	var matching, rest []string
	for _, s := range sentences {
		if Matches(s, terms) {
			matching = append(matching, s)
		} else {
			rest = append(rest, s)
		}
	}

	matching = rng.Shuffle(src, matching)
	required := min(RequiredMatches(quota), len(matching))
	picked := make([]string, 0, min(quota, len(sentences)))
	picked = append(picked, matching[:required]...)
	picked = append(picked, rng.Pick(src, rest, quota-required)...)
	if gap := quota - len(picked); gap > 0 {
		leftover := matching[required:]
		picked = append(picked, leftover[:min(gap, len(leftover))]...)
	}
	return rng.Shuffle(src, picked)
}

// RequiredMatches is the number of matching sentences a quota asks for:
// all of them up to ShortQuotaMax, ceil(quota*CoverageRatio) above.
func RequiredMatches(quota int) int {
	if quota <= ShortQuotaMax {
		return quota
	}
	return int(math.Ceil(float64(quota) * CoverageRatio))
}

// Matches reports whether s contains any of terms, ignoring case.
func Matches(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, t := range terms {
		if t != "" && strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func lowerTerms(prefs []string) []string {
	var terms []string
	for _, p := range prefs {
		if p == "" {
			continue
		}
		terms = append(terms, strings.ToLower(p))
	}
	return terms
}

// distinct drops repeated sentences, keeping first occurrences.
func distinct(corpus Corpus) []string {
	seen := make(map[string]bool, len(corpus))
	out := make([]string, 0, len(corpus))
	for _, s := range corpus {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
