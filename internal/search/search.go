package search

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/skillhub-cli/skillhub/internal/index"
	"github.com/skillhub-cli/skillhub/internal/registry"
)

// DefaultLimit is the number of results returned when the caller does not
// ask for a specific count.
const DefaultLimit = 10

// Per-token weights. Within the name and tag groups only the strongest
// match counts; across groups the contributions add up.
const (
	weightNameExact  = 100
	weightNamePrefix = 60
	weightNameSub    = 40
	weightTagExact   = 30
	weightTagPrefix  = 20
	weightDescSub    = 10
)

// Result is one matched skill with its accumulated relevance score.
type Result struct {
	Skill registry.SkillRecord
	Score int
}

// Search scores every indexed record against the query tokens and returns
// the top matches, best first. Ties keep the index's name-ascending order.
// A query with no tokens yields an empty list. The call is pure: the same
// index, query, and limit always produce the same result.
func Search(idx *index.Index, query string, limit int) []Result {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Result{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Result, 0, limit)
	for _, s := range idx.Skills {
		score := scoreRecord(s, tokens)
		if score == 0 {
			continue
		}
		out = append(out, Result{Skill: s, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Tokenize splits query on whitespace and folds each token to normalized
// lower case. Empty tokens are dropped.
func Tokenize(query string) []string {
	parts := strings.Fields(query)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = fold(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func fold(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

func scoreRecord(s registry.SkillRecord, tokens []string) int {
	name := fold(s.Name)
	desc := fold(s.Description)

	score := 0
	for _, t := range tokens {
		switch {
		case name == t:
			score += weightNameExact
		case strings.HasPrefix(name, t):
			score += weightNamePrefix
		case strings.Contains(name, t):
			score += weightNameSub
		}

		score += tagScore(s.Tags, t)

		if desc != "" && strings.Contains(desc, t) {
			score += weightDescSub
		}
	}
	return score
}

// tagScore returns the strongest tag match for one token: exact beats
// prefix, and at most one tag contributes.
func tagScore(tags []string, t string) int {
	prefix := false
	for _, tag := range tags {
		tag = fold(tag)
		if tag == t {
			return weightTagExact
		}
		if strings.HasPrefix(tag, t) {
			prefix = true
		}
	}
	if prefix {
		return weightTagPrefix
	}
	return 0
}
