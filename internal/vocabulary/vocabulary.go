// Package vocabulary holds the categorized set of known skill tokens used as
// ground truth for extraction. A Vocabulary is built once at startup and
// never mutated afterward, so it is safe to share across workers.
package vocabulary

import (
	"sort"
	"strings"
)

// Skill is one vocabulary entry.
type Skill struct {
	Token    string `json:"token"`
	Category string `json:"category"`
}

// Vocabulary is an immutable set of skill tokens grouped by category.
type Vocabulary struct {
	tokens     []string            // all tokens, lowercase, sorted, unique
	set        map[string]struct{} // membership lookup
	byCategory map[string][]string // category -> sorted tokens
}

// New builds a vocabulary from category -> token lists. Tokens are lowercased
// and trimmed; empty tokens are dropped; duplicates across categories are
// kept per category but counted once in the flat token set.
func New(skillsByCategory map[string][]string) *Vocabulary {
	v := &Vocabulary{
		set:        make(map[string]struct{}),
		byCategory: make(map[string][]string, len(skillsByCategory)),
	}

	for category, tokens := range skillsByCategory {
		kept := make([]string, 0, len(tokens))
		for _, token := range tokens {
			normalized := strings.ToLower(strings.TrimSpace(token))
			if normalized == "" {
				continue
			}
			kept = append(kept, normalized)
			v.set[normalized] = struct{}{}
		}
		sort.Strings(kept)
		v.byCategory[category] = kept
	}

	v.tokens = make([]string, 0, len(v.set))
	for token := range v.set {
		v.tokens = append(v.tokens, token)
	}
	sort.Strings(v.tokens)

	return v
}

// FromSkills builds a vocabulary from a flat skill list, e.g. rows loaded
// from the database.
func FromSkills(skills []Skill) *Vocabulary {
	byCategory := make(map[string][]string)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s.Token)
	}
	return New(byCategory)
}

// Contains reports whether token is in the vocabulary. The check is
// case-insensitive.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.set[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// Tokens returns all tokens in sorted order. Callers must not modify the
// returned slice.
func (v *Vocabulary) Tokens() []string {
	return v.tokens
}

// Categories returns the category names in sorted order.
func (v *Vocabulary) Categories() []string {
	categories := make([]string, 0, len(v.byCategory))
	for category := range v.byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// TokensInCategory returns the sorted tokens for one category, or nil when
// the category is unknown.
func (v *Vocabulary) TokensInCategory(category string) []string {
	return v.byCategory[category]
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}
