package enrich

import (
	"context"
	"regexp"
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

// Entity is a named-entity span recognized in free text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entity labels considered skill candidates.
const (
	EntityLabelProduct  = "PRODUCT"
	EntityLabelOrg      = "ORG"
	EntityLabelLocation = "GPE"
)

// EntityScanner recognizes named entities in text. Implementations are
// best-effort: a scan error degrades extraction to regex-only matching.
type EntityScanner interface {
	Scan(ctx context.Context, text string) ([]Entity, error)
}

// defaultScanMaxChars bounds the text handed to the entity scanner; NER cost
// grows with input length.
const defaultScanMaxChars = 1000000

// SkillExtractor finds vocabulary skill tokens in description text using
// whole-word, case-insensitive matching. An Aho-Corasick automaton over the
// token literals generates candidates in a single pass; a compiled
// word-boundary regex per token confirms each candidate, so "java" never
// fires inside "javascript" while multi-word tokens like "google cloud"
// match as literal phrases.
type SkillExtractor struct {
	vocab        *vocabulary.Vocabulary
	matcher      *ahocorasick.Matcher
	tokens       []string
	patterns     []*regexp.Regexp
	scanner      EntityScanner
	scanMaxChars int
	onScanError  func()
	log          logger.Logger
}

// NewSkillExtractor builds the automaton and boundary patterns from the
// vocabulary. The scanner is optional; pass nil for regex-only extraction.
func NewSkillExtractor(vocab *vocabulary.Vocabulary, scanner EntityScanner, log logger.Logger) *SkillExtractor {
	tokens := vocab.Tokens()
	patterns := make([]*regexp.Regexp, len(tokens))
	for i, token := range tokens {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
	}

	e := &SkillExtractor{
		vocab:        vocab,
		tokens:       tokens,
		patterns:     patterns,
		scanner:      scanner,
		scanMaxChars: defaultScanMaxChars,
		log:          log,
	}
	if len(tokens) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(tokens)
	}

	if log != nil {
		log.Info("skill extractor initialized",
			logger.Int("tokens", len(tokens)),
			logger.Bool("scanner", scanner != nil))
	}

	return e
}

// SetScanMaxChars overrides the length bound on text handed to the entity
// scanner. Values at or below zero are ignored.
func (e *SkillExtractor) SetScanMaxChars(n int) {
	if n > 0 {
		e.scanMaxChars = n
	}
}

// SetScanErrorHook registers a callback invoked once per failed scanner call.
func (e *SkillExtractor) SetScanErrorHook(fn func()) {
	e.onScanError = fn
}

// Extract returns the vocabulary tokens present in text as whole words, plus
// any tokens detected via the entity scanner. The result is lowercase,
// duplicate-free, and sorted; order carries no meaning.
func (e *SkillExtractor) Extract(ctx context.Context, text string) []string {
	if text == "" || e.matcher == nil {
		return []string{}
	}

	lowered := strings.ToLower(text)
	found := make(map[string]struct{})

	// Candidate pass, then boundary confirmation per candidate.
	for _, hit := range e.matcher.Match([]byte(lowered)) {
		if hit >= len(e.tokens) {
			continue
		}
		if e.patterns[hit].MatchString(lowered) {
			found[e.tokens[hit]] = struct{}{}
		}
	}

	e.scanEntities(ctx, text, found)

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}

// scanEntities runs the optional NER pass: any vocabulary token that is a
// substring of a recognized product/organization/location entity is added.
// Errors are logged and swallowed; the regex-derived set stands on its own.
func (e *SkillExtractor) scanEntities(ctx context.Context, text string, found map[string]struct{}) {
	if e.scanner == nil {
		return
	}

	if len(text) > e.scanMaxChars {
		text = text[:e.scanMaxChars]
	}

	entities, err := e.scanner.Scan(ctx, text)
	if err != nil {
		if e.onScanError != nil {
			e.onScanError()
		}
		if e.log != nil {
			e.log.Error("entity scan failed", logger.Error(err))
		}
		return
	}

	for _, entity := range entities {
		switch entity.Label {
		case EntityLabelProduct, EntityLabelOrg, EntityLabelLocation:
		default:
			continue
		}
		candidate := strings.ToLower(entity.Text)
		for _, token := range e.tokens {
			if strings.Contains(candidate, token) {
				found[token] = struct{}{}
			}
		}
	}
}
