// Package finder resolves free-text item, container and player names against
// a list of candidates.
package finder

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Candidate is anything the resolver can match by name.
// Keys are tried in order: unique identifier, template id, display name.
type Candidate interface {
	MatchKeys() (identifier, templateID, displayName string)
}

// Normalize folds case, collapses whitespace and strips a trailing possessive.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(cases.Fold().String(s)), " ")
	s = strings.NewReplacer("’", "'").Replace(s)
	return strings.TrimSuffix(s, "'s")
}

// Resolve returns the candidate that text names. All identifiers are tried before any
// template id, and all template ids before any display name; within a level the first
// candidate in iteration order wins.
func Resolve[T Candidate](candidates []T, text string) (T, error) {
	var zero T
	want := Normalize(text)
	if want == "" {
		return zero, domain.NewGameError(domain.ErrNotFound, MsgNothingNamed)
	}
	for level := 0; level < 3; level++ {
		for _, c := range candidates {
			if key := keyAt(c, level); key != "" && Normalize(key) == want {
				return c, nil
			}
		}
	}
	return zero, domain.NewGameError(domain.ErrNotFound, MsgNotFoundFmt, strings.TrimSpace(text))
}

// ResolvePrefix finds the longest run of leading words that names a candidate and
// returns it with the words left over.
func ResolvePrefix[T Candidate](candidates []T, words []string) (T, []string, error) {
	for n := len(words); n > 0; n-- {
		if c, err := Resolve(candidates, strings.Join(words[:n], " ")); err == nil {
			return c, words[n:], nil
		}
	}
	var zero T
	return zero, words, notFound(words)
}

// ResolveSuffix finds the longest run of trailing words that names a candidate and
// returns it with the words before it.
func ResolveSuffix[T Candidate](candidates []T, words []string) (T, []string, error) {
	for n := len(words); n > 0; n-- {
		if c, err := Resolve(candidates, strings.Join(words[len(words)-n:], " ")); err == nil {
			return c, words[:len(words)-n], nil
		}
	}
	var zero T
	return zero, words, notFound(words)
}

// SplitPreposition splits words at the first preposition that is neither the first nor
// the last word. With no prepositions given, DefaultPrepositions are used.
func SplitPreposition(words []string, prepositions ...string) (before []string, prep string, after []string, ok bool) {
	if len(prepositions) == 0 {
		prepositions = DefaultPrepositions
	}
	for i := 1; i < len(words)-1; i++ {
		for _, p := range prepositions {
			if strings.EqualFold(words[i], p) {
				return words[:i], strings.ToUpper(p), words[i+1:], true
			}
		}
	}
	return words, "", nil, false
}

func keyAt(c Candidate, level int) string {
	id, template, display := c.MatchKeys()
	switch level {
	case 0:
		return id
	case 1:
		return template
	}
	return display
}

func notFound(words []string) error {
	if len(words) == 0 {
		return domain.NewGameError(domain.ErrNotFound, MsgNothingNamed)
	}
	return domain.NewGameError(domain.ErrNotFound, MsgNotFoundFmt, strings.Join(words, " "))
}
