package nlp

import (
	"strings"
	"unicode/utf8"
)

// Noun suffix substitutions of the WordNet morphological processor. Each rule is
// tried once against the surface form, never chained.
var nounRules = []struct{ suffix, repl string }{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Lemmatizer reduces English nouns to their dictionary base form.
// A candidate is accepted only when the noun lexicon knows it; the shortest
// accepted candidate wins and a word with none is returned unchanged.
// Verbs and adjectives pass through untouched.
type Lemmatizer struct {
	nouns      map[string]struct{}
	exceptions map[string]string
}

// NewLemmatizer builds a noun lemmatizer over the given resources.
func NewLemmatizer(res *Resources) *Lemmatizer {
	return &Lemmatizer{nouns: res.Nouns, exceptions: res.NounExceptions}
}

// Lemmatize returns the noun base form of a lowercase token.
func (l *Lemmatizer) Lemmatize(token string) string {
	best := ""
	for _, c := range l.candidates(token) {
		if _, ok := l.nouns[c]; !ok {
			continue
		}
		if best == "" || utf8.RuneCountInString(c) < utf8.RuneCountInString(best) {
			best = c
		}
	}
	if best == "" {
		return token
	}
	return best
}

// candidates lists the token itself followed by its possible base forms:
// the irregular form when one is listed, the suffix rewrites otherwise.
func (l *Lemmatizer) candidates(token string) []string {
	if base, ok := l.exceptions[token]; ok {
		return []string{token, base}
	}
	out := []string{token}
	for _, r := range nounRules {
		if stem, ok := strings.CutSuffix(token, r.suffix); ok {
			out = append(out, stem+r.repl)
		}
	}
	return out
}
