package nlp

import (
	"strings"
	"sync"
)

// Normalizer turns free-form English text into a space-joined string of
// lowercase, alphanumeric, stopword-free noun lemmas in source order.
type Normalizer struct {
	stopwords map[string]struct{}
	lemma     *Lemmatizer
}

// NewNormalizer builds a normalizer over the given resources.
func NewNormalizer(res *Resources) *Normalizer {
	return &Normalizer{stopwords: res.Stopwords, lemma: NewLemmatizer(res)}
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *Normalizer
)

// Default returns the shared English normalizer.
func Default() *Normalizer {
	defaultOnce.Do(func() {
		defaultNormalizer = NewNormalizer(English())
	})
	return defaultNormalizer
}

// Normalize is Default().Normalize.
func Normalize(text string) string {
	return Default().Normalize(text)
}

// Normalize lowercases text, tokenizes it, drops non-alphanumeric tokens and
// stopwords, lemmatizes what is left and joins the result with single spaces.
// A lemma that turns out to be a stopword is dropped as well.
func (n *Normalizer) Normalize(text string) string {
	tokens := Tokenize(strings.ToLower(text))
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsAlnum(tok) || n.isStopword(tok) {
			continue
		}
		lemma := n.lemma.Lemmatize(tok)
		if n.isStopword(lemma) {
			continue
		}
		kept = append(kept, lemma)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) isStopword(tok string) bool {
	_, ok := n.stopwords[tok]
	return ok
}
