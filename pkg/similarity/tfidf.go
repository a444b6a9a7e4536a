// Package similarity scores two normalized documents against each other with
// TF-IDF vectors and cosine similarity.
package similarity

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrEmptyCorpus reports that neither document contributed a single term.
var ErrEmptyCorpus = errors.New("empty vocabulary: documents contain no terms")

// Scorer computes relevance between two normalized texts as a percentage.
type Scorer struct {
	minTermLen int
}

// NewScorer returns a scorer using the default vectorizer settings:
// terms are whitespace separated tokens of at least two characters.
func NewScorer() *Scorer {
	return &Scorer{minTermLen: 2}
}

// Score returns the similarity of a and b in [0, 100], rounded to two decimals.
// An empty vocabulary scores 0.
func (s *Scorer) Score(a, b string) float64 {
	score, _ := s.ScoreDetailed(a, b)
	return score
}

// ScoreDetailed is Score that also reports ErrEmptyCorpus when the two texts
// share no vocabulary at all because both are empty of terms. The score is 0 then.
func (s *Scorer) ScoreDetailed(a, b string) (float64, error) {
	docs := [2]map[string]int{s.termCounts(a), s.termCounts(b)}
	if len(docs[0]) == 0 && len(docs[1]) == 0 {
		return 0, ErrEmptyCorpus
	}

	idf := smoothIDF(docs[:])
	va := weigh(docs[0], idf)
	vb := weigh(docs[1], idf)

	return percent(cosine(va, vb)), nil
}

func (s *Scorer) termCounts(text string) map[string]int {
	tf := make(map[string]int)
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) < s.minTermLen {
			continue
		}
		tf[tok]++
	}
	return tf
}

// smoothIDF computes idf(t) = ln((1+n)/(1+df(t))) + 1 over the corpus.
func smoothIDF(docs []map[string]int) map[string]float64 {
	df := make(map[string]int)
	for _, d := range docs {
		for term := range d {
			df[term]++
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, f := range df {
		idf[term] = math.Log((1+n)/(1+float64(f))) + 1
	}
	return idf
}

// weigh builds the L2-normalized tf*idf vector of a document.
func weigh(tf map[string]int, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	norm := 0.0
	for _, term := range slices.Sorted(maps.Keys(tf)) {
		w := float64(tf[term]) * idf[term]
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for _, term := range slices.Sorted(maps.Keys(a)) {
		dot += a[term] * b[term]
	}
	return dot
}

// percent maps a cosine to [0, 100] rounded half-to-even on two decimals.
func percent(cos float64) float64 {
	v := cos * 100
	v = math.Max(0, math.Min(100, v))
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
