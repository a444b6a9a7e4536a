package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amrit-Raj-17/Argn/pkg/nlp"
)

func TestScore(t *testing.T) {
	s := NewScorer()
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "python developer", "python developer", 100},
		{"one shared term", "python developer", "python engineer", 33.61},
		{"repeated terms", "go go rust", "go", 81.82},
		{"disjoint", "python developer", "java engineer", 0},
		{"one side empty", "python developer", "", 0},
		{"single character terms ignored", "c r python", "python", 100},
		{
			"resume against job",
			"experienced python developer machine learning background",
			"looking experienced python developer join team",
			33.61,
		},
		{
			"resume against shorter job",
			"experienced python developer machine learning background",
			"join growing team python developer",
			22.58,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.a, tt.b))
		})
	}
}

func TestScoreNormalizedPlurals(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 100.0, s.Score(nlp.Normalize("focus lens"), nlp.Normalize("focuses lenses")))
	assert.Equal(t, 100.0, s.Score(nlp.Normalize("Python developer"), nlp.Normalize("python developers")))
}

func TestScoreSymmetric(t *testing.T) {
	s := NewScorer()
	a := "senior backend engineer go kubernetes postgres"
	b := "go engineer team kubernetes cloud"
	assert.Equal(t, s.Score(a, b), s.Score(b, a))
}

func TestScoreEmptyCorpus(t *testing.T) {
	s := NewScorer()

	score, err := s.ScoreDetailed("", "")
	require.ErrorIs(t, err, ErrEmptyCorpus)
	assert.Zero(t, score)

	score, err = s.ScoreDetailed("a b", "c")
	require.ErrorIs(t, err, ErrEmptyCorpus)
	assert.Zero(t, score)

	assert.Zero(t, s.Score("", ""))
}

func TestScoreRange(t *testing.T) {
	s := NewScorer()
	docs := []string{
		"",
		"go",
		"go go go go",
		"python developer machine learning",
		"developer developer python",
		"kubernetes terraform aws gcp azure",
		"team team team lead",
	}
	for _, a := range docs {
		for _, b := range docs {
			v := s.Score(a, b)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
			assert.Equal(t, v, math.Round(v*100)/100)
		}
	}
}

func TestSmoothIDFTwoDocuments(t *testing.T) {
	idf := smoothIDF([]map[string]int{{"shared": 1, "left": 1}, {"shared": 2, "right": 1}})
	assert.InDelta(t, 1.0, idf["shared"], 1e-12)
	assert.InDelta(t, 1+math.Log(1.5), idf["left"], 1e-12)
	assert.InDelta(t, 1+math.Log(1.5), idf["right"], 1e-12)
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 100.0, percent(0.9999999999999998))
	assert.Equal(t, 100.0, percent(1.0000000000000002))
	assert.Equal(t, 0.0, percent(-1e-17))
	assert.Equal(t, 12.35, percent(0.123456))
}
