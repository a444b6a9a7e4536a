package nlp

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

var (
	//go:embed stopwords_en.txt
	stopwordsEN string
	//go:embed noun_exceptions_en.txt
	nounExceptionsEN string
	//go:embed nouns_en.txt
	nounsEN string
)

// Resources holds the immutable English linguistic data used by the normalizer.
type Resources struct {
	Stopwords      map[string]struct{}
	NounExceptions map[string]string
	// Nouns is the lexicon of known noun lemmas, irregular base forms included.
	Nouns map[string]struct{}
}

var (
	resourcesOnce sync.Once
	resources     *Resources
)

// English returns the process-wide English resources, loading them on first call.
func English() *Resources {
	resourcesOnce.Do(func() {
		exceptions := wordPairs(nounExceptionsEN)
		nouns := wordSet(nounsEN)
		for _, base := range exceptions {
			nouns[base] = struct{}{}
		}
		resources = &Resources{
			Stopwords:      wordSet(stopwordsEN),
			NounExceptions: exceptions,
			Nouns:          nouns,
		}
	})
	return resources
}

// Warmup forces loading of linguistic resources so the first request does not pay for it.
func Warmup() {
	_ = English()
}

// IsStopword reports whether the lowercase token is an English stopword.
func IsStopword(token string) bool {
	_, ok := English().Stopwords[token]
	return ok
}

func dataLines(src string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func wordSet(src string) map[string]struct{} {
	lines := dataLines(src)
	m := make(map[string]struct{}, len(lines))
	for _, w := range lines {
		m[w] = struct{}{}
	}
	return m
}

func wordPairs(src string) map[string]string {
	lines := dataLines(src)
	m := make(map[string]string, len(lines))
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 {
			continue
		}
		m[f[0]] = f[1]
	}
	return m
}
