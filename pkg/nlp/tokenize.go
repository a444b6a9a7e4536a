package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Runes that always stand alone as tokens, wherever they appear in a word.
const separators = ";@#$%&?!()[]{}<>\"`*“”‘«»„"

// Apostrophes: ASCII and the typographic right single quote word processors insert.
const apostrophes = "'’"

// Word forms that Treebank tokenization splits into two tokens.
var fusedForms = map[string][2]string{
	"cannot": {"can", "not"},
	"gimme":  {"gim", "me"},
	"gonna":  {"gon", "na"},
	"gotta":  {"got", "ta"},
	"lemme":  {"lem", "me"},
	"wanna":  {"wan", "na"},
}

// Clitics split off the end of a word, longest first, in both apostrophe styles.
var clitics = []string{
	"n't", "'ll", "'re", "'ve", "'s", "'m", "'d",
	"n’t", "’ll", "’re", "’ve", "’s", "’m", "’d",
}

// Abbreviations whose trailing period stays attached to the word.
var abbreviations = map[string]struct{}{
	"co": {}, "corp": {}, "dr": {}, "etc": {}, "inc": {}, "jr": {}, "ltd": {},
	"mr": {}, "mrs": {}, "ms": {}, "no": {}, "prof": {}, "sr": {}, "st": {}, "vs": {},
}

// Tokenize splits text into word-level tokens following Penn Treebank conventions:
// brackets, quotes and most symbols become separate tokens, commas and colons split
// unless they sit before a digit, a sentence-final period is split from its word and
// English clitics ("n't", "'s", "'ll", ...) are separated. Punctuation inside a word
// (hyphens, inner periods, slashes, plus signs) stays in the token.
func Tokenize(text string) []string {
	var out []string
	for _, chunk := range strings.Fields(text) {
		out = append(out, splitChunk(chunk)...)
	}
	return splitFinalPeriod(out)
}

// Closing runes that may follow the period ending the text.
const closers = ")]}>\"'”’»"

// splitFinalPeriod detaches the period ending the text from its word, abbreviation
// or not, skipping any closing brackets and quotes after it.
func splitFinalPeriod(toks []string) []string {
	i := len(toks) - 1
	for i >= 0 && utf8.RuneCountInString(toks[i]) == 1 && strings.ContainsAny(toks[i], closers) {
		i--
	}
	if i < 0 {
		return toks
	}
	w := toks[i]
	if len(w) < 2 || !strings.HasSuffix(w, ".") || w[len(w)-2] == '.' {
		return toks
	}
	out := make([]string, 0, len(toks)+1)
	out = append(out, toks[:i]...)
	out = append(out, w[:len(w)-1], ".")
	return append(out, toks[i+1:]...)
}

func splitChunk(chunk string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, splitWord(cur.String())...)
			cur.Reset()
		}
	}

	rs := []rune(chunk)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case strings.ContainsRune(separators, r):
			flush()
			toks = append(toks, string(r))
		case r == ',' || r == ':':
			if i+1 < len(rs) && unicode.IsDigit(rs[i+1]) {
				cur.WriteRune(r)
				continue
			}
			flush()
			toks = append(toks, string(r))
		case (r == '.' || r == '-') && i+1 < len(rs) && rs[i+1] == r:
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			flush()
			toks = append(toks, string(rs[i:j]))
			i = j - 1
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func splitWord(w string) []string {
	var tail []string

	if stem := strings.TrimSuffix(w, "."); stem != w && stem != "" && !strings.Contains(stem, ".") {
		if _, abbr := abbreviations[stem]; !abbr {
			w = w[:len(w)-1]
			tail = append(tail, ".")
		}
	}
	if q, ok := trailingQuote(w); ok {
		w = w[:len(w)-len(q)]
		tail = append([]string{q}, tail...)
	}

	if pair, ok := fusedForms[w]; ok {
		return append([]string{pair[0], pair[1]}, tail...)
	}

	for _, c := range clitics {
		if len(w) <= len(c) || !strings.HasSuffix(w, c) {
			continue
		}
		if stem := w[:len(w)-len(c)]; strings.ContainsAny(lastRune(stem), apostrophes) {
			continue
		}
		return append([]string{w[:len(w)-len(c)], c}, tail...)
	}

	return append([]string{w}, tail...)
}

// trailingQuote returns the closing apostrophe ending w, unless w is nothing
// but the quote or ends in a doubled one.
func trailingQuote(w string) (string, bool) {
	for _, q := range []string{"'", "’"} {
		stem, ok := strings.CutSuffix(w, q)
		if !ok || stem == "" || strings.ContainsAny(lastRune(stem), apostrophes) {
			continue
		}
		return q, true
	}
	return "", false
}

func lastRune(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size == 0 {
		return ""
	}
	return s[len(s)-size:]
}

// IsAlnum reports whether s is non-empty and made of letters and digits only.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
