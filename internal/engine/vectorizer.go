package engine

import (
	"math"
	"strings"
	"unicode"
)

// Vectorizer maps text into a TF-IDF space fit once over the internship
// corpus. All vectors produced by one Vectorizer share the same dimensions,
// so item vectors and per-request query vectors stay comparable.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// FitVectorizer builds the vocabulary and IDF statistics from the corpus.
// A corpus with no usable terms yields a zero-dimensional space; Transform
// then returns empty vectors and every similarity is 0.
func FitVectorizer(corpus []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}

	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
		}
	}

	v.idf = make([]float64, len(v.vocab))
	n := float64(len(corpus))
	for tok, idx := range v.vocab {
		v.idf[idx] = math.Log(n/(float64(docFreq[tok])+1)) + 1
	}
	return v
}

// Transform converts text into the fitted space. Terms outside the
// vocabulary carry zero weight rather than erroring.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	tf := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	for tok, count := range tf {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] = (count / float64(len(tokens))) * v.idf[idx]
		}
	}
	return vec
}

// Dim is the size of the fitted vector space.
func (v *Vectorizer) Dim() int { return len(v.vocab) }

// Tokenize lowercases, strips punctuation and drops stopwords.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "their": true, "this": true, "to": true, "we": true,
	"will": true, "with": true, "you": true, "your": true,
}
