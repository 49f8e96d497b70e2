package engine

import "testing"

func TestVectorizer_FitTransform(t *testing.T) {
	corpus := []string{
		"python data analysis",
		"java spring backend",
		"python machine learning",
	}
	v := FitVectorizer(corpus)

	if v.Dim() == 0 {
		t.Fatalf("expected non-empty vocabulary")
	}

	vec := v.Transform("python data analysis")
	if len(vec) != v.Dim() {
		t.Fatalf("expected vector of dim %d, got %d", v.Dim(), len(vec))
	}

	nonZero := 0
	for _, x := range vec {
		if x != 0 {
			nonZero++
		}
	}
	if nonZero != 3 {
		t.Fatalf("expected 3 non-zero components, got %d", nonZero)
	}
}

func TestVectorizer_UnknownTermsIgnored(t *testing.T) {
	v := FitVectorizer([]string{"python sql"})

	vec := v.Transform("haskell prolog")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("component %d: expected zero weight for unknown terms, got %f", i, x)
		}
	}
}

func TestVectorizer_EmptyCorpusDegradesGracefully(t *testing.T) {
	for _, corpus := range [][]string{nil, {}, {"", ""}, {"the and of", "a an"}} {
		v := FitVectorizer(corpus)
		if v.Dim() != 0 {
			t.Fatalf("corpus %q: expected degenerate space, got dim %d", corpus, v.Dim())
		}
		if sim := CosineSimilarity(v.Transform("python"), v.Transform("python")); sim != 0 {
			t.Fatalf("corpus %q: expected similarity 0 in degenerate space, got %f", corpus, sim)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Python, SQL and  Data-Analysis!")
	want := []string{"python", "sql", "data", "analysis"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
