package skills

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func mustVocabulary(t *testing.T, phrases ...string) *Vocabulary {
	t.Helper()
	v, err := NewVocabulary(phrases)
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	return v
}

func TestMatcherExtract(t *testing.T) {
	t.Parallel()

	m := NewMatcher(DefaultVocabulary())

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "empty text",
			text:   "",
			expect: []string{},
		},
		{
			name:   "case insensitive single words",
			text:   "Worked with PYTHON, Docker and Kubernetes.",
			expect: []string{"docker", "kubernetes", "python"},
		},
		{
			name:   "multi word phrase",
			text:   "Applied Machine Learning and deep learning to Computer Vision tasks",
			expect: []string{"computer vision", "deep learning", "machine learning"},
		},
		{
			name:   "phrase split across lines",
			text:   "natural language\nprocessing",
			expect: []string{"natural language processing"},
		},
		{
			name:   "words out of order do not match",
			text:   "learning machine",
			expect: []string{},
		},
		{
			name:   "no substring matches",
			text:   "JavaScript, Reactive streams, gitlab",
			expect: []string{},
		},
		{
			name:   "symbols in skills",
			text:   "C++ and C# on Node.js, plus scikit-learn.",
			expect: []string{"c#", "c++", "node.js", "scikit-learn"},
		},
		{
			name:   "spaced symbols are different tokens",
			text:   "c + + is not the language",
			expect: []string{},
		},
		{
			name:   "single letter skill",
			text:   "Statistics in R. Reporting in Excel",
			expect: []string{"excel", "r"},
		},
		{
			name:   "single letter inside joined token",
			text:   "R&D department",
			expect: []string{},
		},
		{
			name:   "repeated occurrences counted once",
			text:   "python python PYTHON sql Sql",
			expect: []string{"python", "sql"},
		},
		{
			name:   "pdf ligature folded",
			text:   "Built APIs with ﬂask",
			expect: []string{"flask"},
		},
		{
			name:   "possessive suffix",
			text:   "Python's ecosystem and R's tidyverse",
			expect: []string{"python", "r"},
		},
		{
			name:   "curly apostrophe possessive",
			text:   "Docker’s tooling",
			expect: []string{"docker"},
		},
		{
			name:   "missing space after period",
			text:   "Built with Python.Deployed on AWS",
			expect: []string{"aws", "python"},
		},
		{
			name:   "skills on adjacent lines",
			text:   "Skills: Python\nSQL and Docker",
			expect: []string{"docker", "python", "sql"},
		},
		{
			name:   "overlapping phrases both reported",
			text:   "Strong NLP background: natural language processing pipelines",
			expect: []string{"natural language processing", "nlp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestMatcherExtractSmallVocabulary(t *testing.T) {
	m := NewMatcher(mustVocabulary(t, "python", "sql"))

	got := m.Extract("Experienced in Python and SQL development")
	expect := []string{"python", "sql"}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
}

func TestMatcherExtractIsSorted(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())

	got := m.Extract("Scrum, agile, AWS, Azure, aws")
	expect := []string{"agile", "aws", "azure", "scrum"}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
}

func TestMatcherExtractOnlyKnownPhrasesPresentInText(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	m := NewMatcher(vocab)
	known := make(map[string]bool, vocab.Len())
	for _, p := range vocab.Phrases() {
		known[p] = true
	}

	fillers := []string{"experience", "javascript", "team", "reactive", "machine", "learning", "data", "c", "+", "api", "years", "gitlab", "spark-plug"}
	separators := []string{" ", "\n", ", ", " / ", ". ", "\t"}
	phrases := vocab.Phrases()

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 300; round++ {
		var b strings.Builder
		for n := rng.Intn(12); n >= 0; n-- {
			word := fillers[rng.Intn(len(fillers))]
			if rng.Intn(2) == 0 {
				word = phrases[rng.Intn(len(phrases))]
			}
			if rng.Intn(3) == 0 {
				word = strings.ToUpper(word)
			}
			b.WriteString(word)
			b.WriteString(separators[rng.Intn(len(separators))])
		}
		text := b.String()
		flat := strings.Join(strings.Fields(strings.ToLower(text)), " ")

		for _, skill := range m.Extract(text) {
			if !known[skill] {
				t.Fatalf("round %d: %q is not in the vocabulary (text %q)", round, skill, text)
			}
			if !strings.Contains(flat, skill) {
				t.Fatalf("round %d: %q does not occur in %q", round, skill, text)
			}
		}
	}
}
