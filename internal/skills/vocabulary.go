package skills

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// ErrEmptyVocabulary is returned when a vocabulary source yields no usable phrase.
var ErrEmptyVocabulary = errors.New("vocabulary contains no phrases")

// Vocabulary is the ordered, de-duplicated list of lowercase skill phrases.
// It is immutable once built.
type Vocabulary struct {
	phrases []string
}

type vocabularyFile struct {
	Skills []string `yaml:"skills"`
}

// NewVocabulary lowercases and trims every phrase, collapses inner whitespace and drops
// repeated or blank entries while keeping the first-seen order.
func NewVocabulary(phrases []string) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))

	for _, p := range phrases {
		p = CanonicalPhrase(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return &Vocabulary{phrases: out}, nil
}

// ParseVocabularyYAML reads a vocabulary document of the form `skills: [...]`.
func ParseVocabularyYAML(data []byte) (*Vocabulary, error) {
	var doc vocabularyFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary yaml: %w", err)
	}
	return NewVocabulary(doc.Skills)
}

// LoadVocabularyFile reads a vocabulary YAML file from disk.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read vocabulary file %s: %w", path, err)
	}
	v, err := ParseVocabularyYAML(data)
	if err != nil {
		return nil, fmt.Errorf("vocabulary file %s: %w", path, err)
	}
	return v, nil
}

// DefaultVocabulary returns the vocabulary shipped with the binary.
func DefaultVocabulary() *Vocabulary {
	v, err := ParseVocabularyYAML(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", err))
	}
	return v
}

// DefaultVocabularyYAML returns a copy of the embedded vocabulary document.
func DefaultVocabularyYAML() []byte {
	out := make([]byte, len(defaultVocabularyYAML))
	copy(out, defaultVocabularyYAML)
	return out
}

// Phrases returns a copy of the phrases in vocabulary order.
func (v *Vocabulary) Phrases() []string {
	out := make([]string, len(v.phrases))
	copy(out, v.phrases)
	return out
}

func (v *Vocabulary) Len() int {
	return len(v.phrases)
}

// CanonicalPhrase is the display and identity form of a phrase: lowercase, single spaced.
func CanonicalPhrase(p string) string {
	return strings.ToLower(strings.Join(strings.Fields(p), " "))
}
