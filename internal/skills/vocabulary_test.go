package skills

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	// 48 source entries, "tableau" and "spark" listed twice
	if v.Len() != 46 {
		t.Fatalf("expected 46 phrases, got %d", v.Len())
	}

	phrases := v.Phrases()
	if phrases[0] != "machine learning" || phrases[len(phrases)-1] != "scrum" {
		t.Fatalf("unexpected order: first %q last %q", phrases[0], phrases[len(phrases)-1])
	}
	for _, p := range phrases {
		if p != CanonicalPhrase(p) {
			t.Fatalf("phrase %q is not canonical", p)
		}
	}
}

func TestNewVocabularyCanonicalises(t *testing.T) {
	t.Parallel()

	v, err := NewVocabulary([]string{"  Machine   Learning ", "python", "PYTHON", "", "  "})
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}

	expect := []string{"machine learning", "python"}
	if got := v.Phrases(); !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
}

func TestNewVocabularyRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := NewVocabulary([]string{" ", ""}); !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestPhrasesReturnsCopy(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()
	p := v.Phrases()
	p[0] = "changed"
	if v.Phrases()[0] != "machine learning" {
		t.Fatalf("vocabulary was mutated through Phrases()")
	}
}

func TestLoadVocabularyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "skills.yaml")
	if err := os.WriteFile(path, []byte("skills:\n  - Go\n  - gRPC\n  - go\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabularyFile(path)
	if err != nil {
		t.Fatalf("LoadVocabularyFile: %v", err)
	}
	if got := v.Phrases(); !reflect.DeepEqual(got, []string{"go", "grpc"}) {
		t.Fatalf("unexpected phrases: %v", got)
	}

	if _, err := LoadVocabularyFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("skills: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadVocabularyFile(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}
