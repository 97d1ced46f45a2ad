package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/resume-skill-ranker/internal/config"
	"alfredoptarigan/resume-skill-ranker/internal/repositories"
	"alfredoptarigan/resume-skill-ranker/internal/skills"
)

// LoadVocabulary resolves the configured vocabulary source once at startup.
// repo is only consulted for the postgres source.
func LoadVocabulary(ctx context.Context, source, file string, repo repositories.VocabularyRepository) (*skills.Vocabulary, error) {
	switch source {
	case "", config.VocabularySourceEmbedded:
		return skills.DefaultVocabulary(), nil

	case config.VocabularySourceFile:
		return skills.LoadVocabularyFile(file)

	case config.VocabularySourcePostgres:
		if repo == nil {
			return nil, errors.New("postgres vocabulary source requires a database connection")
		}
		phrases, err := repo.ListPhrases(ctx)
		if err != nil {
			return nil, err
		}
		v, err := skills.NewVocabulary(phrases)
		if err != nil {
			return nil, fmt.Errorf("skill_keywords table: %w (run `skillctl vocabulary seed`)", err)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("unknown vocabulary source %q", source)
	}
}
