package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/resume-skill-ranker/internal/models"
)

type VocabularyRepository interface {
	ListPhrases(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, phrases []string) error
}

type vocabularyRepository struct {
	db *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) VocabularyRepository {
	return &vocabularyRepository{db: db}
}

// ListPhrases implements VocabularyRepository.
func (r *vocabularyRepository) ListPhrases(ctx context.Context) ([]string, error) {
	var keywords []models.SkillKeyword
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Order("id ASC").
		Find(&keywords).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skill keywords: %w", err)
	}

	phrases := make([]string, 0, len(keywords))
	for _, k := range keywords {
		phrases = append(phrases, k.Phrase)
	}
	return phrases, nil
}

// ReplaceAll implements VocabularyRepository. The table ends up holding exactly phrases,
// in the given order.
func (r *vocabularyRepository) ReplaceAll(ctx context.Context, phrases []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SkillKeyword{}).Error; err != nil {
			return fmt.Errorf("failed to clear skill keywords: %w", err)
		}

		if len(phrases) == 0 {
			return nil
		}

		keywords := make([]models.SkillKeyword, 0, len(phrases))
		for i, p := range phrases {
			keywords = append(keywords, models.SkillKeyword{Phrase: p, Position: i})
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phrase"}},
			DoUpdates: clause.AssignmentColumns([]string{"position"}),
		}).Create(&keywords).Error
		if err != nil {
			return fmt.Errorf("failed to insert skill keywords: %w", err)
		}
		return nil
	})
}
