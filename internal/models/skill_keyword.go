package models

import (
	"time"
)

type SkillKeyword struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phrase    string    `gorm:"type:text;uniqueIndex;not null" json:"phrase"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (SkillKeyword) TableName() string {
	return "skill_keywords"
}
