package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// LearningMaterial is a training or enablement resource shown to partners.
type LearningMaterial struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Category    string       `gorm:"type:text;not null" json:"category"`
	URL         string       `gorm:"type:text;not null" json:"url"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Published   bool         `gorm:"not null;default:false" json:"published"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (LearningMaterial) TableName() string { return "learning_materials" }
