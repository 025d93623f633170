package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Query is one persisted symptom check: the symptoms the caller sent and
// the analysis text they got back, whichever path produced it.
type Query struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Symptoms  string    `json:"symptoms" gorm:"type:text;not null"`
	Analysis  string    `json:"analysis" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Query) TableName() string {
	return "queries"
}

func (q *Query) Validate() error {
	if strings.TrimSpace(q.Symptoms) == "" {
		return fmt.Errorf("symptoms are required")
	}
	if strings.TrimSpace(q.Analysis) == "" {
		return fmt.Errorf("analysis is required")
	}
	return nil
}

func (q *Query) BeforeCreate(tx *gorm.DB) error {
	return q.Validate()
}

// QueryRepository is the storage contract for symptom checks.
type QueryRepository interface {
	Create(query *Query) error
	GetRecent(limit int) ([]Query, error)
}
