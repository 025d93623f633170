package repository

import (
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/models"
	"gorm.io/gorm"
)

// QueryRepositoryImpl implements QueryRepository
type QueryRepositoryImpl struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) models.QueryRepository {
	return &QueryRepositoryImpl{db: db}
}

func (r *QueryRepositoryImpl) Create(query *models.Query) error {
	return r.db.Create(query).Error
}

// GetRecent returns the newest checks first, at most limit of them.
func (r *QueryRepositoryImpl) GetRecent(limit int) ([]models.Query, error) {
	var queries []models.Query
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&queries).Error
	return queries, err
}

// RepositoryManager bundles all repositories
type RepositoryManager struct {
	Queries models.QueryRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		Queries: NewQueryRepository(db),
	}
}
