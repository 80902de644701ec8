package repositories

import (
	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"gorm.io/gorm"
)

// SuggestionRepository defines the interface for suggestion data operations
type SuggestionRepository interface {
	CreateSuggestion(suggestion *models.Suggestion) error
	GetSuggestionByID(id uint) (*models.Suggestion, error)
	GetSuggestions() ([]models.Suggestion, error)
}

// PostgresSuggestionRepository implements SuggestionRepository for PostgreSQL
type PostgresSuggestionRepository struct {
	db *gorm.DB
}

// NewPostgresSuggestionRepository creates a new PostgresSuggestionRepository
func NewPostgresSuggestionRepository(db *gorm.DB) *PostgresSuggestionRepository {
	return &PostgresSuggestionRepository{db: db}
}

// CreateSuggestion creates a new suggestion
func (r *PostgresSuggestionRepository) CreateSuggestion(suggestion *models.Suggestion) error {
	return r.db.Create(suggestion).Error
}

// GetSuggestionByID retrieves a suggestion by ID
func (r *PostgresSuggestionRepository) GetSuggestionByID(id uint) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	if err := r.db.First(&suggestion, id).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// GetSuggestions retrieves all suggestions newest-first
func (r *PostgresSuggestionRepository) GetSuggestions() ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	if err := r.db.Order("created_at DESC").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}
