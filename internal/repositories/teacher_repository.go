package repositories

import (
	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"gorm.io/gorm"
)

// TeacherRepository defines the interface for teacher profile data operations
type TeacherRepository interface {
	CreateTeacher(teacher *models.TeacherProfile) error
	GetTeacherByID(id uint) (*models.TeacherProfile, error)
	GetTeacherByUserID(userID uint) (*models.TeacherProfile, error)
	GetActiveTeachers() ([]models.TeacherProfile, error)
	UpdateTeacher(teacher *models.TeacherProfile) error
	DeactivateTeacher(id uint) error
}

// PostgresTeacherRepository implements TeacherRepository for PostgreSQL
type PostgresTeacherRepository struct {
	db *gorm.DB
}

// NewPostgresTeacherRepository creates a new PostgresTeacherRepository
func NewPostgresTeacherRepository(db *gorm.DB) *PostgresTeacherRepository {
	return &PostgresTeacherRepository{db: db}
}

// CreateTeacher creates a new teacher profile
func (r *PostgresTeacherRepository) CreateTeacher(teacher *models.TeacherProfile) error {
	return r.db.Create(teacher).Error
}

// GetTeacherByID retrieves a teacher profile by ID
func (r *PostgresTeacherRepository) GetTeacherByID(id uint) (*models.TeacherProfile, error) {
	var teacher models.TeacherProfile
	if err := r.db.First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetTeacherByUserID retrieves a teacher profile by the linked user,
// whether or not the profile is still active.
func (r *PostgresTeacherRepository) GetTeacherByUserID(userID uint) (*models.TeacherProfile, error) {
	var teacher models.TeacherProfile
	if err := r.db.Where("user_id = ?", userID).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetActiveTeachers retrieves active teacher profiles sorted by name
func (r *PostgresTeacherRepository) GetActiveTeachers() ([]models.TeacherProfile, error) {
	var teachers []models.TeacherProfile
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

// UpdateTeacher saves an edited teacher profile
func (r *PostgresTeacherRepository) UpdateTeacher(teacher *models.TeacherProfile) error {
	return r.db.Save(teacher).Error
}

// DeactivateTeacher hides a profile from the public directory instead of
// removing it.
func (r *PostgresTeacherRepository) DeactivateTeacher(id uint) error {
	res := r.db.Model(&models.TeacherProfile{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
