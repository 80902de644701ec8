package repositories

import (
	"errors"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	UpdateUserRole(id uint, role models.Role) (*models.User, error)
	SyncUser(firebaseUID, email, name string, defaultRole models.Role) (*models.User, error)
	DeleteUserByFirebaseUID(firebaseUID string) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by identity provider UID
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users ordered by newest first
func (r *PostgresUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateUserRole sets a user's role via explicit admin action
func (r *PostgresUserRepository) UpdateUserRole(id uint, role models.Role) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	user.Role = role
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SyncUser upserts a user from an identity provider event. The role is
// assigned only on first creation; later syncs update email and name but
// never touch an already-assigned role.
func (r *PostgresUserRepository) SyncUser(firebaseUID, email, name string, defaultRole models.Role) (*models.User, error) {
	var user models.User
	err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = models.User{
			FirebaseUID: firebaseUID,
			Email:       email,
			Name:        name,
			Role:        defaultRole,
		}
		if err := r.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	user.Email = email
	user.Name = name
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUserByFirebaseUID removes a user synced from the identity provider.
// Deleting an already-absent user is not an error.
func (r *PostgresUserRepository) DeleteUserByFirebaseUID(firebaseUID string) error {
	return r.db.Where("firebase_uid = ?", firebaseUID).Delete(&models.User{}).Error
}
