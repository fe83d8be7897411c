package repository

import (
	"github.com/guide4360/guide4360api/internal/models"
	"gorm.io/gorm"
)

// UserRepository is the database repository for users
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user into the database
func (r *UserRepository) CreateUser(user *models.UserModel) error {
	return r.DB.Create(user).Error
}

// GetUserByUsername gets a user by username. The match is case-sensitive.
func (r *UserRepository) GetUserByUsername(username string) (*models.UserModel, error) {
	var user models.UserModel
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
