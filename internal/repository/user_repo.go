package repository

import (
	"time"

	"monateg/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts only the identity columns so the remaining fields take
// their column defaults (theme, level, language and friends).
func (r *UserRepository) Create(u *models.User) error {
	return r.db.Select("ID", "TelegramID", "Role", "CreatedAt", "UpdatedAt").Create(u).Error
}

func (r *UserRepository) GetByID(id uint64) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateFields applies a partial update and returns the changed-row count.
// An unknown id yields 0, not an error.
func (r *UserRepository) UpdateFields(id uint64, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// TouchLastLogin stamps the login timestamp on get-or-create.
func (r *UserRepository) TouchLastLogin(id uint64, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login_date", at).Error
}
