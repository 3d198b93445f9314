package repository

import (
	"time"

	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	CreateResetPassword(reset *models.ResetPassword) error
	FindByEmailAndCode(email, code string) (*models.ResetPassword, error)
	DeleteByEmail(email string) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

func (rr *resetPasswordRepository) CreateResetPassword(reset *models.ResetPassword) error {
	return rr.db.Create(reset).Error
}

func (rr *resetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	var reset models.ResetPassword
	err := rr.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (rr *resetPasswordRepository) DeleteByEmail(email string) error {
	return rr.db.Unscoped().Where("email = ?", email).Delete(&models.ResetPassword{}).Error
}
