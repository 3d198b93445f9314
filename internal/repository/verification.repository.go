package repository

import (
	"time"

	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	CreateVerification(verification *models.Verification) error
	FindByEmail(email string) (*models.Verification, error)
	FindByEmailAndCode(email, code string) (*models.Verification, error)
	DeleteByEmail(email string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (vr *verificationRepository) CreateVerification(verification *models.Verification) error {
	return vr.db.Create(verification).Error
}

func (vr *verificationRepository) FindByEmail(email string) (*models.Verification, error) {
	var verification models.Verification
	err := vr.db.Where("email = ?", email).First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

func (vr *verificationRepository) FindByEmailAndCode(email, code string) (*models.Verification, error) {
	var verification models.Verification
	err := vr.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

func (vr *verificationRepository) DeleteByEmail(email string) error {
	return vr.db.Unscoped().Where("email = ?", email).Delete(&models.Verification{}).Error
}
