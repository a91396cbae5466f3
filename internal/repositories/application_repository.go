package repositories

import (
	"errors"

	"talentcast_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByUser(db *gorm.DB, userID string) ([]models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	UpdateStatusByUser(db *gorm.DB, userID string, status models.ModerationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("user_id = ?", userID).
		Preload("Job").
		Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("job_id = ?", jobID).
		Preload("Applicant", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "status")
		}).
		Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateStatusByUser mirrors a user's moderation decision onto every
// application they have filed. Zero matched rows is fine: a user with no
// applications is a valid cascade target.
func (r *ApplicationRepositoryImpl) UpdateStatusByUser(db *gorm.DB, userID string, status models.ModerationStatus) error {
	return db.Model(&models.Application{}).Where("user_id = ?", userID).
		Update("status", status).Error
}
