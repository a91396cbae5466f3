package repositories

import (
	"errors"

	"talentcast_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
	FindApproved(db *gorm.DB) ([]models.Job, error)
	UpdateStatus(db *gorm.DB, jobID string, status models.ModerationStatus) error
	Delete(db *gorm.DB, jobID string) error
	AppendApplicant(db *gorm.DB, jobID, userID string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Poster", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	}).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindApproved(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("status = ?", models.ModerationApproved).
		Preload("Poster", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID string, status models.ModerationStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, jobID string) error {
	result := db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) AppendApplicant(db *gorm.DB, jobID, userID string) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).
		Update("applicants", gorm.Expr("array_append(COALESCE(applicants, '{}'), ?)", userID))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
