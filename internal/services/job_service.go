package services

import (
	"errors"

	"talentcast_backend/internal/models"
	"talentcast_backend/internal/repositories"
	"talentcast_backend/internal/services/dto"
	"talentcast_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(db *gorm.DB) ([]models.Job, error)
	ListApprovedJobs(db *gorm.DB) ([]models.Job, error)
	GetJob(db *gorm.DB, jobID string) (*models.Job, error)
	SetJobStatus(db *gorm.DB, jobID string, status models.ModerationStatus) (*models.Job, error)
	DeleteJob(db *gorm.DB, caller *models.User, jobID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if caller.Role != models.UserRoleRecruiter {
		return nil, apperrors.ErrOnlyRecruitersPost
	}

	job := &models.Job{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		RequiredArtist: req.RequiredArtist,
		RecruiterName:  req.RecruiterName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Address:        req.Address,
		PostedBy:       caller.ID,
		Status:         models.ModerationPending,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListJobs returns every posting regardless of moderation state. Recruiters
// track their own pending and rejected postings through it; the route requires
// authentication.
func (s *JobServiceImpl) ListJobs(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ListApprovedJobs is the public listing: approved postings only.
func (s *JobServiceImpl) ListApprovedJobs(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindApproved(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) SetJobStatus(db *gorm.DB, jobID string, status models.ModerationStatus) (*models.Job, error) {
	if !models.ValidModerationDecision(status) {
		return nil, apperrors.ErrInvalidStatusValue("job", "Status must be approved or rejected")
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.UpdateStatus(db, jobID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Status = status
	return job, nil
}

// DeleteJob removes a posting. Only the owning recruiter may delete it; admins
// moderate through status changes, not deletion.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, caller *models.User, jobID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.PostedBy != caller.ID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
