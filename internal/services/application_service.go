package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"talentcast_backend/internal/models"
	"talentcast_backend/internal/repositories"
	"talentcast_backend/internal/services/dto"
	"talentcast_backend/internal/storage"
	"talentcast_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// cvFolder is where uploaded CV documents live in the blob store.
const cvFolder = "cvs"

type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.ApplyRequest, cv *multipart.FileHeader) (*models.Application, error)
	ListApplicationsByUser(db *gorm.DB, caller *models.User, userID string) ([]models.Application, error)
	ListJobApplicants(db *gorm.DB, caller *models.User, jobID string) ([]models.ApplicantView, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	store           storage.Storage
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository, userRepo repositories.UserRepository, store storage.Storage) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		store:           store,
	}
}

// Apply files an application for the caller. The application row, the user's
// applied-jobs list and the job's applicant list are written in a single
// transaction so the three never disagree.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.ApplyRequest, cv *multipart.FileHeader) (*models.Application, error) {
	if !caller.IsArtist() {
		return nil, apperrors.NewForbiddenError("Only artists can apply to jobs")
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	for _, applied := range caller.AppliedJobs {
		if applied == job.ID {
			return nil, apperrors.NewBadRequestError("Already applied to this job")
		}
	}

	application := &models.Application{
		UserID:         caller.ID,
		JobID:          job.ID,
		FullName:       req.FullName,
		Email:          req.Email,
		Contact:        req.Contact,
		Qualifications: req.Qualifications,
		DOB:            req.DOB,
		City:           req.City,
		State:          req.State,
		// The application inherits the applicant's current moderation state
		// and tracks it from then on via the admin cascade.
		Status: caller.Status,
	}

	// CV uploads are stored as documents regardless of the declared MIME type.
	if cv != nil {
		if err := validateUploads(cv); err != nil {
			return nil, err
		}
		name := fmt.Sprintf("cv_%d.pdf", time.Now().UnixNano())
		obj, err := uploadSingle(ctx, s.store, cv, cvFolder, name, storage.KindDocument)
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		application.CV = obj.URL
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(tx, application); err != nil {
			return err
		}
		if err := s.userRepo.AppendAppliedJob(tx, caller.ID, job.ID); err != nil {
			return err
		}
		return s.jobRepo.AppendApplicant(tx, job.ID, caller.ID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return application, nil
}

// ListApplicationsByUser returns a user's applications with their jobs.
// Callers read their own; admins may read anyone's.
func (s *ApplicationServiceImpl) ListApplicationsByUser(db *gorm.DB, caller *models.User, userID string) ([]models.Application, error) {
	if caller.ID != userID && caller.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListJobApplicants exposes the restricted applicant projection to the job's
// owning recruiter and to admins.
func (s *ApplicationServiceImpl) ListJobApplicants(db *gorm.DB, caller *models.User, jobID string) ([]models.ApplicantView, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if caller.Role != models.UserRoleAdmin && job.PostedBy != caller.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]models.ApplicantView, 0, len(applications))
	for _, a := range applications {
		view := models.ApplicantView{ID: a.UserID, Name: a.FullName, Email: a.Email, Status: a.Status}
		if a.Applicant != nil {
			view.Name = a.Applicant.Name
			view.Email = a.Applicant.Email
		}
		views = append(views, view)
	}
	return views, nil
}
