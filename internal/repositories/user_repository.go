package repositories

import (
	"errors"

	"talentcast_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	UpdateStatus(db *gorm.DB, userID string, status models.ModerationStatus) error
	UpdatePremiumStatus(db *gorm.DB, userID string, status models.PremiumStatus) error
	FindArtists(db *gorm.DB, approvedOnly bool) ([]models.User, error)
	FindRecruiters(db *gorm.DB) ([]models.User, error)
	AppendAppliedJob(db *gorm.DB, userID, jobID string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateStatus(db *gorm.DB, userID string, status models.ModerationStatus) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePremiumStatus(db *gorm.DB, userID string, status models.PremiumStatus) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("premium_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindArtists(db *gorm.DB, approvedOnly bool) ([]models.User, error) {
	var artists []models.User
	query := db.Where("role = ?", models.UserRoleArtist)
	if approvedOnly {
		query = query.Where("status = ?", models.ModerationApproved)
	}
	if err := query.Order("created_at DESC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *UserRepositoryImpl) FindRecruiters(db *gorm.DB) ([]models.User, error) {
	var recruiters []models.User
	err := db.Where("role = ?", models.UserRoleRecruiter).
		Order("created_at DESC").Find(&recruiters).Error
	if err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (r *UserRepositoryImpl) AppendAppliedJob(db *gorm.DB, userID, jobID string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("applied_jobs", gorm.Expr("array_append(COALESCE(applied_jobs, '{}'), ?)", jobID))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
