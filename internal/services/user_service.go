package services

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"

	"talentcast_backend/internal/auth"
	"talentcast_backend/internal/logger"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/repositories"
	"talentcast_backend/internal/services/dto"
	"talentcast_backend/internal/storage"
	"talentcast_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, profilePic *multipart.FileHeader, files []*multipart.FileHeader) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetMyProfile(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.UpdateProfileRequest, profilePic *multipart.FileHeader, files []*multipart.FileHeader) (*models.User, error)
	ChangePassword(db *gorm.DB, caller *models.User, req *dto.ChangePasswordRequest) error
	ListArtists(db *gorm.DB, caller *models.User) ([]models.User, error)
	ListRecruiters(db *gorm.DB) ([]dto.RecruiterView, error)
	SetModerationStatus(db *gorm.DB, userID string, status models.ModerationStatus) (*models.User, error)
	SetPremiumStatus(db *gorm.DB, userID string, status models.PremiumStatus) (*models.User, error)
	UploadMedia(ctx context.Context, db *gorm.DB, caller *models.User, kind models.MediaKind, files []*multipart.FileHeader) (*models.User, error)
	RemoveMedia(ctx context.Context, db *gorm.DB, caller *models.User, targetUserID string, req *dto.RemoveMediaRequest) (*models.User, error)
	GetGallery(db *gorm.DB, caller *models.User, artistID string) (*dto.GalleryResponse, error)
}

type UserServiceImpl struct {
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
	store           storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, applicationRepo repositories.ApplicationRepository, store storage.Storage) UserService {
	return &UserServiceImpl{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		store:           store,
	}
}

// userFolder is the per-user blob folder; deletion handles are derived from it.
func userFolder(userID string) string {
	return "users/" + userID
}

func (s *UserServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, profilePic *multipart.FileHeader, files []*multipart.FileHeader) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)

	if role != models.UserRoleArtist && req.HasArtistFields() {
		return nil, apperrors.ErrArtistFieldsForbidden
	}
	if role == models.UserRoleArtist {
		if req.Identity == "" {
			return nil, apperrors.NewBadRequestError("Artist identity is required")
		}
		if !models.KnownIdentity(req.Identity) {
			return nil, apperrors.ErrUnknownIdentity
		}
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// The email is checked before any media reaches the blob store so a
	// conflicting signup leaves no orphaned uploads behind. The unique index
	// inside Create remains the backstop.
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := validateUploads(append([]*multipart.FileHeader{profilePic}, files...)...); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       hash,
		Role:               role,
		Identity:           req.Identity,
		Status:             models.ModerationPending,
		PremiumStatus:      models.PremiumNone,
		Description:        req.Description,
		Contact:            req.Contact,
		Gender:             req.Gender,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		Language:           req.Language,
		Instagram:          req.Instagram,
		InstagramFollowers: req.InstagramFollowers,
	}
	// ID is assigned up front so uploads land in the user's own folder.
	user.ID = uuid.NewString()

	if req.DOB != "" {
		dob, err := parseDOB(req.DOB)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date of birth, expected YYYY-MM-DD")
		}
		user.DOB = dob
	}

	folder := userFolder(user.ID)
	if profilePic != nil {
		obj, err := uploadSingle(ctx, s.store, profilePic, folder, objectName(profilePic.Filename), storage.KindImage)
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		user.ProfilePic = obj.URL
	}

	if len(files) > 0 {
		kind, ok := MediaKindForIdentity(req.Identity)
		if !ok {
			return nil, apperrors.ErrUnknownIdentity
		}
		urls, err := uploadBatch(ctx, s.store, files, folder, StorageKind(kind))
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		if kind == models.MediaKindPhoto {
			user.Photos = append(user.Photos, urls...)
		} else {
			user.Videos = append(user.Videos, urls...)
		}
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

func (s *UserServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

func (s *UserServiceImpl) GetMyProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.UpdateProfileRequest, profilePic *multipart.FileHeader, files []*multipart.FileHeader) (*models.User, error) {
	if !caller.IsArtist() && (req.HasArtistFields() || len(files) > 0) {
		return nil, apperrors.ErrArtistFieldsForbidden
	}
	if err := validateUploads(append([]*multipart.FileHeader{profilePic}, files...)...); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&user.Name, req.Name)
	applyString(&user.Description, req.Description)
	applyString(&user.Contact, req.Contact)
	applyString(&user.Gender, req.Gender)
	applyString(&user.City, req.City)
	applyString(&user.State, req.State)
	applyString(&user.Country, req.Country)
	applyString(&user.Language, req.Language)
	applyString(&user.Instagram, req.Instagram)
	applyString(&user.InstagramFollowers, req.InstagramFollowers)

	if req.DOB != nil {
		if *req.DOB == "" {
			user.DOB = nil
		} else {
			dob, err := parseDOB(*req.DOB)
			if err != nil {
				return nil, apperrors.NewBadRequestError("Invalid date of birth, expected YYYY-MM-DD")
			}
			user.DOB = dob
		}
	}

	if req.Identity != nil {
		if !models.KnownIdentity(*req.Identity) {
			return nil, apperrors.ErrUnknownIdentity
		}
		user.Identity = *req.Identity
	}

	if req.IdentityDetails != nil {
		if user.Identity == "" {
			return nil, apperrors.ErrIdentityMismatch
		}
		if !models.HasDetailsSchema(user.Identity) {
			return nil, apperrors.ErrIdentityMismatch
		}
		// The stored sub-record is replaced wholesale, never merged.
		var details models.ArtistDetails
		if err := details.Replace(user.Identity, []byte(*req.IdentityDetails)); err != nil {
			return nil, apperrors.NewBadRequestError("Identity details do not match the declared identity: " + err.Error())
		}
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.ArtistDetails = raw
	}

	folder := userFolder(user.ID)
	if profilePic != nil {
		obj, err := uploadSingle(ctx, s.store, profilePic, folder, objectName(profilePic.Filename), storage.KindImage)
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		if user.ProfilePic != "" {
			s.deleteBlob(ctx, user.ProfilePic, folder, storage.KindImage)
		}
		user.ProfilePic = obj.URL
	}

	if len(files) > 0 {
		kind, ok := MediaKindForIdentity(user.Identity)
		if !ok {
			return nil, apperrors.ErrUnknownIdentity
		}
		urls, err := uploadBatch(ctx, s.store, files, folder, StorageKind(kind))
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		if kind == models.MediaKindPhoto {
			user.Photos = append(user.Photos, urls...)
		} else {
			user.Videos = append(user.Videos, urls...)
		}
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ChangePassword(db *gorm.DB, caller *models.User, req *dto.ChangePasswordRequest) error {
	if !auth.CheckPasswordHash(req.OldPassword, caller.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	caller.PasswordHash = hash

	if err := s.userRepo.Update(db, caller); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListArtists returns approved artists for everyone except admins, who see the
// full moderation queue.
func (s *UserServiceImpl) ListArtists(db *gorm.DB, caller *models.User) ([]models.User, error) {
	approvedOnly := caller == nil || caller.Role != models.UserRoleAdmin

	artists, err := s.userRepo.FindArtists(db, approvedOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return artists, nil
}

func (s *UserServiceImpl) ListRecruiters(db *gorm.DB) ([]dto.RecruiterView, error) {
	recruiters, err := s.userRepo.FindRecruiters(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.RecruiterView, 0, len(recruiters))
	for _, r := range recruiters {
		views = append(views, dto.RecruiterView{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			Contact:       r.Contact,
			ProfilePic:    r.ProfilePic,
			PremiumStatus: string(r.PremiumStatus),
		})
	}
	return views, nil
}

// SetModerationStatus updates an artist's moderation state and mirrors the
// decision onto every application the artist has filed, in one transaction.
func (s *UserServiceImpl) SetModerationStatus(db *gorm.DB, userID string, status models.ModerationStatus) (*models.User, error) {
	if !models.ValidModerationDecision(status) {
		return nil, apperrors.ErrInvalidStatusValue("user", "Status must be approved or rejected")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsArtist() {
		return nil, apperrors.ErrInvalidUserRole
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdateStatus(tx, userID, status); err != nil {
			return err
		}
		return s.applicationRepo.UpdateStatusByUser(tx, userID, status)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user.Status = status
	return user, nil
}

func (s *UserServiceImpl) SetPremiumStatus(db *gorm.DB, userID string, status models.PremiumStatus) (*models.User, error) {
	if !models.ValidPremiumDecision(status) {
		return nil, apperrors.ErrInvalidStatusValue("user", "Premium status must be granted or denied")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecruiterNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleRecruiter {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdatePremiumStatus(db, userID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.PremiumStatus = status
	return user, nil
}

func (s *UserServiceImpl) UploadMedia(ctx context.Context, db *gorm.DB, caller *models.User, kind models.MediaKind, files []*multipart.FileHeader) (*models.User, error) {
	if !caller.IsArtist() {
		return nil, apperrors.ErrArtistFieldsForbidden
	}
	if !models.ValidMediaKind(kind) {
		return nil, apperrors.ErrInvalidMediaKind
	}
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("No files uploaded")
	}
	if err := validateUploads(files...); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	urls, err := uploadBatch(ctx, s.store, files, userFolder(user.ID), StorageKind(kind))
	if err != nil {
		return nil, apperrors.UpstreamError(err)
	}

	if kind == models.MediaKindPhoto {
		user.Photos = append(user.Photos, urls...)
	} else {
		user.Videos = append(user.Videos, urls...)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// RemoveMedia detaches one URL from an artist's photo or video collection and
// deletes the backing blob. Artists remove from their own collections; admins
// may target any artist. A URL that is not in the collection is a no-op;
// removal is idempotent.
func (s *UserServiceImpl) RemoveMedia(ctx context.Context, db *gorm.DB, caller *models.User, targetUserID string, req *dto.RemoveMediaRequest) (*models.User, error) {
	if caller.ID != targetUserID && caller.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	kind := models.MediaKind(req.Type)
	if !models.ValidMediaKind(kind) {
		return nil, apperrors.ErrInvalidMediaKind
	}

	user, err := s.userRepo.FindByID(db, targetUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsArtist() {
		return nil, apperrors.ErrUserNotFound
	}

	var removed bool
	if kind == models.MediaKindPhoto {
		user.Photos, removed = removeURL(user.Photos, req.URL)
	} else {
		user.Videos, removed = removeURL(user.Videos, req.URL)
	}
	if !removed {
		return user, nil
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.deleteBlob(ctx, req.URL, userFolder(user.ID), StorageKind(kind))
	return user, nil
}

// GetGallery enforces the moderation gate: until an artist is approved the
// gallery is locked for everyone but admins, the artist included.
func (s *UserServiceImpl) GetGallery(db *gorm.DB, caller *models.User, artistID string) (*dto.GalleryResponse, error) {
	artist, err := s.userRepo.FindByID(db, artistID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !artist.IsArtist() {
		return nil, apperrors.ErrUserNotFound
	}

	admin := caller != nil && caller.Role == models.UserRoleAdmin
	if artist.Status != models.ModerationApproved && !admin {
		return nil, apperrors.ErrGalleryLocked
	}

	return &dto.GalleryResponse{
		Photos: artist.Photos,
		Videos: artist.Videos,
		Name:   artist.Name,
	}, nil
}

// deleteBlob removes a stored object best effort; a stale blob is preferable
// to failing the request after the database write.
func (s *UserServiceImpl) deleteBlob(ctx context.Context, publicURL, folder string, kind storage.Kind) {
	key := storage.DeriveKey(publicURL, folder)
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key, kind); err != nil {
		logger.Warn("failed to delete blob", "key", key, "error", err)
	}
}

func removeURL(urls []string, target string) ([]string, bool) {
	out := urls[:0]
	removed := false
	for _, u := range urls {
		if u == target {
			removed = true
			continue
		}
		out = append(out, u)
	}
	return out, removed
}

func parseDOB(value string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
