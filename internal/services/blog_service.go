package services

import (
	"context"
	"errors"
	"mime/multipart"

	"talentcast_backend/internal/logger"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/repositories"
	"talentcast_backend/internal/services/dto"
	"talentcast_backend/internal/storage"
	"talentcast_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// blogFolder is where blog media lives in the blob store.
const blogFolder = "blogs"

type BlogService interface {
	CreateBlog(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.CreateBlogRequest, mediaKind models.MediaKind, media *multipart.FileHeader) (*models.Blog, error)
	ListBlogs(db *gorm.DB) ([]models.Blog, error)
	GetBlog(db *gorm.DB, blogID string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, db *gorm.DB, blogID string, req *dto.UpdateBlogRequest, mediaKind models.MediaKind, media *multipart.FileHeader) (*models.Blog, error)
	DeleteBlog(ctx context.Context, db *gorm.DB, blogID string) error
}

type BlogServiceImpl struct {
	blogRepo repositories.BlogRepository
	store    storage.Storage
}

func NewBlogService(blogRepo repositories.BlogRepository, store storage.Storage) BlogService {
	return &BlogServiceImpl{blogRepo: blogRepo, store: store}
}

func (s *BlogServiceImpl) CreateBlog(ctx context.Context, db *gorm.DB, caller *models.User, req *dto.CreateBlogRequest, mediaKind models.MediaKind, media *multipart.FileHeader) (*models.Blog, error) {
	blog := &models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: caller.ID,
	}

	if media != nil {
		if mediaKind == "" {
			mediaKind = models.MediaKindPhoto
		}
		if !models.ValidMediaKind(mediaKind) {
			return nil, apperrors.ErrInvalidMediaKind
		}
		if err := validateUploads(media); err != nil {
			return nil, err
		}
		obj, err := uploadSingle(ctx, s.store, media, blogFolder, objectName(media.Filename), StorageKind(mediaKind))
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}
		blog.Media = obj.URL
		blog.MediaKind = string(mediaKind)
		blog.StorageKey = obj.Key
	}

	if err := s.blogRepo.Create(db, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *BlogServiceImpl) ListBlogs(db *gorm.DB) ([]models.Blog, error) {
	blogs, err := s.blogRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blogs, nil
}

func (s *BlogServiceImpl) GetBlog(db *gorm.DB, blogID string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(db, blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

// UpdateBlog applies the supplied fields. A new media upload replaces the old
// one and releases its blob.
func (s *BlogServiceImpl) UpdateBlog(ctx context.Context, db *gorm.DB, blogID string, req *dto.UpdateBlogRequest, mediaKind models.MediaKind, media *multipart.FileHeader) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(db, blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}

	if media != nil {
		if mediaKind == "" {
			mediaKind = models.MediaKindPhoto
		}
		if !models.ValidMediaKind(mediaKind) {
			return nil, apperrors.ErrInvalidMediaKind
		}
		if err := validateUploads(media); err != nil {
			return nil, err
		}
		obj, err := uploadSingle(ctx, s.store, media, blogFolder, objectName(media.Filename), StorageKind(mediaKind))
		if err != nil {
			return nil, apperrors.UpstreamError(err)
		}

		if blog.StorageKey != "" {
			s.deleteMedia(ctx, blog.StorageKey, models.MediaKind(blog.MediaKind))
		}
		blog.Media = obj.URL
		blog.MediaKind = string(mediaKind)
		blog.StorageKey = obj.Key
	}

	if err := s.blogRepo.Update(db, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *BlogServiceImpl) DeleteBlog(ctx context.Context, db *gorm.DB, blogID string) error {
	blog, err := s.blogRepo.FindByID(db, blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) {
			return apperrors.ErrBlogNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.blogRepo.Delete(db, blogID); err != nil {
		return apperrors.InternalError(err)
	}

	if blog.StorageKey != "" {
		s.deleteMedia(ctx, blog.StorageKey, models.MediaKind(blog.MediaKind))
	}
	return nil
}

// deleteMedia removes a blog's blob best effort; a stale blob is preferable to
// failing the request after the database write.
func (s *BlogServiceImpl) deleteMedia(ctx context.Context, key string, kind models.MediaKind) {
	if err := s.store.Delete(ctx, key, StorageKind(kind)); err != nil {
		logger.Warn("failed to delete blog media", "key", key, "error", err)
	}
}
