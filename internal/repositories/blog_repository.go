package repositories

import (
	"errors"

	"talentcast_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlogNotFound = errors.New("blog not found")

type BlogRepository interface {
	Create(db *gorm.DB, blog *models.Blog) error
	FindByID(db *gorm.DB, id string) (*models.Blog, error)
	FindAll(db *gorm.DB) ([]models.Blog, error)
	Update(db *gorm.DB, blog *models.Blog) error
	Delete(db *gorm.DB, id string) error
}

type BlogRepositoryImpl struct{}

func NewBlogRepository() BlogRepository {
	return &BlogRepositoryImpl{}
}

func (r *BlogRepositoryImpl) Create(db *gorm.DB, blog *models.Blog) error {
	return db.Create(blog).Error
}

func (r *BlogRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Blog, error) {
	var blog models.Blog
	err := db.First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) FindAll(db *gorm.DB) ([]models.Blog, error) {
	var blogs []models.Blog
	err := db.Preload("Author", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	}).Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepositoryImpl) Update(db *gorm.DB, blog *models.Blog) error {
	return db.Save(blog).Error
}

func (r *BlogRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Blog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}
