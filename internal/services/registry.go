package services

import (
	"talentcast_backend/internal/repositories"
	"talentcast_backend/internal/storage"
)

// ServiceContainer wires repositories and the blob store into the services the
// handlers consume.
type ServiceContainer struct {
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
	BlogService        BlogService
}

func NewServiceContainer(store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	blogRepo := repositories.NewBlogRepository()

	return &ServiceContainer{
		UserService:        NewUserService(userRepo, applicationRepo, store),
		JobService:         NewJobService(jobRepo),
		ApplicationService: NewApplicationService(applicationRepo, jobRepo, userRepo, store),
		BlogService:        NewBlogService(blogRepo, store),
	}
}
