package handlers

import (
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/validator"
)

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ArtistHandler      *ArtistHandler
	MediaHandler       *MediaHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	BlogHandler        *BlogHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.UserService),
		ArtistHandler:      NewArtistHandler(base, sc.UserService),
		MediaHandler:       NewMediaHandler(base, sc.UserService),
		JobHandler:         NewJobHandler(base, sc.JobService, sc.ApplicationService),
		ApplicationHandler: NewApplicationHandler(base, sc.ApplicationService),
		BlogHandler:        NewBlogHandler(base, sc.BlogService),
	}
}
