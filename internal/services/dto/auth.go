package dto

import "talentcast_backend/internal/models"

// SignupRequest is bound from the multipart signup form. Artist-only fields
// supplied for a non-artist role are a validation error, not a silent drop.
type SignupRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Role     string `form:"role" json:"role" validate:"required,oneof=artist recruiter"`
	Identity string `form:"identity" json:"identity"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`

	Description string `form:"description" json:"description"`

	// Artist-only fields
	Contact            string `form:"contact" json:"contact"`
	Gender             string `form:"gender" json:"gender" validate:"omitempty,oneof=male female other"`
	DOB                string `form:"dob" json:"dob"`
	City               string `form:"city" json:"city"`
	State              string `form:"state" json:"state"`
	Country            string `form:"country" json:"country"`
	Language           string `form:"language" json:"language"`
	Instagram          string `form:"instagram" json:"instagram"`
	InstagramFollowers string `form:"instagramFollowers" json:"instagramFollowers"`
}

// HasArtistFields reports whether any artist-only attribute was supplied.
func (r *SignupRequest) HasArtistFields() bool {
	return r.Identity != "" || r.Contact != "" || r.Gender != "" || r.DOB != "" ||
		r.City != "" || r.State != "" || r.Country != "" || r.Language != "" ||
		r.Instagram != "" || r.InstagramFollowers != ""
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the profile + issued token returned by signup and login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
