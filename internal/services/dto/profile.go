package dto

// UpdateProfileRequest uses pointers to preserve the absent/empty distinction:
// nil means "leave unchanged", a pointer to "" means "overwrite with empty".
type UpdateProfileRequest struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`

	// Artist-only fields; rejected for non-artist callers.
	Contact            *string `form:"contact" json:"contact"`
	Gender             *string `form:"gender" json:"gender"`
	DOB                *string `form:"dob" json:"dob"`
	City               *string `form:"city" json:"city"`
	State              *string `form:"state" json:"state"`
	Country            *string `form:"country" json:"country"`
	Language           *string `form:"language" json:"language"`
	Instagram          *string `form:"instagram" json:"instagram"`
	InstagramFollowers *string `form:"instagramFollowers" json:"instagramFollowers"`

	// Raw JSON for the caller's identity variant; replaces, never merges.
	Identity        *string `form:"identity" json:"identity"`
	IdentityDetails *string `form:"identityDetails" json:"identityDetails"`
}

// HasArtistFields reports whether any artist-only attribute was supplied.
func (r *UpdateProfileRequest) HasArtistFields() bool {
	return r.Contact != nil || r.Gender != nil || r.DOB != nil || r.City != nil ||
		r.State != nil || r.Country != nil || r.Language != nil ||
		r.Instagram != nil || r.InstagramFollowers != nil ||
		r.Identity != nil || r.IdentityDetails != nil
}

type ModerationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type PremiumStatusRequest struct {
	PremiumStatus string `json:"premiumStatus" validate:"required,oneof=granted denied"`
}

type RemoveMediaRequest struct {
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// GalleryResponse mirrors the media endpoints' response shape.
type GalleryResponse struct {
	Photos []string `json:"photos"`
	Videos []string `json:"videos"`
	Name   string   `json:"name"`
}

// RecruiterView is the public recruiter directory projection.
type RecruiterView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Contact       string `json:"contact,omitempty"`
	ProfilePic    string `json:"profilePic,omitempty"`
	PremiumStatus string `json:"premiumStatus"`
}
