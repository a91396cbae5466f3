package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// User represents any account: artist, recruiter or admin. Role is fixed at
// registration; there is no role-change path. Moderation status gates artist
// visibility and gallery access; premium status applies to recruiters only.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Identity selects which artist details variant applies. Empty for
	// recruiters and admins.
	Identity string `gorm:"type:varchar(40)" json:"identity,omitempty"`

	Status        ModerationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PremiumStatus PremiumStatus    `gorm:"type:varchar(20);default:'none'" json:"premiumStatus"`

	Description string `json:"description,omitempty"`
	Contact     string `json:"contact,omitempty"`

	// Artist demographic and reach fields, populated progressively.
	Gender             string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DOB                *time.Time `json:"dob,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	Country            string     `json:"country,omitempty"`
	Language           string     `json:"language,omitempty"`
	Instagram          string     `json:"instagram,omitempty"`
	InstagramFollowers string     `json:"instagramFollowers,omitempty"`

	ProfilePic string         `json:"profilePic,omitempty"`
	Photos     pq.StringArray `gorm:"type:text[]" json:"photos"`
	Videos     pq.StringArray `gorm:"type:text[]" json:"videos"`

	// One populated ArtistDetails variant, keyed by Identity.
	ArtistDetails datatypes.JSON `gorm:"type:jsonb" json:"artistDetails,omitempty"`

	// Denormalized back-reference maintained by the application manager.
	AppliedJobs pq.StringArray `gorm:"type:text[]" json:"appliedJobs"`
}

// IsArtist reports whether the account is subject to moderation gating.
func (u *User) IsArtist() bool {
	return u.Role == UserRoleArtist
}
