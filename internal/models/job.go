package models

import (
	"github.com/lib/pq"
)

// Job is a casting call posted by a recruiter. It goes through the same
// pending/approved/rejected moderation gate as artist accounts; only approved
// jobs appear in the public listing. Deleted only by its owning recruiter.
type Job struct {
	BaseModel
	JobTitle       string `gorm:"not null" json:"jobTitle"`
	JobDescription string `gorm:"not null" json:"jobDescription"`
	RequiredArtist string `gorm:"not null" json:"requiredArtist"`
	RecruiterName  string `gorm:"not null" json:"recruiterName"`
	ContactEmail   string `gorm:"not null" json:"contactEmail"`
	ContactPhone   string `gorm:"not null" json:"contactPhone"`
	Address        string `gorm:"not null" json:"address"`

	PostedBy string           `gorm:"type:uuid;not null;index" json:"postedBy"`
	Status   ModerationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Denormalized back-reference maintained by the application manager.
	Applicants pq.StringArray `gorm:"type:text[]" json:"applicants"`

	Poster *User `gorm:"foreignKey:PostedBy" json:"poster,omitempty"`
}
