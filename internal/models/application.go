package models

// Application links one artist to one job. The applicant fields are a
// point-in-time snapshot taken at apply time and do not follow later profile
// edits. Applications are never updated or deleted through the API; their
// Status mirrors the applicant's moderation status via the admin cascade.
type Application struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"user"`
	JobID  string `gorm:"type:uuid;not null;index" json:"job"`

	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Qualifications string `json:"qualifications"`
	DOB            string `json:"dob"`
	City           string `json:"city"`
	State          string `json:"state"`

	// Public URL of the uploaded CV document, if any.
	CV string `json:"cv,omitempty"`

	Status ModerationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Applicant *User `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"jobDetails,omitempty"`
}

// ApplicantView is the restricted projection exposed to recruiters when they
// list a job's applicants.
type ApplicantView struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Status ModerationStatus `json:"status"`
}
