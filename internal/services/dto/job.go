package dto

type CreateJobRequest struct {
	JobTitle       string `json:"jobTitle" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	RequiredArtist string `json:"requiredArtist" validate:"required"`
	RecruiterName  string `json:"recruiterName" validate:"required"`
	ContactEmail   string `json:"contactEmail" validate:"required,email"`
	ContactPhone   string `json:"contactPhone" validate:"required"`
	Address        string `json:"address" validate:"required"`
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
