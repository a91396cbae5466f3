package dto

// ApplyRequest is bound from the multipart apply form; the CV file arrives
// separately under the "cv" field. The fields are snapshotted onto the
// application and never follow later profile edits.
type ApplyRequest struct {
	JobID          string `form:"jobId" json:"jobId" validate:"required"`
	FullName       string `form:"fullName" json:"fullName" validate:"required"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Contact        string `form:"contact" json:"contact"`
	Qualifications string `form:"qualifications" json:"qualifications"`
	DOB            string `form:"dob" json:"dob"`
	City           string `form:"city" json:"city"`
	State          string `form:"state" json:"state"`
}
