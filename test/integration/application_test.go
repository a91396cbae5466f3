package integration_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"talentcast_backend/internal/models"
	"talentcast_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApply_ThreeWayWriteIsConsistent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":          job.ID,
		"fullName":       artist.Name,
		"email":          artist.Email,
		"qualifications": "Five years on stage",
		"city":           "Mumbai",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Apply should succeed. Response: "+body)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "user_id = ? AND job_id = ?", artist.ID, job.ID).Error)
	assert.Equal(t, "Five years on stage", application.Qualifications)

	var storedUser models.User
	require.NoError(t, ts.DB.First(&storedUser, "id = ?", artist.ID).Error)
	assert.Contains(t, []string(storedUser.AppliedJobs), job.ID, "The user's applied-jobs list tracks the application")

	var storedJob models.Job
	require.NoError(t, ts.DB.First(&storedJob, "id = ?", job.ID).Error)
	assert.Contains(t, []string(storedJob.Applicants), artist.ID, "The job's applicant list tracks the application")
}

func TestApply_DuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	payload := map[string]interface{}{
		"jobId":    job.ID,
		"fullName": artist.Name,
		"email":    artist.Email,
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Applying twice to the same job is rejected")
}

func TestApply_RecruiterForbidden(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", recruiterToken, map[string]interface{}{
		"jobId":    job.ID,
		"fullName": "Not An Artist",
		"email":    recruiter.Email,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApply_UnknownJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":    "00000000-0000-0000-0000-000000000000",
		"fullName": artist.Name,
		"email":    artist.Email,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListMyApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":    job.ID,
		"fullName": artist.Name,
		"email":    artist.Email,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/me", artistToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Applications, 1)
	assert.Equal(t, job.ID, listing.Applications[0].JobID)
	assert.NotNil(t, listing.Applications[0].Job, "Listing preloads the job details")
}

func TestApply_RollbackOnFailedApplicantAppend(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	// Make the last of the three writes (the job applicant append) fail, then
	// check that the first two rolled back with it.
	const hook = "integration:fail_job_updates"
	require.NoError(t, ts.DB.Callback().Update().Before("gorm:update").Register(hook, func(tx *gorm.DB) {
		if tx.Statement.Table == "jobs" {
			tx.AddError(errors.New("update rejected"))
		}
	}))
	defer ts.DB.Callback().Update().Remove(hook)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":    job.ID,
		"fullName": artist.Name,
		"email":    artist.Email,
	})
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Application{}).Where("user_id = ?", artist.ID).Count(&count)
	assert.Zero(t, count, "The application row must roll back")

	var storedUser models.User
	require.NoError(t, ts.DB.First(&storedUser, "id = ?", artist.ID).Error)
	assert.Empty(t, []string(storedUser.AppliedJobs), "The applied-jobs append must roll back")

	var storedJob models.Job
	require.NoError(t, ts.DB.First(&storedJob, "id = ?", job.ID).Error)
	assert.Empty(t, []string(storedJob.Applicants))
}

func TestListApplicationsByUser_SelfOrAdmin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":    job.ID,
		"fullName": artist.Name,
		"email":    artist.Email,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	path := "/api/v1/applications/user/" + artist.ID

	res, _ = ts.SendRequest(t, http.MethodGet, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Another user's applications are off limits")

	var listing struct {
		Applications []models.Application `json:"applications"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, path, artistToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Applications, 1)

	res, body = ts.SendRequest(t, http.MethodGet, path, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Applications, 1, "Admins see any user's applications")
	assert.Equal(t, job.ID, listing.Applications[0].JobID)
}

func TestListApplicants_OwnershipEnforced(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)
	ownerToken, owner := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, owner.ID, models.ModerationApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", artistToken, map[string]interface{}{
		"jobId":    job.ID,
		"fullName": artist.Name,
		"email":    artist.Email,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applicants", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Only the owning recruiter sees applicants")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applicants", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Applicants []models.ApplicantView `json:"applicants"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Applicants, 1)
	assert.Equal(t, artist.ID, listing.Applicants[0].ID)
	assert.NotContains(t, body, "passwordHash", "The applicant projection is restricted")
}
