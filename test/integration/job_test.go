package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"talentcast_backend/internal/models"
	"talentcast_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobPayload() map[string]interface{} {
	return map[string]interface{}{
		"jobTitle":       "Music video dancer",
		"jobDescription": "Looking for dancers for an upcoming shoot",
		"requiredArtist": models.IdentityDancer,
		"recruiterName":  "Test Recruiter",
		"contactEmail":   "casting@test.com",
		"contactPhone":   "+10000000000",
		"address":        "Mumbai",
	}
}

func TestJob_RecruiterPostsStartsPending(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", recruiterToken, jobPayload())
	require.Equal(t, http.StatusCreated, res.StatusCode, "Job post should succeed. Response: "+body)

	var response struct {
		Job models.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	assert.Equal(t, models.ModerationPending, response.Job.Status, "New jobs start pending")
}

func TestJob_ArtistCannotPost(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, _ := helpers.CreateAndLoginApprovedArtist(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", artistToken, jobPayload())
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Only recruiters post jobs")
}

func TestJob_ListingModerationGate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationPending)
	approved := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	var listing struct {
		Jobs []models.Job `json:"jobs"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/approved", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Jobs, 1, "Public listing shows only approved jobs")
	assert.Equal(t, approved.ID, listing.Jobs[0].ID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "The full listing requires authentication")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Jobs, 2, "Recruiters see their pending postings in the full listing")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Jobs, 2, "Admins see the full queue")
}

func TestJob_AdminModeration(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationPending)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/jobs/"+job.ID+"/status", adminToken,
		map[string]interface{}{"status": "approved"})
	require.Equal(t, http.StatusOK, res.StatusCode, "Job approval should succeed. Response: "+body)

	var stored models.Job
	require.NoError(t, ts.DB.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, models.ModerationApproved, stored.Status)
}

func TestJob_DeleteOwnershipEnforced(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, owner.ID, models.ModerationApproved)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Only the owning recruiter may delete a job")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count)
	assert.Zero(t, count)
}

func TestJob_GetByID(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, recruiter.ID, models.ModerationApproved)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var fetched models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	assert.Equal(t, job.JobTitle, fetched.JobTitle)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
