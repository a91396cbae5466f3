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

func TestUpdateProfile_AbsentVersusEmpty(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginArtist(t, ts, ts.DB)

	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", artist.ID).
		Updates(map[string]interface{}{"city": "Mumbai", "country": "India"}).Error)

	// Only city is present; country must remain untouched.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", artistToken, map[string]interface{}{
		"city": "Delhi",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Profile update should succeed. Response: "+body)

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.Equal(t, "Delhi", stored.City)
	assert.Equal(t, "India", stored.Country, "Absent fields are left unchanged")

	// An explicit empty string overwrites.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profile", artistToken, map[string]interface{}{
		"country": "",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.Empty(t, stored.Country, "Explicit empty values overwrite")
	assert.Equal(t, "Delhi", stored.City)
}

func TestUpdateProfile_ArtistFieldsForbiddenForRecruiter(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", recruiterToken, map[string]interface{}{
		"city": "Delhi",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Artist-only fields for a recruiter must be rejected")

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profile", recruiterToken, map[string]interface{}{
		"name":        "Renamed Recruiter",
		"description": "We cast for commercials",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Name and description stay available to every role")
}

func TestUpdateProfile_IdentityDetailsReplaceWholesale(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, artist := helpers.CreateAndLoginArtist(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", artistToken, map[string]interface{}{
		"identityDetails": `{"height":"180cm","boldScenes":true,"webSeries":true}`,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Valid actor details should be accepted. Response: "+body)

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, "id = ?", artist.ID).Error)

	var details models.ArtistDetails
	require.NoError(t, json.Unmarshal(stored.ArtistDetails, &details))
	require.NotNil(t, details.Actor)
	assert.Equal(t, "180cm", details.Actor.Height)
	assert.True(t, details.Actor.BoldScenes)

	// The replacement drops fields that are not resupplied.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profile", artistToken, map[string]interface{}{
		"identityDetails": `{"weight":"75kg"}`,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&stored, "id = ?", artist.ID).Error)
	require.NoError(t, json.Unmarshal(stored.ArtistDetails, &details))
	require.NotNil(t, details.Actor)
	assert.Empty(t, details.Actor.Height, "Details are replaced, never merged")
	assert.Equal(t, "75kg", details.Actor.Weight)
}

func TestUpdateProfile_DetailsForWrongIdentityRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artistToken, _ := helpers.CreateAndLoginArtist(t, ts, ts.DB)

	// The account's identity is actor; singer fields are unknown keys.
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", artistToken, map[string]interface{}{
		"identityDetails": `{"genres":"pop","multipleLanguages":true}`,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Details outside the identity's schema are rejected")
}

func TestRecruiterDirectory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	helpers.CreateAndLoginArtist(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/recruiters", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Recruiters []map[string]interface{} `json:"recruiters"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Recruiters, 1, "The directory lists recruiters only")
	assert.Equal(t, recruiter.Email, listing.Recruiters[0]["email"])
	assert.NotContains(t, body, "passwordHash")
}
