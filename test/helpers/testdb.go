package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"talentcast_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing PasswordHash when it still holds the raw
// password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	if user.Status == "" {
		user.Status = models.ModerationPending
	}
	if user.PremiumStatus == "" {
		user.PremiumStatus = models.PremiumNone
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates the user directly in the database and logs in
// through the API, returning the issued token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string, role models.UserRole, identity string) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
		Identity:     identity,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Creating a test user should not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Failed to parse login response")
	assert.NotEmpty(t, loginResponse.Token, "Token must not be empty")

	user.PasswordHash = password
	return loginResponse.Token, user
}

// CreateAndLoginArtist creates a pending artist with a unique email.
func CreateAndLoginArtist(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("artist_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, "Test Artist", email, "password123", models.UserRoleArtist, models.IdentityActor)
}

// CreateAndLoginApprovedArtist creates an artist already past moderation.
func CreateAndLoginApprovedArtist(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	token, user := CreateAndLoginArtist(t, ts, db)
	err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", models.ModerationApproved).Error
	assert.NoError(t, err, "Approving the test artist should not fail")
	user.Status = models.ModerationApproved
	return token, user
}

// CreateAndLoginRecruiter creates a recruiter with a unique email.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("recruiter_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, "Test Recruiter", email, "password123", models.UserRoleRecruiter, "")
}

// CreateAndLoginAdmin creates an admin with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, "Test Admin", email, "password123", models.UserRoleAdmin, "")
}

// CreateTestJob inserts a job owned by the recruiter.
func CreateTestJob(t *testing.T, db *gorm.DB, recruiterID string, status models.ModerationStatus) models.Job {
	job := models.Job{
		JobTitle:       "Lead role in feature film",
		JobDescription: "Casting for the lead role",
		RequiredArtist: models.IdentityActor,
		RecruiterName:  "Test Recruiter",
		ContactEmail:   "casting@test.com",
		ContactPhone:   "+10000000000",
		Address:        "Mumbai",
		PostedBy:       recruiterID,
		Status:         status,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}
