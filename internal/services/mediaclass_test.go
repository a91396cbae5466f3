package services

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"talentcast_backend/internal/config"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaKindForIdentity(t *testing.T) {
	photo := []string{
		models.IdentityModel, models.IdentityActor, models.IdentityInfluencer,
		models.IdentityWriter, models.IdentityStylist, models.IdentityPhotographer,
		models.IdentityAdvertisingPro,
	}
	video := []string{
		models.IdentitySinger, models.IdentityMusician, models.IdentityDancer,
		models.IdentityAnchor, models.IdentityVoiceOver, models.IdentityFilmmaker,
		models.IdentityStandupComedian,
	}

	for _, identity := range photo {
		kind, ok := MediaKindForIdentity(identity)
		require.True(t, ok, identity)
		assert.Equal(t, models.MediaKindPhoto, kind, identity)
	}
	for _, identity := range video {
		kind, ok := MediaKindForIdentity(identity)
		require.True(t, ok, identity)
		assert.Equal(t, models.MediaKindVideo, kind, identity)
	}

	// Every identity in the vocabulary has exactly one bucket.
	assert.Len(t, photo, len(photoIdentities))
	assert.Len(t, video, len(videoIdentities))

	_, ok := MediaKindForIdentity("astronaut")
	assert.False(t, ok)
	_, ok = MediaKindForIdentity("")
	assert.False(t, ok)
}

func TestStorageKind(t *testing.T) {
	assert.Equal(t, storage.KindImage, StorageKind(models.MediaKindPhoto))
	assert.Equal(t, storage.KindVideo, StorageKind(models.MediaKindVideo))
}

func TestObjectName(t *testing.T) {
	name := objectName("My Headshot.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension is kept, lowercased")
	assert.NotEqual(t, objectName("a.png"), objectName("a.png"), "names are collision free")

	bare := objectName("README")
	assert.NotContains(t, bare, ".")
}

func fileHeaderWithType(name, contentType string) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: header}
}

func TestValidateUploads(t *testing.T) {
	previous := config.AppConfig
	cfg := &config.Config{}
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "video/mp4", "application/pdf"}
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = previous })

	assert.NoError(t, validateUploads(fileHeaderWithType("a.jpg", "image/jpeg")))
	assert.NoError(t, validateUploads(fileHeaderWithType("a.jpg", "IMAGE/JPEG")), "matching is case insensitive")
	assert.NoError(t, validateUploads(nil, fileHeaderWithType("cv.pdf", "application/pdf")), "nil entries are skipped")
	assert.NoError(t, validateUploads(), "an empty batch is fine")

	err := validateUploads(fileHeaderWithType("evil.exe", "application/x-msdownload"))
	require.Error(t, err)

	err = validateUploads(fileHeaderWithType("a.jpg", "image/jpeg"), fileHeaderWithType("b.bin", "application/octet-stream"))
	require.Error(t, err, "one bad file rejects the batch")
}

func TestRemoveURL(t *testing.T) {
	urls := []string{"a", "b", "c"}

	out, removed := removeURL(urls, "b")
	assert.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, out)

	out, removed = removeURL([]string{"a"}, "missing")
	assert.False(t, removed)
	assert.Equal(t, []string{"a"}, out)
}
