package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"talentcast_backend/internal/config"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/storage"
	"talentcast_backend/pkg/apperrors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Each artist identity maps to exactly one media bucket. Portfolio uploads at
// signup and profile update land in the photos or videos collection according
// to this table, regardless of the individual file's MIME type.
var photoIdentities = map[string]struct{}{
	models.IdentityModel:          {},
	models.IdentityActor:          {},
	models.IdentityInfluencer:     {},
	models.IdentityWriter:         {},
	models.IdentityStylist:        {},
	models.IdentityPhotographer:   {},
	models.IdentityAdvertisingPro: {},
}

var videoIdentities = map[string]struct{}{
	models.IdentitySinger:          {},
	models.IdentityMusician:        {},
	models.IdentityDancer:          {},
	models.IdentityAnchor:          {},
	models.IdentityVoiceOver:       {},
	models.IdentityFilmmaker:       {},
	models.IdentityStandupComedian: {},
}

// MediaKindForIdentity returns the bucket an identity's portfolio uploads go
// to, and false for identities outside the vocabulary.
func MediaKindForIdentity(identity string) (models.MediaKind, bool) {
	if _, ok := photoIdentities[identity]; ok {
		return models.MediaKindPhoto, true
	}
	if _, ok := videoIdentities[identity]; ok {
		return models.MediaKindVideo, true
	}
	return "", false
}

// StorageKind translates a media collection into the blob-store kind.
func StorageKind(kind models.MediaKind) storage.Kind {
	if kind == models.MediaKindVideo {
		return storage.KindVideo
	}
	return storage.KindImage
}

// objectName produces a collision-free object name preserving the upload's
// file extension.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewString() + ext
}

// validateUploads rejects files whose declared MIME type is outside the
// configured allow-list before anything reaches the blob store. Nil entries
// are skipped so optional uploads can be passed straight through.
func validateUploads(files ...*multipart.FileHeader) error {
	allowed := config.GetConfig().Upload.AllowedTypes
	for _, fh := range files {
		if fh == nil {
			continue
		}
		contentType := fh.Header.Get("Content-Type")
		ok := false
		for _, a := range allowed {
			if strings.EqualFold(contentType, a) {
				ok = true
				break
			}
		}
		if !ok {
			return apperrors.NewBadRequestError("Unsupported file type: " + contentType)
		}
	}
	return nil
}

// uploadBatch stores all files concurrently. Any single failure aborts the
// whole batch; callers treat a partial batch as a failed operation.
func uploadBatch(ctx context.Context, store storage.Storage, files []*multipart.FileHeader, folder string, kind storage.Kind) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return err
			}
			defer f.Close()

			obj, err := store.Store(gctx, f, folder, objectName(fh.Filename), kind)
			if err != nil {
				return err
			}
			urls[i] = obj.URL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// uploadSingle stores one file and returns its public URL.
func uploadSingle(ctx context.Context, store storage.Storage, fh *multipart.FileHeader, folder, name string, kind storage.Kind) (*storage.StoredObject, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return store.Store(ctx, f, folder, name, kind)
}
