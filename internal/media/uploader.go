// Package media turns an uploaded picture into a stored WebP object.
package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/imaging"
	"github.com/BruksfildServices01/event-catering/internal/storage"
)

type Uploader struct {
	store storage.ObjectStore
	newID func() string
}

// NewUploader accepts a nil store; uploads then fail with 503.
func NewUploader(store storage.ObjectStore) *Uploader {
	return &Uploader{store: store, newID: uuid.NewString}
}

func (u *Uploader) Upload(ctx context.Context, folder string, r io.Reader, maxDim int) (string, error) {
	if u.store == nil {
		return "", httperr.NewBusiness(http.StatusServiceUnavailable, "storage_not_configured", "Image uploads are not available.")
	}

	data, err := imaging.Process(r, maxDim)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return "", httperr.NewBusiness(http.StatusRequestEntityTooLarge, "image_too_large", "Image must be 5 MB or smaller.")
	case errors.Is(err, imaging.ErrTooManyPixels):
		return "", httperr.NewBusiness(http.StatusRequestEntityTooLarge, "image_dimensions_too_large", "Image must be at most 40 megapixels.")
	case errors.Is(err, imaging.ErrEmpty):
		return "", httperr.NewBusiness(http.StatusBadRequest, "image_required", "Image file is required.")
	case errors.Is(err, imaging.ErrUnsupportedType):
		return "", httperr.NewBusiness(http.StatusBadRequest, "unsupported_image_type", "Image must be JPEG, PNG, GIF or WebP.")
	case err != nil:
		return "", err
	}

	key := path.Join(folder, u.newID()+".webp")
	return u.store.Put(ctx, key, imaging.ContentType, data)
}
