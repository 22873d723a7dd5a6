package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"ukmprhub/internal/apperr"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Media normalizes image fields submitted by the client. Values are either
// plain URLs, kept as is, or base64 data-URIs, which are checked and, when
// object storage is configured, uploaded and replaced by their URL.
type Media struct {
	store   Storage
	maxSize int64
}

// NewMedia builds a Media. A nil store keeps data-URIs inline.
func NewMedia(store Storage, maxSize int64) *Media {
	return &Media{store: store, maxSize: maxSize}
}

func (m *Media) Normalize(ctx context.Context, folder string, value *string) (*string, error) {
	if value == nil || !strings.HasPrefix(*value, "data:") {
		return value, nil
	}

	data, err := decodeDataURI(*value)
	if err != nil {
		return nil, apperr.Validation("invalid image data")
	}

	if m.maxSize > 0 && int64(len(data)) > m.maxSize {
		return nil, apperr.Validation(fmt.Sprintf("image exceeds %d bytes", m.maxSize))
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, apperr.Validation("unsupported image type " + mtype.String())
	}

	if m.store == nil {
		return value, nil
	}

	url, err := m.store.UploadImage(ctx, folder, data, mtype.String(), mtype.Extension())
	if err != nil {
		return nil, apperr.Upstream("image upload failed", err)
	}

	return &url, nil
}

// Remove deletes an uploaded object. Inline images and foreign URLs are ignored.
func (m *Media) Remove(ctx context.Context, value *string) {
	if m.store == nil || value == nil {
		return
	}

	objectName, ok := m.store.ObjectName(*value)
	if !ok {
		return
	}

	if err := m.store.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func decodeDataURI(uri string) ([]byte, error) {
	header, payload, found := strings.Cut(uri, ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	return base64.StdEncoding.DecodeString(payload)
}
