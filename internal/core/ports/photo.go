package ports

import (
	"context"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

// PhotoUpload is one incoming file for the photo store.
type PhotoUpload struct {
	FileName string
	Content  []byte
}

// PhotoStore is the narrow interface to the external photo storage. The core
// treats stored photos as opaque references; keys are derived from the
// customer name and vehicle plate.
type PhotoStore interface {
	Upload(ctx context.Context, files []PhotoUpload, customer, plate string) ([]domain.Photo, error)
	List(ctx context.Context, customer, plate string) ([]domain.Photo, error)
	Open(ctx context.Context, fileID string) (fileName string, content []byte, err error)
}
