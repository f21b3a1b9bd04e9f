package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

// Storage is the object store holding merchant compliance documents.
type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error)
}
