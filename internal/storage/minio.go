package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/snapfest/snapfest/internal/errs"
)

// MinioStore implements ObjectStore on any S3-compatible endpoint.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to an S3-compatible endpoint.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, secure bool) (*MinioStore, error) {
	cl, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{client: cl, bucket: bucket}, nil
}

// PutObject uploads body under key and returns the object's public URL.
func (s *MinioStore) PutObject(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", classifyPutError(key, err)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.client.EndpointURL().String(), "/"), s.bucket, key), nil
}

// classifyPutError maps S3 error codes onto the errs taxonomy so the
// provisioner can distinguish credential problems from generic failures.
func classifyPutError(key string, err error) error {
	sentinel := errs.ErrStorageWrite
	switch minio.ToErrorResponse(err).Code {
	case "SignatureDoesNotMatch", "InvalidAccessKeyId", "AccessDenied":
		sentinel = errs.ErrStorageAuth
	}
	return fmt.Errorf("put %s: %w: %v", key, sentinel, err)
}
