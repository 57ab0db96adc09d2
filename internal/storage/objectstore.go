// Package storage provides the object storage namespace for event
// assets and a client for writing into it.
package storage

import "context"

// ContentTypeDirectory marks empty placeholder objects that represent
// folders in the flat key namespace.
const ContentTypeDirectory = "application/x-directory"

// ObjectStore writes binary assets under a hierarchical key namespace.
type ObjectStore interface {
	// PutObject writes body under key with the given content type and
	// returns the publicly dereferenceable URL of the object. Failures
	// wrap errs.ErrStorageWrite; authentication/signature rejections
	// wrap errs.ErrStorageAuth.
	PutObject(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
