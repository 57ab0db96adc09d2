// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service/storage layers.
var (
	// ErrNotAuthenticated indicates no resolvable user identifier in the session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAggregation indicates an event discovery lookup failed; partial
	// results are discarded, never returned.
	ErrAggregation = errors.New("aggregation failed")

	// ErrStorageWrite indicates an object storage write failed.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageAuth is the authentication/signature sub-kind of
	// ErrStorageWrite; errors.Is(err, ErrStorageWrite) holds for it too.
	ErrStorageAuth = fmt.Errorf("%w: authentication rejected", ErrStorageWrite)

	// ErrRecordWrite indicates the event record store rejected a write.
	ErrRecordWrite = errors.New("record write failed")

	// ErrDeletion indicates the event record store failed to delete.
	ErrDeletion = errors.New("deletion failed")
)
