package storage

import (
	"context"
	"errors"

	"shortlink/internal/domain/link"
)

var (
	// ErrLinkNotFound is returned when no row matches a lookup, including
	// id+owner scoped updates and deletes that match nothing.
	ErrLinkNotFound = errors.New("link not found")
	// ErrCodeExists is returned when an insert or update would violate the
	// global unique constraint on short_code.
	ErrCodeExists = errors.New("short code already exists")
)

// Storage is the persistent link store. Uniqueness of short_code is enforced
// by the store at commit time, never by a read-then-write in the caller.
type Storage interface {
	SaveLink(ctx context.Context, ownerID, shortCode, originalURL string) (link.Link, error)
	UpdateLink(ctx context.Context, id int64, ownerID, shortCode, originalURL string) (link.Link, error)
	DeleteLink(ctx context.Context, id int64, ownerID string) (bool, error)
	GetLinkByCode(ctx context.Context, shortCode string) (link.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]link.Link, error)
	Close() error
}
