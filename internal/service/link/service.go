package link

import (
	"context"
	"log/slog"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/lib/api/random"
)

// generateAttempts bounds how many fresh candidates are tried when a
// generated code loses the uniqueness race at the store. With 62^6 possible
// codes a single collision is already rare; three attempts keep it invisible
// to callers without looping forever as the code space fills.
const generateAttempts = 3

// Provider defines the storage operations the service needs.
type Provider interface {
	SaveLink(ctx context.Context, ownerID, shortCode, originalURL string) (domain.Link, error)
	UpdateLink(ctx context.Context, id int64, ownerID, shortCode, originalURL string) (domain.Link, error)
	DeleteLink(ctx context.Context, id int64, ownerID string) (bool, error)
	GetLinkByCode(ctx context.Context, shortCode string) (domain.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]domain.Link, error)
}

// Service orchestrates all link mutations and lookups. It is the only
// component that talks to the store, and every mutation requires a caller
// identity.
type Service struct {
	log       *slog.Logger
	provider  Provider
	generator *random.Generator
}

// New creates a new link service.
func New(log *slog.Logger, provider Provider, generator *random.Generator) *Service {
	return &Service{
		log:       log,
		provider:  provider,
		generator: generator,
	}
}
