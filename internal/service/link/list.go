package link

import (
	"context"
	"fmt"

	domain "shortlink/internal/domain/link"
)

// List returns the caller's links, most recently updated first.
func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Link, error) {
	const op = "link.Service.List"

	if ownerID == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrUnauthenticated)
	}

	links, err := s.provider.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	return links, nil
}
