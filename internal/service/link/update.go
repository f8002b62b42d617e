package link

import (
	"context"
	"errors"
	"fmt"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/storage"
)

// Update replaces both originalURL and shortCode of the link matching id and
// ownerID. Both fields are mandatory. A missing id and an id owned by
// someone else both report domain.ErrLinkNotFound.
func (s *Service) Update(ctx context.Context, ownerID string, id int64, originalURL, shortCode string) (domain.Link, error) {
	const op = "link.Service.Update"

	if ownerID == "" {
		return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrUnauthenticated)
	}

	if err := domain.ValidateURL(originalURL); err != nil {
		return domain.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := domain.ValidateCode(shortCode); err != nil {
		return domain.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	l, err := s.provider.UpdateLink(ctx, id, ownerID, shortCode, originalURL)
	if err != nil {
		if errors.Is(err, storage.ErrLinkNotFound) {
			return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrLinkNotFound)
		}
		if errors.Is(err, storage.ErrCodeExists) {
			return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrCodeTaken)
		}
		return domain.Link{}, fmt.Errorf("%s: failed to update link: %w", op, err)
	}

	return l, nil
}
