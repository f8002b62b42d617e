package link

import (
	"context"
	"errors"
	"fmt"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/storage"
)

// Resolve is the read path: a single keyed lookup from short code to
// destination URL. It requires no identity. The stored URL is re-validated
// before it is handed out for a redirect.
func (s *Service) Resolve(ctx context.Context, shortCode string) (string, error) {
	const op = "link.Service.Resolve"

	l, err := s.provider.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, storage.ErrLinkNotFound) {
			return "", fmt.Errorf("%s: %w", op, domain.ErrLinkNotFound)
		}
		return "", fmt.Errorf("%s: failed to get link: %w", op, err)
	}

	if err = domain.ValidateURL(l.OriginalURL); err != nil {
		return "", fmt.Errorf("%s: stored url is invalid: %w", op, err)
	}

	return l.OriginalURL, nil
}
