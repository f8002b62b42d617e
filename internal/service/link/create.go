package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/storage"
)

// Create validates and stores a new link for ownerID. An empty shortCode
// requests a system-generated code of domain.GeneratedCodeLength; a supplied
// code must satisfy the length bound. A supplied code that is already taken
// fails with domain.ErrCodeTaken immediately, a generated one is retried
// with fresh candidates up to generateAttempts times first.
func (s *Service) Create(ctx context.Context, ownerID, originalURL, shortCode string) (domain.Link, error) {
	const op = "link.Service.Create"

	if ownerID == "" {
		return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrUnauthenticated)
	}

	if err := domain.ValidateURL(originalURL); err != nil {
		return domain.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	if shortCode != "" {
		if err := domain.ValidateCode(shortCode); err != nil {
			return domain.Link{}, fmt.Errorf("%s: %w", op, err)
		}

		l, err := s.provider.SaveLink(ctx, ownerID, shortCode, originalURL)
		if err != nil {
			if errors.Is(err, storage.ErrCodeExists) {
				return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrCodeTaken)
			}
			return domain.Link{}, fmt.Errorf("%s: failed to save link: %w", op, err)
		}

		return l, nil
	}

	for attempt := 1; attempt <= generateAttempts; attempt++ {
		code, err := s.generator.NewString(domain.GeneratedCodeLength)
		if err != nil {
			return domain.Link{}, fmt.Errorf("%s: failed to generate code: %w", op, err)
		}

		l, err := s.provider.SaveLink(ctx, ownerID, code, originalURL)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, storage.ErrCodeExists) {
			return domain.Link{}, fmt.Errorf("%s: failed to save link: %w", op, err)
		}

		s.log.Warn("generated code collided, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempt),
		)
	}

	return domain.Link{}, fmt.Errorf("%s: %w", op, domain.ErrCodeTaken)
}
