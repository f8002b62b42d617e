package link

import (
	"context"
	"fmt"

	domain "shortlink/internal/domain/link"
)

// Delete removes the link matching id and ownerID. It reports false both
// when the id does not exist and when it belongs to a different owner.
func (s *Service) Delete(ctx context.Context, ownerID string, id int64) (bool, error) {
	const op = "link.Service.Delete"

	if ownerID == "" {
		return false, fmt.Errorf("%s: %w", op, domain.ErrUnauthenticated)
	}

	removed, err := s.provider.DeleteLink(ctx, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("%s: failed to delete link: %w", op, err)
	}

	return removed, nil
}
