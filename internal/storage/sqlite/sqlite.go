package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shortlink/internal/domain/link"
	"shortlink/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

// New initializes a new SQLite storage with the given file path.
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s : %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveLink inserts a new link row, assigning the id and both timestamps.
// Returns storage.ErrCodeExists if shortCode is already taken by any owner.
func (s *Storage) SaveLink(ctx context.Context, ownerID, shortCode, originalURL string) (link.Link, error) {
	const op = "storage.sqlite.SaveLink"

	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO links (owner_id, short_code, original_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ownerID, shortCode, originalURL, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return link.Link{}, storage.ErrCodeExists
		}
		return link.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return link.Link{}, fmt.Errorf("%s: failed to get inserted id: %w", op, err)
	}

	return link.Link{
		ID:          id,
		OwnerID:     ownerID,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateLink applies new shortCode and originalURL to the row matching both
// id and ownerID, refreshing updated_at. The id+owner match is the sole
// authorization check; a row owned by someone else reports
// storage.ErrLinkNotFound, indistinguishable from a missing row.
func (s *Storage) UpdateLink(ctx context.Context, id int64, ownerID, shortCode, originalURL string) (link.Link, error) {
	const op = "storage.sqlite.UpdateLink"

	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`UPDATE links SET short_code = ?, original_url = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		shortCode, originalURL, now, id, ownerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return link.Link{}, storage.ErrCodeExists
		}
		return link.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return link.Link{}, fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}
	if affected == 0 {
		return link.Link{}, storage.ErrLinkNotFound
	}

	var l link.Link
	err = s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, short_code, original_url, created_at, updated_at
		 FROM links WHERE id = ?`,
		id,
	).Scan(&l.ID, &l.OwnerID, &l.ShortCode, &l.OriginalURL, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return link.Link{}, fmt.Errorf("%s: failed to read back updated row: %w", op, err)
	}

	return l, nil
}

// DeleteLink removes the row matching both id and ownerID and reports
// whether a row was removed.
func (s *Storage) DeleteLink(ctx context.Context, id int64, ownerID string) (bool, error) {
	const op = "storage.sqlite.DeleteLink"

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM links WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	return affected > 0, nil
}

// GetLinkByCode is the redirect hot path: a single exact-match lookup on the
// unique short_code index.
func (s *Storage) GetLinkByCode(ctx context.Context, shortCode string) (link.Link, error) {
	const op = "storage.sqlite.GetLinkByCode"

	var l link.Link
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, short_code, original_url, created_at, updated_at
		 FROM links WHERE short_code = ?`,
		shortCode,
	).Scan(&l.ID, &l.OwnerID, &l.ShortCode, &l.OriginalURL, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return link.Link{}, storage.ErrLinkNotFound
		}
		return link.Link{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

// ListLinksByOwner returns the owner's links, most recently updated first.
func (s *Storage) ListLinksByOwner(ctx context.Context, ownerID string) ([]link.Link, error) {
	const op = "storage.sqlite.ListLinksByOwner"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, short_code, original_url, created_at, updated_at
		 FROM links WHERE owner_id = ?
		 ORDER BY updated_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var links []link.Link
	for rows.Next() {
		var l link.Link
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.ShortCode, &l.OriginalURL, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return links, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
