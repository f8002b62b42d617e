package link

import (
	"errors"
	"net/url"
	"time"
)

// Short code length bounds for user-supplied codes. Generated codes are
// always GeneratedCodeLength characters.
const (
	MinCodeLength = 3
	MaxCodeLength = 20

	// GeneratedCodeLength is the length of system-generated short codes.
	GeneratedCodeLength = 6
)

var (
	// ErrInvalidURL indicates that the URL format is invalid
	ErrInvalidURL = errors.New("invalid URL format")
	// ErrInvalidScheme indicates that the URL scheme is not allowed
	ErrInvalidScheme = errors.New("only http and https schemes are allowed")
	// ErrInvalidCode indicates that the short code length is out of bounds
	ErrInvalidCode = errors.New("short code must be between 3 and 20 characters")
	// ErrCodeTaken indicates that the short code is already in use
	ErrCodeTaken = errors.New("short code already taken")
	// ErrLinkNotFound indicates that no link matched the request.
	// Deliberately covers both "does not exist" and "owned by someone else"
	// so callers cannot probe for other users' links.
	ErrLinkNotFound = errors.New("link not found")
	// ErrUnauthenticated indicates that a mutation was attempted without identity
	ErrUnauthenticated = errors.New("caller identity is required")
)

// Link is a mapping from a short code to a destination URL, owned by a
// single principal. ShortCode is globally unique across all owners.
type Link struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"-"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidateURL validates that the URL has correct format and uses http/https scheme
// to prevent open redirect vulnerabilities and malicious redirects
func ValidateURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	if parsedURL.Scheme == "" {
		return ErrInvalidURL
	}

	// Only allow http and https schemes
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidScheme
	}

	if parsedURL.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// ValidateCode checks the length bound for a user-supplied short code.
func ValidateCode(code string) error {
	if len(code) < MinCodeLength || len(code) > MaxCodeLength {
		return ErrInvalidCode
	}
	return nil
}
