package link

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{
			name:    "Valid HTTP URL",
			url:     "http://example.com",
			wantErr: nil,
		},
		{
			name:    "Valid HTTPS URL",
			url:     "https://example.com",
			wantErr: nil,
		},
		{
			name:    "Valid HTTPS URL with path",
			url:     "https://example.com/path/to/page",
			wantErr: nil,
		},
		{
			name:    "Valid HTTPS URL with query params",
			url:     "https://example.com/path?key=value&foo=bar",
			wantErr: nil,
		},
		{
			name:    "Invalid URL format",
			url:     "not a url",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "FTP scheme (not allowed)",
			url:     "ftp://example.com",
			wantErr: ErrInvalidScheme,
		},
		{
			name:    "File scheme (not allowed)",
			url:     "file:///etc/passwd",
			wantErr: ErrInvalidScheme,
		},
		{
			name:    "Javascript scheme (not allowed)",
			url:     "javascript:alert('xss')",
			wantErr: ErrInvalidScheme,
		},
		{
			name:    "Empty URL",
			url:     "",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "Missing scheme",
			url:     "example.com",
			wantErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateURL(tt.url)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else {
				if err == nil {
					t.Errorf("ValidateURL() expected error %v, got nil", tt.wantErr)
				} else if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{
			name:    "Minimum length",
			code:    "abc",
			wantErr: nil,
		},
		{
			name:    "Maximum length",
			code:    strings.Repeat("a", 20),
			wantErr: nil,
		},
		{
			name:    "Generated length",
			code:    "a1B2c3",
			wantErr: nil,
		},
		{
			name:    "Too short",
			code:    "ab",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "Empty",
			code:    "",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "Too long",
			code:    strings.Repeat("a", 21),
			wantErr: ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateCode(tt.code)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}
