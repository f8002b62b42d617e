package save_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/handlers/link/save"
	"shortlink/internal/http-server/handlers/link/save/mocks"
	"shortlink/internal/http-server/middleware/auth"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveHandler(t *testing.T) {
	cases := []struct {
		name       string
		shortCode  string
		url        string
		respError  string
		mockError  error
		statusCode int
	}{
		{
			name:       "Success",
			shortCode:  "my_code",
			url:        "https://google.com",
			statusCode: http.StatusCreated,
		},
		{
			name:       "Empty short code",
			shortCode:  "",
			url:        "https://google.com",
			statusCode: http.StatusCreated,
		},
		{
			name:       "Empty URL",
			url:        "",
			shortCode:  "somecode",
			respError:  "field OriginalURL is a required field",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Invalid URL",
			url:        "some invalid URL",
			shortCode:  "somecode",
			respError:  "field OriginalURL is not a valid URL",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Short code too short",
			url:        "https://google.com",
			shortCode:  "ab",
			respError:  "field ShortCode must be between 3 and 20 characters",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Code taken",
			shortCode:  "abc",
			url:        "https://google.com",
			respError:  "short code already taken",
			mockError:  domain.ErrCodeTaken,
			statusCode: http.StatusConflict,
		},
		{
			name:       "Create error",
			shortCode:  "my_code",
			url:        "https://google.com",
			respError:  "internal error",
			mockError:  errors.New("unexpected error"),
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			linkCreatorMock := mocks.NewMockLinkCreator(t)

			if tc.respError == "" || tc.mockError != nil {
				linkCreatorMock.On("Create", mock.Anything, "owner-a", tc.url, tc.shortCode).
					Return(domain.Link{
						ID:          1,
						OwnerID:     "owner-a",
						ShortCode:   tc.shortCode,
						OriginalURL: tc.url,
					}, tc.mockError).
					Once()
			}

			handler := save.New(slog.New(slog.NewTextHandler(io.Discard, nil)), linkCreatorMock)

			input := fmt.Sprintf(`{"original_url": "%s", "short_code": "%s"}`, tc.url, tc.shortCode)

			req, err := http.NewRequest(http.MethodPost, "/api/links", bytes.NewReader([]byte(input)))
			require.NoError(t, err)

			ctx := context.WithValue(req.Context(), auth.ContextKeyOwnerID, "owner-a")
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			var resp save.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)
		})
	}
}

func TestSaveHandlerMissingIdentity(t *testing.T) {
	t.Parallel()

	linkCreatorMock := mocks.NewMockLinkCreator(t)
	handler := save.New(slog.New(slog.NewTextHandler(io.Discard, nil)), linkCreatorMock)

	input := `{"original_url": "https://google.com"}`

	req, err := http.NewRequest(http.MethodPost, "/api/links", bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
