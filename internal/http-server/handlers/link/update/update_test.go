package update_test

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
	"shortlink/internal/http-server/handlers/link/update"
	"shortlink/internal/http-server/handlers/link/update/mocks"
	"shortlink/internal/http-server/middleware/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateHandler(t *testing.T) {
	cases := []struct {
		name       string
		id         string
		shortCode  string
		url        string
		respError  string
		mockError  error
		statusCode int
	}{
		{
			name:       "Success",
			id:         "5",
			shortCode:  "newcode",
			url:        "https://example.com/new",
			statusCode: http.StatusOK,
		},
		{
			name:       "Non-numeric id",
			id:         "abc",
			shortCode:  "newcode",
			url:        "https://example.com/new",
			respError:  "invalid id parameter",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Missing short code",
			id:         "5",
			shortCode:  "",
			url:        "https://example.com/new",
			respError:  "field ShortCode is a required field",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Missing URL",
			id:         "5",
			shortCode:  "newcode",
			url:        "",
			respError:  "field OriginalURL is a required field",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Not found or not owned",
			id:         "5",
			shortCode:  "newcode",
			url:        "https://example.com/new",
			respError:  "not found or no permission",
			mockError:  domain.ErrLinkNotFound,
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Code taken",
			id:         "5",
			shortCode:  "taken1",
			url:        "https://example.com/new",
			respError:  "short code already taken",
			mockError:  domain.ErrCodeTaken,
			statusCode: http.StatusConflict,
		},
		{
			name:       "Update error",
			id:         "5",
			shortCode:  "newcode",
			url:        "https://example.com/new",
			respError:  "internal error",
			mockError:  errors.New("unexpected error"),
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			linkUpdaterMock := mocks.NewMockLinkUpdater(t)

			if tc.respError == "" || tc.mockError != nil {
				linkUpdaterMock.On("Update", mock.Anything, "owner-a", int64(5), tc.url, tc.shortCode).
					Return(domain.Link{
						ID:          5,
						OwnerID:     "owner-a",
						ShortCode:   tc.shortCode,
						OriginalURL: tc.url,
					}, tc.mockError).
					Once()
			}

			handler := update.New(slog.New(slog.NewTextHandler(io.Discard, nil)), linkUpdaterMock)

			input := fmt.Sprintf(`{"original_url": "%s", "short_code": "%s"}`, tc.url, tc.shortCode)

			req, err := http.NewRequest(http.MethodPut, "/api/links/"+tc.id, bytes.NewReader([]byte(input)))
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			req = req.WithContext(context.WithValue(req.Context(), auth.ContextKeyOwnerID, "owner-a"))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			var resp update.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)
		})
	}
}
