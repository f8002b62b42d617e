package redirect_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/handlers/redirect"
	"shortlink/internal/http-server/handlers/redirect/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedirectHandler(t *testing.T) {
	cases := []struct {
		name       string
		shortCode  string
		resolveURL string
		mockError  error
		statusCode int
		location   string
	}{
		{
			name:       "Success",
			shortCode:  "abc123",
			resolveURL: "https://example.com/a",
			statusCode: http.StatusFound,
			location:   "https://example.com/a",
		},
		{
			name:       "Not found",
			shortCode:  "doesnotexist",
			mockError:  domain.ErrLinkNotFound,
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Stored URL blocked",
			shortCode:  "evil",
			mockError:  domain.ErrInvalidScheme,
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Store failure",
			shortCode:  "abc123",
			mockError:  errors.New("database error"),
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resolverMock := mocks.NewMockLinkResolver(t)
			resolverMock.On("Resolve", mock.Anything, tc.shortCode).
				Return(tc.resolveURL, tc.mockError).
				Once()

			handler := redirect.New(slog.New(slog.NewTextHandler(io.Discard, nil)), resolverMock)

			req, err := http.NewRequest(http.MethodGet, "/l/"+tc.shortCode, nil)
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("shortCode", tc.shortCode)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			if tc.location != "" {
				require.Equal(t, tc.location, rr.Header().Get("Location"))
			}
		})
	}
}
