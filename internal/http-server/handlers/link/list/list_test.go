package list_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/handlers/link/list"
	"shortlink/internal/http-server/handlers/link/list/mocks"
	"shortlink/internal/http-server/middleware/auth"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListHandler(t *testing.T) {
	now := time.Now().UTC()

	links := []domain.Link{
		{ID: 2, OwnerID: "owner-a", ShortCode: "newer", OriginalURL: "https://example.com/2", CreatedAt: now, UpdatedAt: now},
		{ID: 1, OwnerID: "owner-a", ShortCode: "older", OriginalURL: "https://example.com/1", CreatedAt: now, UpdatedAt: now.Add(-time.Hour)},
	}

	cases := []struct {
		name       string
		mockLinks  []domain.Link
		mockError  error
		wantCount  int
		statusCode int
	}{
		{
			name:       "Success",
			mockLinks:  links,
			wantCount:  2,
			statusCode: http.StatusOK,
		},
		{
			name:       "Empty list",
			mockLinks:  nil,
			wantCount:  0,
			statusCode: http.StatusOK,
		},
		{
			name:       "List error",
			mockError:  errors.New("database error"),
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			linkListerMock := mocks.NewMockLinkLister(t)
			linkListerMock.On("List", mock.Anything, "owner-a").
				Return(tc.mockLinks, tc.mockError).
				Once()

			handler := list.New(slog.New(slog.NewTextHandler(io.Discard, nil)), linkListerMock)

			req, err := http.NewRequest(http.MethodGet, "/api/links", nil)
			require.NoError(t, err)

			ctx := context.WithValue(req.Context(), auth.ContextKeyOwnerID, "owner-a")
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			if tc.statusCode != http.StatusOK {
				return
			}

			var resp list.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Len(t, resp.Links, tc.wantCount)
		})
	}
}

func TestListHandlerMissingIdentity(t *testing.T) {
	t.Parallel()

	linkListerMock := mocks.NewMockLinkLister(t)
	handler := list.New(slog.New(slog.NewTextHandler(io.Discard, nil)), linkListerMock)

	req, err := http.NewRequest(http.MethodGet, "/api/links", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
