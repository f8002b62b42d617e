package list

import (
	"context"
	"log/slog"
	"net/http"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/middleware/auth"
	resp "shortlink/internal/lib/api/response"

	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	Links []domain.Link `json:"links"`
}

//go:generate go run github.com/vektra/mockery/v3
type LinkLister interface {
	List(ctx context.Context, ownerID string) ([]domain.Link, error)
}

// New returns the caller's links, most recently updated first.
func New(log *slog.Logger, linkLister LinkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.link.list.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ownerID, ok := auth.GetOwnerID(r.Context())
		if !ok {
			log.Error("failed to get owner id from context")
			err := resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("failed to get owner id"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		links, err := linkLister.List(r.Context(), ownerID)
		if err != nil {
			log.Error("failed to list links", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		if links == nil {
			links = []domain.Link{}
		}

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			Links:    links,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
