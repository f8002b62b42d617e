package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"shortlink/internal/http-server/middleware/auth"
	resp "shortlink/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type LinkDeleter interface {
	Delete(ctx context.Context, ownerID string, id int64) (bool, error)
}

func New(log *slog.Logger, linkDeleter LinkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.link.delete.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid id parameter", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid id parameter"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		ownerID, ok := auth.GetOwnerID(r.Context())
		if !ok {
			log.Error("failed to get owner id from context")
			err := resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("failed to get owner id"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log = log.With(slog.Int64("id", id))

		removed, err := linkDeleter.Delete(r.Context(), ownerID, id)
		if err != nil {
			log.Error("failed to delete link", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		// False covers both "does not exist" and "not yours".
		if !removed {
			log.Info("link not found or not owned")
			err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("not found or no permission"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("link deleted successfully")

		err = resp.RenderJSON(w, http.StatusOK, resp.OK())
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
