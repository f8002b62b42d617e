package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/middleware/auth"
	resp "shortlink/internal/lib/api/response"
	"shortlink/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Request carries the full new state of the link. Unlike create, both
// fields are mandatory on update.
type Request struct {
	OriginalURL string `json:"original_url" validate:"required,url"`
	ShortCode   string `json:"short_code" validate:"required,min=3,max=20"`
}

type Response struct {
	resp.Response
	Link domain.Link `json:"link,omitzero"`
}

//go:generate go run github.com/vektra/mockery/v3
type LinkUpdater interface {
	Update(ctx context.Context, ownerID string, id int64, originalURL, shortCode string) (domain.Link, error)
}

func New(log *slog.Logger, linkUpdater LinkUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.link.update.New"

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

		var req Request

		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("failed to decode request body", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid request body"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("request decoded", slog.Int64("id", id), slog.Any("req", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", slog.String("error", err.Error()))

			err = resp.RenderJSON(w, http.StatusBadRequest, resp.ValidationError(validateErr))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		ownerID, ok := auth.GetOwnerID(r.Context())
		if !ok {
			log.Error("failed to get owner id from context")

			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("failed to get owner id"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		updated, err := linkUpdater.Update(r.Context(), ownerID, id, req.OriginalURL, req.ShortCode)

		if err != nil {
			if errors.Is(err, domain.ErrInvalidURL) || errors.Is(err, domain.ErrInvalidScheme) {
				err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid URL"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}
			if errors.Is(err, domain.ErrInvalidCode) {
				err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error(domain.ErrInvalidCode.Error()))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}
			// Missing and not-owned are deliberately the same answer.
			if errors.Is(err, domain.ErrLinkNotFound) {
				log.Info("link not found or not owned", slog.Int64("id", id))
				err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("not found or no permission"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}
			if errors.Is(err, domain.ErrCodeTaken) {
				metrics.CodeConflictsTotal.Inc()
				err = resp.RenderJSON(w, http.StatusConflict, resp.Error("short code already taken"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}

			log.Error("failed to update link", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("link updated successfully",
			slog.Int64("id", updated.ID),
			slog.String("short_code", updated.ShortCode),
		)

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			Link:     updated,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
