package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domain "shortlink/internal/domain/link"
	"shortlink/internal/http-server/middleware/auth"
	resp "shortlink/internal/lib/api/response"
	"shortlink/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	OriginalURL string `json:"original_url" validate:"required,url"`
	ShortCode   string `json:"short_code,omitempty" validate:"omitempty,min=3,max=20"`
}

type Response struct {
	resp.Response
	Link domain.Link `json:"link,omitzero"`
}

//go:generate go run github.com/vektra/mockery/v3
type LinkCreator interface {
	Create(ctx context.Context, ownerID, originalURL, shortCode string) (domain.Link, error)
}

func New(log *slog.Logger, linkCreator LinkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.link.save.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("failed to decode request body", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid request body"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("request decoded", slog.Any("req", req))

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

		saved, err := linkCreator.Create(r.Context(), ownerID, req.OriginalURL, req.ShortCode)

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
			if errors.Is(err, domain.ErrCodeTaken) {
				metrics.CodeConflictsTotal.Inc()
				err = resp.RenderJSON(w, http.StatusConflict, resp.Error("short code already taken"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}

			log.Error("failed to save link", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("link saved successfully",
			slog.String("short_code", saved.ShortCode),
			slog.String("original_url", saved.OriginalURL),
		)

		metrics.LinksCreatedTotal.Inc()

		err = resp.RenderJSON(w, http.StatusCreated, Response{
			Response: resp.OK(),
			Link:     saved,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
