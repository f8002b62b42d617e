package redirect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domain "shortlink/internal/domain/link"
	resp "shortlink/internal/lib/api/response"
	"shortlink/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type LinkResolver interface {
	Resolve(ctx context.Context, shortCode string) (string, error)
}

// New serves the public redirect path. Exactly two terminal outcomes per
// request: a 302 to the destination, or a not-found response.
func New(log *slog.Logger, resolver LinkResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.redirect.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		shortCode := chi.URLParam(r, "shortCode")
		if shortCode == "" {
			log.Error("shortCode parameter is missing")
			err := resp.RenderJSON(w, http.StatusBadRequest, resp.Error("shortCode parameter is required"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		originalURL, err := resolver.Resolve(r.Context(), shortCode)
		if err != nil {
			if errors.Is(err, domain.ErrLinkNotFound) {
				log.Info("short code not found", slog.String("short_code", shortCode))
				err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("not found"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}
			if errors.Is(err, domain.ErrInvalidURL) || errors.Is(err, domain.ErrInvalidScheme) {
				log.Warn("blocked redirect for invalid stored URL", slog.String("short_code", shortCode))
				err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("unable to redirect"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}

			log.Error("failed to resolve short code", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		http.Redirect(w, r, originalURL, http.StatusFound)
		log.Info("redirected", slog.String("short_code", shortCode), slog.String("original_url", originalURL))

		metrics.RedirectsTotal.Inc()
	}
}
