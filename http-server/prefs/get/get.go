package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"vue-workorders/internal/storage"
)

type Response struct {
	Prefs  storage.Prefs `json:"prefs"`
	Status string        `json:"status"`
}

type PrefsGetter interface {
	GetPrefs(ctx context.Context, key string) (*storage.Prefs, error)
}

// GetPrefs returns the persisted UI preferences. Missing or unreadable
// saved state silently falls back to defaults; this endpoint never fails.
func GetPrefs(log *slog.Logger, store PrefsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.prefs.get.GetPrefs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		prefs, err := store.GetPrefs(ctx, storage.PrefsKey)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Warn("prefs unavailable, serving defaults", slog.String("error", err.Error()))
			}
			render.JSON(w, r, Response{Prefs: storage.DefaultPrefs(), Status: "OK"})
			return
		}

		render.JSON(w, r, Response{Prefs: prefs.Sanitize(), Status: "OK"})
	}
}
