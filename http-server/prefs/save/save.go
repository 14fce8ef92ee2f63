package save

import (
	"context"
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
	Error  string        `json:"error,omitempty"`
}

type PrefsSaver interface {
	SavePrefs(ctx context.Context, key string, prefs storage.Prefs) error
}

// SavePrefs persists the UI preferences sent by the SPA. Unknown fields
// in the payload are dropped before saving.
func SavePrefs(log *slog.Logger, store PrefsSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.prefs.save.SavePrefs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var prefs storage.Prefs
		if err := render.DecodeJSON(r.Body, &prefs); err != nil {
			log.Error("bad prefs payload", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: "invalid prefs payload"})
			return
		}
		prefs = prefs.Sanitize()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := store.SavePrefs(ctx, storage.PrefsKey, prefs); err != nil {
			log.Error("save prefs", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Status: "error", Error: "could not save prefs"})
			return
		}

		render.JSON(w, r, Response{Prefs: prefs, Status: "OK"})
	}
}
