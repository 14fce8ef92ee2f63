package clear

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	Status string `json:"status"`
}

type Clearer interface {
	Clear()
}

// ClearSession drops the loaded dataset.
func ClearSession(log *slog.Logger, sess Clearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.clear.ClearSession"

		sess.Clear()
		log.Info("session cleared",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		render.JSON(w, r, Response{Status: "OK"})
	}
}
