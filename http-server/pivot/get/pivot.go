package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"vue-workorders/internal/query"
	"vue-workorders/internal/workorder"
)

type Response struct {
	Pivot  *query.Pivot `json:"pivot,omitempty"`
	Status string       `json:"status"`
	Error  string       `json:"error,omitempty"`
}

type DatasetSource interface {
	Snapshot() (workorder.Dataset, string)
}

// GetPivot returns the assignee-by-date count table over the filtered
// dataset, aggregated on the selected date field.
func GetPivot(log *slog.Logger, source DatasetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.pivot.get.GetPivot"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		spec, err := query.FromQuery(r.URL.Query())
		if err != nil {
			log.Error("bad filter params", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: err.Error()})
			return
		}

		dataset, _ := source.Snapshot()
		filtered := query.Filter(dataset, spec)
		pivot := query.Aggregate(filtered, spec.EffectiveDateField())

		render.JSON(w, r, Response{Pivot: pivot, Status: "OK"})
	}
}
