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
	Records []workorder.Record `json:"records"`
	Total   int                `json:"total"`
	Source  string             `json:"source,omitempty"`
	Status  string             `json:"status"`
	Error   string             `json:"error,omitempty"`
}

type DatasetSource interface {
	Snapshot() (workorder.Dataset, string)
}

// GetRecords returns the filtered (and optionally sorted) records for the
// table view. With no query parameters it is the full dataset in input
// order.
func GetRecords(log *slog.Logger, source DatasetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.records.get.GetRecords"

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

		sortField, desc, err := query.SortFromQuery(r.URL.Query())
		if err != nil {
			log.Error("bad sort params", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: err.Error()})
			return
		}

		dataset, sourceName := source.Snapshot()
		records := query.Filter(dataset, spec)
		if sortField != "" {
			query.Sort(records, sortField, desc)
		}

		render.JSON(w, r, Response{
			Records: records,
			Total:   len(records),
			Source:  sourceName,
			Status:  "OK",
		})
	}
}
