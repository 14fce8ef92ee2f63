package get

import (
	"net/http"

	"github.com/go-chi/render"

	"vue-workorders/internal/ingest"
	"vue-workorders/internal/workorder"
)

type Response struct {
	Synonyms map[workorder.Field][]string `json:"synonyms"`
	Status   string                       `json:"status"`
}

// GetSynonyms exposes the header synonym table for admin inspection, so
// an unrecognized export's headers can be checked against what the
// resolver actually knows.
func GetSynonyms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{Synonyms: ingest.Synonyms(), Status: "OK"})
	}
}
