package get

import (
	"net/http"

	"github.com/go-chi/render"

	"vue-workorders/internal/workorder"
)

type FieldInfo struct {
	ID    workorder.Field `json:"id"`
	Label string          `json:"label"`
	Kind  workorder.Kind  `json:"kind"`
}

type Response struct {
	Fields []FieldInfo `json:"fields"`
	Status string      `json:"status"`
}

// GetFields lists the canonical field set so the SPA can build its filter
// controls and column chooser without hardcoding the schema.
func GetFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := make([]FieldInfo, 0, len(workorder.Fields))
		for _, f := range workorder.Fields {
			fields = append(fields, FieldInfo{
				ID:    f,
				Label: workorder.LabelOf(f),
				Kind:  workorder.KindOf(f),
			})
		}
		render.JSON(w, r, Response{Fields: fields, Status: "OK"})
	}
}
