package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"vue-workorders/internal/ingest"
	"vue-workorders/internal/parser"
	"vue-workorders/internal/workorder"
)

type Response struct {
	Status string         `json:"status"`
	Error  string         `json:"error,omitempty"`
	File   string         `json:"file,omitempty"`
	Report *ingest.Report `json:"report,omitempty"`
}

type Loader interface {
	Load(ctx context.Context, res *parser.Result) (workorder.Dataset, *ingest.Report, error)
}

type DatasetSink interface {
	Replace(dataset workorder.Dataset, source string)
}

// UploadFile accepts one multipart work-order export, parses it by
// extension, normalizes it and replaces the session dataset. Any failure
// before the replace leaves the previously loaded data untouched.
func UploadFile(log *slog.Logger, loader Loader, sink DatasetSink, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.upload.UploadFile"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Error("missing upload file", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: "missing form field 'file'"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Error("read upload", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: "could not read uploaded file"})
			return
		}

		var res *parser.Result
		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".csv", ".txt":
			res, err = parser.ParseCSV(data)
		case ".xlsx", ".xlsm":
			res, err = parser.ParseXLSX(data)
		default:
			log.Error("unsupported file type", slog.String("ext", ext))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: "unsupported file type: " + ext})
			return
		}
		if err != nil {
			msg := "could not parse file"
			if errors.Is(err, parser.ErrNoHeader) {
				msg = "file has no header row"
			}
			log.Error("parse upload", slog.String("file", header.Filename), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Status: "error", Error: msg})
			return
		}

		dataset, report, err := loader.Load(r.Context(), res)
		if err != nil {
			log.Error("normalize upload", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Status: "error", Error: "could not normalize file"})
			return
		}

		sink.Replace(dataset, header.Filename)

		if report.NoHeadersRecognized {
			log.Warn("no headers recognized", slog.String("file", header.Filename))
		}
		log.Info("file loaded",
			slog.String("file", header.Filename),
			slog.Int("loaded", report.Loaded),
			slog.Int("dropped", report.Dropped),
		)

		render.JSON(w, r, Response{
			Status: "OK",
			File:   header.Filename,
			Report: report,
		})
	}
}
