package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	fieldsget "vue-workorders/http-server/fields/get"
	pivotget "vue-workorders/http-server/pivot/get"
	prefsget "vue-workorders/http-server/prefs/get"
	prefssave "vue-workorders/http-server/prefs/save"
	recordsget "vue-workorders/http-server/records/get"
	sessionclear "vue-workorders/http-server/session/clear"
	synonymsget "vue-workorders/http-server/synonyms/get"
	"vue-workorders/http-server/upload"
	"vue-workorders/internal/config"
	"vue-workorders/internal/ingest"
	"vue-workorders/internal/middleware/auth"
	"vue-workorders/internal/session"
	"vue-workorders/internal/storage"
)

func routes(cfg config.Config, log *slog.Logger, sess *session.Session, normalizer *ingest.Normalizer, prefsStore storage.PrefsStore) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/api/upload", upload.UploadFile(log, normalizer, sess, cfg.MaxUploadBytes))
	router.Get("/api/records", recordsget.GetRecords(log, sess))
	router.Get("/api/pivot", pivotget.GetPivot(log, sess))
	router.Get("/api/fields", fieldsget.GetFields())
	router.Post("/api/session/clear", sessionclear.ClearSession(log, sess))

	router.Get("/api/prefs", prefsget.GetPrefs(log, prefsStore))
	router.Put("/api/prefs/update", prefssave.SavePrefs(log, prefsStore))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Get("/synonyms", synonymsget.GetSynonyms())
	router.Mount("/api/admin", adminRouter)

	// Static SPA, when a built frontend is present.
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dist not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))
	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: unknown paths get index.html.
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
