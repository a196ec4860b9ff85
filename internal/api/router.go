package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/friber/move-to-go/internal/api/handlers"
	"github.com/friber/move-to-go/internal/service"
)

func SetupRouter(syncService *service.SyncService, log logr.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(log))

	entityHandler := handlers.NewEntityHandler()
	syncHandler := handlers.NewSyncHandler(syncService, log.WithName("api"))

	router.Post("/entities/validate", entityHandler.Validate)
	router.Post("/entities/serialize", entityHandler.Serialize)
	router.Post("/sync", syncHandler.Push)
	router.Get("/runs", syncHandler.ListRuns)
	router.Get("/runs/{id}", syncHandler.GetRun)

	return router
}

func requestLogger(log logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.V(1).Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}
