package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"

	"github.com/friber/move-to-go/internal/repository"
	"github.com/friber/move-to-go/internal/service"
)

type SyncHandler struct {
	syncService *service.SyncService
	log         logr.Logger
}

func NewSyncHandler(syncService *service.SyncService, log logr.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		log:         log,
	}
}

// Push runs a synchronous sync of the posted document. ?source= labels the run.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	result := readDocument(w, r)
	if result == nil {
		return
	}

	source := r.URL.Query().Get("source")
	if source == "" {
		source = "api"
	}

	run, err := h.syncService.Push(r.Context(), source, result.Entities())
	if errors.Is(err, service.ErrNoSender) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		h.log.Error(err, "push failed", "run", run.ID)
		writeError(w, http.StatusInternalServerError, "Error trying to push: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run":      run,
		"warnings": nonNil(result.Warnings),
	})
}

func (h *SyncHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.syncService.GetRun(id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run "+id+" not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error trying to get run: "+err.Error())
		return
	}

	entities, err := h.syncService.RunEntities(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error trying to get run entities: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run":      run,
		"entities": entities,
	})
}

func (h *SyncHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	runs, err := h.syncService.ListRuns(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error trying to list runs: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"runs": runs,
	})
}
