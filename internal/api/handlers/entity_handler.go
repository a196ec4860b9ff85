package handlers

import (
	"net/http"

	"github.com/friber/move-to-go/internal/service"
)

// EntityHandler validates and serializes import documents without touching the remote system.
type EntityHandler struct{}

func NewEntityHandler() *EntityHandler {
	return &EntityHandler{}
}

func (h *EntityHandler) Validate(w http.ResponseWriter, r *http.Request) {
	result := readDocument(w, r)
	if result == nil {
		return
	}

	reports := service.ValidateAll(result.Entities())
	valid := true
	for _, rep := range reports {
		valid = valid && rep.Valid
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":    valid,
		"results":  reports,
		"warnings": nonNil(result.Warnings),
	})
}

func (h *EntityHandler) Serialize(w http.ResponseWriter, r *http.Request) {
	result := readDocument(w, r)
	if result == nil {
		return
	}

	payloads, err := service.SerializeAll(result.Entities())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error trying to serialize: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payloads": payloads,
		"warnings": nonNil(result.Warnings),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
