package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/friber/move-to-go/internal/importer"
)

const maxDocumentSize = 10 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// readDocument decodes the request body as an import document and builds its entities.
// It writes the error response itself and returns nil on failure.
func readDocument(w http.ResponseWriter, r *http.Request) *importer.Result {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return nil
	}
	if len(body) > maxDocumentSize {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("document larger than %d bytes", maxDocumentSize))
		return nil
	}

	doc, err := importer.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil
	}

	result, err := importer.Build(doc)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "Error trying to build entities: " + err.Error(),
			"warnings": result.Warnings,
		})
		return nil
	}
	return result
}
