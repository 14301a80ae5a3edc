package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/upload"
)

// Upload handles the ad hoc file-upload endpoint used by editor tooling.
// It stores the "file" part and answers with the public URL as JSON.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeUploadError(w, "No file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := a.uploads.Save(file, header)
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		writeUploadError(w, "File too large. Maximum size is 5 MB.", http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, upload.ErrUnsupportedType):
		writeUploadError(w, "Unsupported file type.", http.StatusBadRequest)
		return
	case err != nil:
		slog.Error("upload failed", "error", err)
		writeUploadError(w, "Failed to store the file.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": path})
}

// writeUploadError sends a structured JSON error body with the given status.
func writeUploadError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
