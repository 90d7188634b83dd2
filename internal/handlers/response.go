package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

const maxBodyBytes = 1 << 20

// ViewResponse wraps a rendered section.
type ViewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	View    any    `json:"view"`
}

// ActionResponse reports an action and carries the section rendered after it.
type ActionResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Form    any               `json:"form,omitempty"`
	View    any               `json:"view"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func actionResponse(out views.Outcome, view any) ActionResponse {
	return ActionResponse{
		Success: out.Success,
		Message: out.Message,
		Fields:  out.Fields,
		Form:    out.Form,
		View:    view,
	}
}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}

// decodeBody reads a JSON request body into dst, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
