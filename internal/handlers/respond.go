package handlers

import (
	"encoding/json"
	"net/http"

	"study-mentor/internal/models"
)

const msgHandleFailed = "failed to handle request"

// FailureBody is written for every unexpected mentor failure.
var FailureBody = models.ErrorBody{Error: msgHandleFailed}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
