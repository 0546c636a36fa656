package utils

import (
	"encoding/json"
	"net/http"

	"github.com/waifuisalie/ChallengeChain/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("could not encode response: %v", err)
	}
}

// Success writes payload with 200 OK.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Created writes payload with 201 Created.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// Error writes {"message": message}. Causes are logged server-side only.
func Error(w http.ResponseWriter, status int, message string, errs ...error) {
	for _, err := range errs {
		if err != nil {
			logger.Error("[%d] %s: %v", status, message, err)
		}
	}
	JSON(w, status, ErrorResponse{Message: message})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, ErrorResponse{Message: msg})
}
