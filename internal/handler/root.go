package handler

import (
	"net/http"

	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

type routeDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// RootHandler lists every route of the API.
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "ChallengeChain API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string][]routeDoc{
			"users": {
				{"POST", "/users", "Create a user"},
				{"GET", "/users/{id}", "Get a user by id"},
				{"GET", "/users/{id}/challenges", "Challenges created by a user"},
				{"GET", "/users/{id}/participations", "Participations of a user"},
			},
			"challenges": {
				{"GET", "/challenges", "List challenges with participants and pool"},
				{"GET", "/challenges/{id}", "Get a challenge with participants and pool"},
				{"POST", "/challenges", "Create a challenge"},
				{"PATCH", "/challenges/{id}/status", "Change the status of a challenge"},
				{"DELETE", "/challenges/{id}", "Delete a challenge and its participants"},
				{"GET", "/challenges/{id}/participants", "List participants with usernames"},
				{"POST", "/challenges/{id}/participants", "Join a challenge"},
				{"GET", "/challenges/{id}/leaderboard", "Leaderboard of one challenge"},
			},
			"participants": {
				{"PATCH", "/participants/{id}/score", "Update a participant score"},
				{"PATCH", "/participants/{id}/winner", "Declare the winner and complete the challenge"},
			},
			"leaderboard": {
				{"GET", "/leaderboard", "Leaderboard across all challenges"},
			},
			"uploads": {
				{"POST", "/upload", "Upload a challenge image (multipart field \"image\")"},
			},
			"health": {
				{"GET", "/health", "API health check"},
			},
		},
	})
}
