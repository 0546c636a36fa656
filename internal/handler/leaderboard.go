package handler

import (
	"net/http"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
	"github.com/waifuisalie/ChallengeChain/internal/views"
)

// GetLeaderboard ranks participants across every challenge.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.allEnriched(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to build leaderboard", err)
		return
	}
	utils.Success(w, views.BuildLeaderboard(challenges, views.AllChallenges))
}

// GetChallengeLeaderboard ranks the participants of one challenge.
func (h *Handler) GetChallengeLeaderboard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	challenge, err := h.store.GetChallengeByID(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to build leaderboard", err)
		return
	}
	if challenge == nil {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}

	enriched, err := h.enrichChallenge(ctx, *challenge, h.usernames())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to build leaderboard", err)
		return
	}

	utils.Success(w, views.BuildLeaderboard([]model.ChallengeWithParticipants{enriched}, id))
}
