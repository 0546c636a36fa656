package handler

import (
	"net/http"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// GetChallenges returns every challenge with participants, creator name and pool.
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.allEnriched(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch challenges", err)
		return
	}
	utils.Success(w, challenges)
}

func (h *Handler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	challenge, err := h.store.GetChallengeByID(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch challenge", err)
		return
	}
	if challenge == nil {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}

	enriched, err := h.enrichChallenge(ctx, *challenge, h.usernames())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch challenge", err)
		return
	}

	utils.Success(w, enriched)
}

// CreateChallenge stores a new challenge. When the body has no status it is
// derived from the start date.
func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var payload model.InsertChallenge
	if err := utils.DecodePayload(r, &payload); err != nil {
		badRequest(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		badRequest(w, err)
		return
	}
	ctx := r.Context()

	creator, err := h.store.GetUser(ctx, payload.CreatorID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create challenge", err)
		return
	}
	if creator == nil {
		utils.Error(w, http.StatusBadRequest, "creatorId: user not found")
		return
	}

	if payload.Status == "" {
		payload.Status = model.StatusFor(payload.StartDate, h.now())
	}

	challenge, err := h.store.CreateChallenge(ctx, payload)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create challenge", err)
		return
	}

	utils.Created(w, challenge)
}

func (h *Handler) UpdateChallengeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}

	var payload model.UpdateStatusRequest
	if err := utils.DecodeJSON(r, &payload); err != nil || !model.IsValidStatus(payload.Status) {
		utils.Error(w, http.StatusBadRequest, "Invalid status")
		return
	}

	challenge, err := h.store.UpdateChallengeStatus(r.Context(), id, payload.Status)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update challenge status", err)
		return
	}
	if challenge == nil {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}

	utils.Success(w, challenge)
}

// DeleteChallenge removes a challenge together with its participants.
func (h *Handler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}

	deleted, err := h.store.DeleteChallenge(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete challenge", err)
		return
	}
	if !deleted {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}

	utils.Message(w, "Challenge deleted")
}
