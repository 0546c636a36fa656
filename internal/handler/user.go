package handler

import (
	"errors"
	"net/http"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/storage"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// CreateUser registers a user. The password is stored as a bcrypt hash.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload model.InsertUser
	if err := utils.DecodePayload(r, &payload); err != nil {
		badRequest(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		badRequest(w, err)
		return
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create user", err)
		return
	}
	payload.Password = hashed

	user, err := h.store.CreateUser(r.Context(), payload)
	if errors.Is(err, storage.ErrDuplicateUsername) {
		utils.Error(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	utils.Created(w, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	if user == nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	utils.Success(w, user)
}

// GetUserChallenges lists the enriched challenges created by a user.
func (h *Handler) GetUserChallenges(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	if user == nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	challenges, err := h.store.GetChallengesByUser(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch challenges", err)
		return
	}
	enriched, err := h.enrichChallenges(ctx, challenges)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch challenges", err)
		return
	}

	utils.Success(w, enriched)
}

// GetUserParticipations lists every participation of a user.
func (h *Handler) GetUserParticipations(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	if user == nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	participations, err := h.store.GetParticipantsByUser(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch participations", err)
		return
	}

	utils.Success(w, participations)
}
