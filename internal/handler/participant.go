package handler

import (
	"math"
	"net/http"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// GetChallengeParticipants lists the participants of a challenge with their
// usernames. An unknown challenge yields an empty list.
func (h *Handler) GetChallengeParticipants(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	participants, err := h.store.GetParticipantsByChallenge(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch participants", err)
		return
	}

	names := h.usernames()
	out := make([]model.ParticipantWithUser, 0, len(participants))
	for _, p := range participants {
		username, err := names.get(ctx, p.UserID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch participants", err)
			return
		}
		out = append(out, model.ParticipantWithUser{Participant: p, Username: username})
	}

	utils.Success(w, out)
}

// JoinChallenge adds a participant. Open status and capacity are checked
// against the current state without locking, so concurrent joins may
// overshoot maxParticipants.
func (h *Handler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	challenge, err := h.store.GetChallengeByID(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to join challenge", err)
		return
	}
	if challenge == nil {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}
	if !challenge.IsOpen() {
		utils.Error(w, http.StatusBadRequest, "Challenge is not open for joining")
		return
	}

	participants, err := h.store.GetParticipantsByChallenge(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to join challenge", err)
		return
	}
	if len(participants) >= challenge.MaxParticipants {
		utils.Error(w, http.StatusBadRequest, "Challenge has reached maximum participants")
		return
	}

	var payload model.InsertParticipant
	if err := utils.DecodePayload(r, &payload); err != nil {
		badRequest(w, err)
		return
	}
	payload.ChallengeID = id
	if err := h.validate.Struct(payload); err != nil {
		badRequest(w, err)
		return
	}

	user, err := h.store.GetUser(ctx, payload.UserID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to join challenge", err)
		return
	}
	if user == nil {
		utils.Error(w, http.StatusBadRequest, "userId: user not found")
		return
	}

	participant, err := h.store.CreateParticipant(ctx, payload)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to join challenge", err)
		return
	}

	utils.Created(w, participant)
}

func (h *Handler) UpdateParticipantScore(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}

	var payload model.UpdateScoreRequest
	if err := utils.DecodeJSON(r, &payload); err != nil || payload.Score == nil ||
		math.IsNaN(*payload.Score) || math.IsInf(*payload.Score, 0) {
		utils.Error(w, http.StatusBadRequest, "Invalid score")
		return
	}

	participant, err := h.store.UpdateParticipantScore(r.Context(), id, *payload.Score)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update participant score", err)
		return
	}
	if participant == nil {
		utils.Error(w, http.StatusNotFound, "Participant not found")
		return
	}

	utils.Success(w, participant)
}

// SetWinner marks the participant as the only winner of its challenge and
// completes the challenge.
func (h *Handler) SetWinner(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		invalidID(w, err)
		return
	}
	ctx := r.Context()

	participant, err := h.store.SetWinner(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to set participant as winner", err)
		return
	}
	if participant == nil {
		utils.Error(w, http.StatusNotFound, "Participant not found")
		return
	}

	if _, err := h.store.UpdateChallengeStatus(ctx, participant.ChallengeID, model.StatusCompleted); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to set participant as winner", err)
		return
	}

	utils.Success(w, participant)
}
