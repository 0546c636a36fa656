package handler

import (
	"context"

	"github.com/shopspring/decimal"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

const unknownUser = "Unknown"

// TotalPool is participants × entry fee, computed in decimal so that
// 3 × 0.1 renders as 0.3.
func TotalPool(participants int, entryFee float64) float64 {
	return decimal.NewFromInt(int64(participants)).
		Mul(decimal.NewFromFloat(entryFee)).
		InexactFloat64()
}

// usernames caches creator and participant lookups for one request.
type usernames struct {
	h     *Handler
	names map[int]string
}

func (h *Handler) usernames() *usernames {
	return &usernames{h: h, names: make(map[int]string)}
}

func (u *usernames) get(ctx context.Context, id int) (string, error) {
	if name, ok := u.names[id]; ok {
		return name, nil
	}
	user, err := u.h.store.GetUser(ctx, id)
	if err != nil {
		return "", err
	}
	name := unknownUser
	if user != nil {
		name = user.Username
	}
	u.names[id] = name
	return name, nil
}

// enrichChallenge attaches participants, creator name and pool to c.
func (h *Handler) enrichChallenge(ctx context.Context, c model.Challenge, names *usernames) (model.ChallengeWithParticipants, error) {
	participants, err := h.store.GetParticipantsByChallenge(ctx, c.ID)
	if err != nil {
		return model.ChallengeWithParticipants{}, err
	}
	if participants == nil {
		participants = []model.Participant{}
	}

	creator, err := names.get(ctx, c.CreatorID)
	if err != nil {
		return model.ChallengeWithParticipants{}, err
	}

	return model.ChallengeWithParticipants{
		Challenge:    c,
		Participants: participants,
		CreatorName:  creator,
		TotalPool:    TotalPool(len(participants), c.EntryFee),
	}, nil
}

func (h *Handler) enrichChallenges(ctx context.Context, challenges []model.Challenge) ([]model.ChallengeWithParticipants, error) {
	names := h.usernames()
	out := make([]model.ChallengeWithParticipants, 0, len(challenges))
	for _, c := range challenges {
		enriched, err := h.enrichChallenge(ctx, c, names)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}

// allEnriched loads and enriches every challenge.
func (h *Handler) allEnriched(ctx context.Context) ([]model.ChallengeWithParticipants, error) {
	challenges, err := h.store.GetAllChallenges(ctx)
	if err != nil {
		return nil, err
	}
	return h.enrichChallenges(ctx, challenges)
}
