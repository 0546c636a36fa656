package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/waifuisalie/ChallengeChain/internal/logger"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

const day = 24 * time.Hour

// Seed loads the demo users, challenges and participants. It does nothing
// when the user "johndoe" already exists.
func Seed(ctx context.Context, store Storage, now time.Time) error {
	existing, err := store.GetUserByUsername(ctx, "johndoe")
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if existing != nil {
		logger.Debug("Seed data already present, skipping")
		return nil
	}

	john, err := seedUser(ctx, store, "johndoe", "password123", "0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b")
	if err != nil {
		return err
	}
	jane, err := seedUser(ctx, store, "janedoe", "password456", "0x3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2")
	if err != nil {
		return err
	}

	weekFromNow := now.Add(7 * day)

	steps, err := store.CreateChallenge(ctx, model.InsertChallenge{
		CreatorID:          john.ID,
		Name:               "10,000 Steps Challenge",
		Description:        "Who can walk the most steps in a week! Track with your favorite fitness app.",
		Rules:              "Track your steps using any fitness app. Submit screenshots daily.",
		Category:           "Fitness",
		VerificationMethod: "app",
		StartDate:          now,
		EndDate:            weekFromNow,
		MaxParticipants:    20,
		CryptoType:         "SOL",
		EntryFee:           0.5,
		Status:             model.StatusActive,
	})
	if err != nil {
		return err
	}

	challenges := []model.InsertChallenge{
		{
			CreatorID:          jane.ID,
			Name:               "Coding Streak Challenge",
			Description:        "Most consecutive days with GitHub contributions. Let's build together!",
			Rules:              "One contribution per day on GitHub counts as a streak day.",
			Category:           "Learning",
			VerificationMethod: "app",
			StartDate:          weekFromNow.Add(2 * day),
			EndDate:            weekFromNow.Add(14 * day),
			MaxParticipants:    15,
			CryptoType:         "SOL",
			EntryFee:           0.2,
			Status:             model.StatusUpcoming,
		},
		{
			CreatorID:          john.ID,
			Name:               "No Sugar Challenge",
			Description:        "Avoid all added sugar for two weeks",
			Rules:              "No foods with added sugar. Natural sugars in fruits are allowed.",
			Category:           "health",
			VerificationMethod: "photo",
			StartDate:          now,
			EndDate:            now.Add(14 * day),
			MaxParticipants:    15,
			CryptoType:         "DOT",
			EntryFee:           1.0,
			Status:             model.StatusActive,
		},
	}
	for _, c := range challenges {
		if _, err := store.CreateChallenge(ctx, c); err != nil {
			return err
		}
	}

	for _, entry := range []struct {
		user  *model.User
		score float64
	}{{john, 5000}, {jane, 8000}} {
		score := entry.score
		if _, err := store.CreateParticipant(ctx, model.InsertParticipant{
			ChallengeID:   steps.ID,
			UserID:        entry.user.ID,
			WalletAddress: *entry.user.WalletAddress,
			Score:         &score,
		}); err != nil {
			return err
		}
	}

	logger.Success("Seeded %d users and %d challenges", 2, 1+len(challenges))
	return nil
}

func seedUser(ctx context.Context, store Storage, username, password, wallet string) (*model.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return store.CreateUser(ctx, model.InsertUser{
		Username:      username,
		Password:      hashed,
		WalletAddress: &wallet,
	})
}
