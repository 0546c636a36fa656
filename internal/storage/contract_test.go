package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// runStorageContract exercises behaviour every Storage implementation must share.
func runStorageContract(t *testing.T, newStore func(t *testing.T) Storage) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	createUser := func(t *testing.T, s Storage, name string) *model.User {
		t.Helper()
		wallet := "0x" + name
		u, err := s.CreateUser(ctx, model.InsertUser{Username: name, Password: "hash", WalletAddress: &wallet})
		require.NoError(t, err)
		return u
	}

	createChallenge := func(t *testing.T, s Storage, creatorID int, name string) *model.Challenge {
		t.Helper()
		c, err := s.CreateChallenge(ctx, model.InsertChallenge{
			CreatorID:          creatorID,
			Name:               name,
			Description:        "description",
			Rules:              "rules",
			Category:           "Fitness",
			VerificationMethod: "app",
			StartDate:          start,
			EndDate:            start.Add(7 * day),
			MaxParticipants:    10,
			CryptoType:         "SOL",
			EntryFee:           0.5,
		})
		require.NoError(t, err)
		return c
	}

	join := func(t *testing.T, s Storage, challengeID int, u *model.User, score *float64) *model.Participant {
		t.Helper()
		p, err := s.CreateParticipant(ctx, model.InsertParticipant{
			ChallengeID:   challengeID,
			UserID:        u.ID,
			WalletAddress: *u.WalletAddress,
			Score:         score,
		})
		require.NoError(t, err)
		return p
	}

	t.Run("users", func(t *testing.T) {
		s := newStore(t)

		alice := createUser(t, s, "alice")
		bob := createUser(t, s, "bob")
		assert.Equal(t, alice.ID+1, bob.ID)

		got, err := s.GetUser(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "0xalice", *got.WalletAddress)

		byName, err := s.GetUserByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, bob.ID, byName.ID)

		missing, err := s.GetUser(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		missing, err = s.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)

		_, err = s.CreateUser(ctx, model.InsertUser{Username: "alice", Password: "other"})
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("challenges", func(t *testing.T) {
		s := newStore(t)
		alice := createUser(t, s, "alice")
		bob := createUser(t, s, "bob")

		first := createChallenge(t, s, alice.ID, "First")
		second := createChallenge(t, s, bob.ID, "Second")
		third := createChallenge(t, s, alice.ID, "Third")

		assert.Equal(t, model.StatusUpcoming, first.Status, "status defaults to upcoming")
		assert.True(t, first.StartDate.Equal(start))

		all, err := s.GetAllChallenges(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{first.ID, second.ID, third.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

		mine, err := s.GetChallengesByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "First", mine[0].Name)
		assert.Equal(t, "Third", mine[1].Name)

		updated, err := s.UpdateChallengeStatus(ctx, second.ID, model.StatusActive)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.StatusActive, updated.Status)

		reread, err := s.GetChallengeByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, reread.Status)

		missing, err := s.UpdateChallengeStatus(ctx, 9999, model.StatusActive)
		require.NoError(t, err)
		assert.Nil(t, missing)

		missing, err = s.GetChallengeByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("delete cascades to participants", func(t *testing.T) {
		s := newStore(t)
		alice := createUser(t, s, "alice")
		keep := createChallenge(t, s, alice.ID, "Keep")
		drop := createChallenge(t, s, alice.ID, "Drop")
		join(t, s, keep.ID, alice, nil)
		join(t, s, drop.ID, alice, nil)

		deleted, err := s.DeleteChallenge(ctx, drop.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gone, err := s.GetChallengeByID(ctx, drop.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		left, err := s.GetAllParticipants(ctx)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, keep.ID, left[0].ChallengeID)

		deleted, err = s.DeleteChallenge(ctx, drop.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("participants", func(t *testing.T) {
		s := newStore(t)
		alice := createUser(t, s, "alice")
		bob := createUser(t, s, "bob")
		c1 := createChallenge(t, s, alice.ID, "One")
		c2 := createChallenge(t, s, alice.ID, "Two")

		score := 42.0
		p1 := join(t, s, c1.ID, alice, &score)
		p2 := join(t, s, c1.ID, bob, nil)
		p3 := join(t, s, c2.ID, bob, nil)

		assert.False(t, p1.IsWinner)
		assert.False(t, p1.JoinedAt.IsZero())
		require.NotNil(t, p1.Score)
		assert.Equal(t, 42.0, *p1.Score)
		assert.Nil(t, p2.Score)

		byChallenge, err := s.GetParticipantsByChallenge(ctx, c1.ID)
		require.NoError(t, err)
		require.Len(t, byChallenge, 2)
		assert.Equal(t, p1.ID, byChallenge[0].ID)
		assert.Equal(t, p2.ID, byChallenge[1].ID)

		byUser, err := s.GetParticipantsByUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, byUser, 2)
		assert.Equal(t, p3.ID, byUser[1].ID)

		updated, err := s.UpdateParticipantScore(ctx, p2.ID, 150)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 150.0, *updated.Score)

		missing, err := s.UpdateParticipantScore(ctx, 9999, 1)
		require.NoError(t, err)
		assert.Nil(t, missing)

		empty, err := s.GetParticipantsByChallenge(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("set winner keeps a single winner per challenge", func(t *testing.T) {
		s := newStore(t)
		alice := createUser(t, s, "alice")
		bob := createUser(t, s, "bob")
		c1 := createChallenge(t, s, alice.ID, "One")
		c2 := createChallenge(t, s, alice.ID, "Two")
		p1 := join(t, s, c1.ID, alice, nil)
		p2 := join(t, s, c1.ID, bob, nil)
		other := join(t, s, c2.ID, alice, nil)

		_, err := s.SetWinner(ctx, other.ID)
		require.NoError(t, err)

		winner, err := s.SetWinner(ctx, p1.ID)
		require.NoError(t, err)
		require.NotNil(t, winner)
		assert.True(t, winner.IsWinner)

		winner, err = s.SetWinner(ctx, p2.ID)
		require.NoError(t, err)
		assert.True(t, winner.IsWinner)

		participants, err := s.GetParticipantsByChallenge(ctx, c1.ID)
		require.NoError(t, err)
		winners := 0
		for _, p := range participants {
			if p.IsWinner {
				winners++
				assert.Equal(t, p2.ID, p.ID)
			}
		}
		assert.Equal(t, 1, winners)

		untouched, err := s.GetParticipantsByChallenge(ctx, c2.ID)
		require.NoError(t, err)
		assert.True(t, untouched[0].IsWinner, "winners of other challenges are kept")

		missing, err := s.SetWinner(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, Seed(ctx, s, start))
		require.NoError(t, Seed(ctx, s, start))

		challenges, err := s.GetAllChallenges(ctx)
		require.NoError(t, err)
		require.Len(t, challenges, 3)
		assert.Equal(t, "10,000 Steps Challenge", challenges[0].Name)
		assert.Equal(t, model.StatusActive, challenges[0].Status)
		assert.Equal(t, "Coding Streak Challenge", challenges[1].Name)
		assert.Equal(t, model.StatusUpcoming, challenges[1].Status)
		assert.Equal(t, "DOT", challenges[2].CryptoType)

		participants, err := s.GetParticipantsByChallenge(ctx, challenges[0].ID)
		require.NoError(t, err)
		require.Len(t, participants, 2)
		assert.Equal(t, 5000.0, *participants[0].Score)
		assert.Equal(t, 8000.0, *participants[1].Score)

		john, err := s.GetUserByUsername(ctx, "johndoe")
		require.NoError(t, err)
		require.NotNil(t, john)
		assert.NotEqual(t, "password123", john.Password, "passwords are hashed at rest")
		assert.True(t, utils.CheckPassword(john.Password, "password123"))
	})
}
