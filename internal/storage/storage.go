// Package storage defines the repository used by the route layer and its
// in-memory and PostgreSQL implementations.
package storage

import (
	"context"
	"errors"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Storage is the persistence contract shared by every backend.
//
// Lookups and updates of unknown ids return a nil result and a nil error.
// Lists are ordered by id ascending.
type Storage interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user model.InsertUser) (*model.User, error)

	GetAllChallenges(ctx context.Context) ([]model.Challenge, error)
	GetChallengeByID(ctx context.Context, id int) (*model.Challenge, error)
	GetChallengesByUser(ctx context.Context, userID int) ([]model.Challenge, error)
	CreateChallenge(ctx context.Context, challenge model.InsertChallenge) (*model.Challenge, error)
	UpdateChallengeStatus(ctx context.Context, id int, status string) (*model.Challenge, error)
	// DeleteChallenge removes the challenge and its participants. It reports
	// false when no challenge had that id.
	DeleteChallenge(ctx context.Context, id int) (bool, error)

	GetAllParticipants(ctx context.Context) ([]model.Participant, error)
	GetParticipantsByChallenge(ctx context.Context, challengeID int) ([]model.Participant, error)
	GetParticipantsByUser(ctx context.Context, userID int) ([]model.Participant, error)
	// CreateParticipant stamps JoinedAt and always stores IsWinner=false.
	CreateParticipant(ctx context.Context, participant model.InsertParticipant) (*model.Participant, error)
	UpdateParticipantScore(ctx context.Context, id int, score float64) (*model.Participant, error)
	// SetWinner clears the winner flag on every participant of the same
	// challenge, then marks the participant with this id.
	SetWinner(ctx context.Context, id int) (*model.Participant, error)
}
