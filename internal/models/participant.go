package model

import "time"

// Participant is a user's enrollment in one challenge.
type Participant struct {
	ID            int       `json:"id"`
	ChallengeID   int       `json:"challengeId"`
	UserID        int       `json:"userId"`
	WalletAddress string    `json:"walletAddress"`
	JoinedAt      time.Time `json:"joinedAt"`
	IsWinner      bool      `json:"isWinner"`
	Score         *float64  `json:"score"`
}

// ScoreValue returns the score, treating a missing score as zero.
func (p *Participant) ScoreValue() float64 {
	if p.Score == nil {
		return 0
	}
	return *p.Score
}

// ParticipantWithUser is a participant enriched with the username.
type ParticipantWithUser struct {
	Participant
	Username string `json:"username"`
}

// InsertParticipant is the body of POST /challenges/{id}/participants.
// ChallengeID is always overwritten from the path.
type InsertParticipant struct {
	ChallengeID   int      `json:"challengeId,omitempty"`
	UserID        int      `json:"userId" validate:"required,gt=0"`
	WalletAddress string   `json:"walletAddress" validate:"required"`
	Score         *float64 `json:"score,omitempty"`
}

// UpdateScoreRequest is the body of PATCH /participants/{id}/score.
type UpdateScoreRequest struct {
	Score *float64 `json:"score"`
}
