package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Statuses lists every valid challenge status.
var Statuses = []string{StatusUpcoming, StatusActive, StatusCompleted}

// IsValidStatus reports whether s is one of upcoming, active or completed.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Challenge struct {
	ID                 int       `json:"id"`
	CreatorID          int       `json:"creatorId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Rules              string    `json:"rules"`
	Category           string    `json:"category"`
	VerificationMethod string    `json:"verificationMethod"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	MaxParticipants    int       `json:"maxParticipants"`
	CryptoType         string    `json:"cryptoType"`
	EntryFee           float64   `json:"entryFee"`
	Status             string    `json:"status"`
	ImageURL           *string   `json:"imageUrl"`
}

// IsOpen reports whether participants may still join.
func (c *Challenge) IsOpen() bool {
	return c.Status == StatusUpcoming || c.Status == StatusActive
}

// ChallengeWithParticipants is the enriched read model returned by every
// challenge read endpoint. CreatorName and TotalPool are never persisted.
type ChallengeWithParticipants struct {
	Challenge
	Participants []Participant `json:"participants"`
	CreatorName  string        `json:"creatorName"`
	TotalPool    float64       `json:"totalPool"`
}

// Winner returns the participant flagged as winner, if any.
func (c *ChallengeWithParticipants) Winner() *Participant {
	for i := range c.Participants {
		if c.Participants[i].IsWinner {
			return &c.Participants[i]
		}
	}
	return nil
}

// InsertChallenge is the payload accepted by POST /challenges.
// Status is optional; when empty it is derived from StartDate.
type InsertChallenge struct {
	CreatorID          int       `json:"creatorId" validate:"required,gt=0"`
	Name               string    `json:"name" validate:"required"`
	Description        string    `json:"description" validate:"required"`
	Rules              string    `json:"rules" validate:"required"`
	Category           string    `json:"category" validate:"required"`
	VerificationMethod string    `json:"verificationMethod" validate:"required,oneof=photo video app witness honor other"`
	StartDate          time.Time `json:"startDate" validate:"required"`
	EndDate            time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	MaxParticipants    int       `json:"maxParticipants" validate:"required,gte=2,lte=100"`
	CryptoType         string    `json:"cryptoType" validate:"required,oneof=SOL DOT ETH"`
	EntryFee           float64   `json:"entryFee" validate:"required,gte=0.01"`
	Status             string    `json:"status,omitempty" validate:"omitempty,oneof=upcoming active completed"`
	ImageURL           *string   `json:"imageUrl,omitempty"`
}

// UnmarshalJSON accepts startDate and endDate either as RFC 3339 timestamps
// or as bare ISO dates, which are read as UTC midnight.
func (c *InsertChallenge) UnmarshalJSON(data []byte) error {
	type plain InsertChallenge
	aux := struct {
		*plain
		StartDate isoTime `json:"startDate"`
		EndDate   isoTime `json:"endDate"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.StartDate = time.Time(aux.StartDate)
	c.EndDate = time.Time(aux.EndDate)
	return nil
}

const isoDate = "2006-01-02"

type isoTime time.Time

func (t *isoTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if parsed, err = time.Parse(isoDate, s); err != nil {
			return fmt.Errorf("invalid date %q, want RFC 3339 or YYYY-MM-DD", s)
		}
	}
	*t = isoTime(parsed)
	return nil
}

// ChallengeForm mirrors the create-challenge form, which is stricter than
// the server schema about text lengths.
type ChallengeForm struct {
	Name               string    `json:"name" validate:"required,min=5"`
	Description        string    `json:"description" validate:"required,min=10"`
	Rules              string    `json:"rules" validate:"required,min=10"`
	Category           string    `json:"category" validate:"required"`
	VerificationMethod string    `json:"verificationMethod" validate:"required"`
	MaxParticipants    int       `json:"maxParticipants" validate:"gte=2,lte=100"`
	StartDate          time.Time `json:"startDate" validate:"required"`
	EndDate            time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	CryptoType         string    `json:"cryptoType" validate:"required"`
	EntryFee           float64   `json:"entryFee" validate:"gte=0.01"`
	ImageURL           *string   `json:"imageUrl,omitempty"`
}

// StatusFor derives the initial status of a challenge starting at start.
func StatusFor(start, now time.Time) string {
	if !start.After(now) {
		return StatusActive
	}
	return StatusUpcoming
}

// UpdateStatusRequest is the body of PATCH /challenges/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
