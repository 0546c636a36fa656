// Package views derives the page-level data shown by the front ends from the
// enriched challenge list.
package views

import (
	"strings"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

// All disables a filter dimension.
const All = "all"

// Entry fee buckets.
const (
	FeeLow    = "low"
	FeeMedium = "medium"
	FeeHigh   = "high"
)

// Filter narrows the Home page list. Every dimension must match; an empty
// value is treated as All.
type Filter struct {
	Category string
	Status   string
	Fee      string
	Search   string
}

// Match reports whether c satisfies every dimension of f.
func (f Filter) Match(c model.ChallengeWithParticipants) bool {
	if !isAll(f.Category) && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if !isAll(f.Status) && c.Status != f.Status {
		return false
	}
	if !isAll(f.Fee) && !feeInBucket(c.EntryFee, f.Fee) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	return true
}

// Apply returns the challenges matching f, preserving order.
func (f Filter) Apply(challenges []model.ChallengeWithParticipants) []model.ChallengeWithParticipants {
	out := make([]model.ChallengeWithParticipants, 0, len(challenges))
	for _, c := range challenges {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Bucket boundaries are inclusive on both sides, so 0.1 and 1.0 fall into
// two buckets each.
func feeInBucket(fee float64, bucket string) bool {
	switch bucket {
	case FeeLow:
		return fee >= 0.01 && fee <= 0.1
	case FeeMedium:
		return fee >= 0.1 && fee <= 1.0
	case FeeHigh:
		return fee >= 1.0
	}
	return true
}

func isAll(v string) bool {
	return v == "" || v == All
}

// MyChallenges returns the challenges the wallet has joined. A disconnected
// wallet (empty address) has none.
func MyChallenges(challenges []model.ChallengeWithParticipants, walletAddress string) []model.ChallengeWithParticipants {
	out := make([]model.ChallengeWithParticipants, 0)
	if walletAddress == "" {
		return out
	}
	for _, c := range challenges {
		if hasParticipant(c, walletAddress) {
			out = append(out, c)
		}
	}
	return out
}

func hasParticipant(c model.ChallengeWithParticipants, walletAddress string) bool {
	for _, p := range c.Participants {
		if strings.EqualFold(p.WalletAddress, walletAddress) {
			return true
		}
	}
	return false
}
