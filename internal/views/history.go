package views

import (
	"fmt"
	"strings"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

const NoWinner = "No winner declared"

// Completed returns the completed challenges.
func Completed(challenges []model.ChallengeWithParticipants) []model.ChallengeWithParticipants {
	out := make([]model.ChallengeWithParticipants, 0)
	for _, c := range challenges {
		if c.Status == model.StatusCompleted {
			out = append(out, c)
		}
	}
	return out
}

// Mine returns the completed challenges the wallet took part in.
func Mine(challenges []model.ChallengeWithParticipants, walletAddress string) []model.ChallengeWithParticipants {
	return MyChallenges(Completed(challenges), walletAddress)
}

// WinnerDisplay renders the winner as "User 7 (0x1a2b...)".
func WinnerDisplay(c model.ChallengeWithParticipants) string {
	w := c.Winner()
	if w == nil {
		return NoWinner
	}
	return fmt.Sprintf("User %d (%s...)", w.UserID, prefix(w.WalletAddress, 6))
}

// DidUserWin reports whether the wallet owns the winning participation.
func DidUserWin(c model.ChallengeWithParticipants, walletAddress string) bool {
	if walletAddress == "" {
		return false
	}
	w := c.Winner()
	return w != nil && strings.EqualFold(w.WalletAddress, walletAddress)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
