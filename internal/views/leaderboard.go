package views

import (
	"sort"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

// AllChallenges selects every challenge in BuildLeaderboard.
const AllChallenges = 0

var badges = []string{model.BadgeGold, model.BadgeSilver, model.BadgeBronze}

// BuildLeaderboard ranks the participants of one challenge, or of every
// challenge when selected is AllChallenges, by score descending. Missing
// scores count as zero and ties keep their original order.
//
// The first three ranks get a badge. Rank 1 is shown the whole pool of its
// challenge as reward; ranks 2 and 3 are shown zero.
func BuildLeaderboard(challenges []model.ChallengeWithParticipants, selected int) []model.LeaderboardEntry {
	type row struct {
		p *model.Participant
		c *model.ChallengeWithParticipants
	}
	rows := make([]row, 0)
	for i := range challenges {
		c := &challenges[i]
		if selected != AllChallenges && c.ID != selected {
			continue
		}
		for j := range c.Participants {
			rows = append(rows, row{p: &c.Participants[j], c: c})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].p.ScoreValue() > rows[j].p.ScoreValue()
	})

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		e := model.LeaderboardEntry{
			Rank:          i + 1,
			ParticipantID: r.p.ID,
			UserID:        r.p.UserID,
			WalletAddress: r.p.WalletAddress,
			ChallengeID:   r.c.ID,
			ChallengeName: r.c.Name,
			Score:         r.p.Score,
			CryptoType:    r.c.CryptoType,
			EntryFee:      r.c.EntryFee,
			TotalPool:     r.c.TotalPool,
		}
		if i < len(badges) {
			e.Badge = badges[i]
			reward := 0.0
			if i == 0 {
				reward = r.c.TotalPool
			}
			e.Reward = &reward
		}
		entries = append(entries, e)
	}
	return entries
}

// LeaderboardChallenges lists the challenges offered in the leaderboard
// selector: active and completed ones.
func LeaderboardChallenges(challenges []model.ChallengeWithParticipants) []model.ChallengeWithParticipants {
	out := make([]model.ChallengeWithParticipants, 0)
	for _, c := range challenges {
		if c.Status == model.StatusActive || c.Status == model.StatusCompleted {
			out = append(out, c)
		}
	}
	return out
}
