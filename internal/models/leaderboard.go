package model

const (
	BadgeGold   = "gold"
	BadgeSilver = "silver"
	BadgeBronze = "bronze"
)

type LeaderboardEntry struct {
	Rank          int      `json:"rank"`
	ParticipantID int      `json:"participantId"`
	UserID        int      `json:"userId"`
	WalletAddress string   `json:"walletAddress"`
	ChallengeID   int      `json:"challengeId"`
	ChallengeName string   `json:"challengeName"`
	Score         *float64 `json:"score"`
	Badge         string   `json:"badge,omitempty"`
	Reward        *float64 `json:"reward,omitempty"` // only set for the top 3
	CryptoType    string   `json:"cryptoType"`
	EntryFee      float64  `json:"entryFee"`
	TotalPool     float64  `json:"totalPool"`
}
