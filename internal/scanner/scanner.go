package scanner

import (
	"database/sql"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// Row is satisfied by pgx.Row and pgx.Rows.
type Row interface {
	Scan(dest ...interface{}) error
}

const UserColumns = `id, username, password, wallet_address`

// ScanUser scans a row selected with UserColumns.
func ScanUser(row Row) (*model.User, error) {
	var u model.User
	var wallet sql.NullString

	if err := row.Scan(&u.ID, &u.Username, &u.Password, &wallet); err != nil {
		return nil, err
	}

	u.WalletAddress = utils.NullStringToPointer(wallet)
	return &u, nil
}

const ChallengeColumns = `
	id, creator_id, name, description, rules, category, verification_method,
	start_date, end_date, max_participants, crypto_type, entry_fee, status, image_url`

// ScanChallenge scans a row selected with ChallengeColumns.
func ScanChallenge(row Row) (*model.Challenge, error) {
	var c model.Challenge
	var imageURL sql.NullString

	err := row.Scan(
		&c.ID, &c.CreatorID, &c.Name, &c.Description, &c.Rules, &c.Category, &c.VerificationMethod,
		&c.StartDate, &c.EndDate, &c.MaxParticipants, &c.CryptoType, &c.EntryFee, &c.Status, &imageURL,
	)
	if err != nil {
		return nil, err
	}

	c.ImageURL = utils.NullStringToPointer(imageURL)
	return &c, nil
}

const ParticipantColumns = `id, challenge_id, user_id, wallet_address, joined_at, is_winner, score`

// ScanParticipant scans a row selected with ParticipantColumns.
func ScanParticipant(row Row) (*model.Participant, error) {
	var p model.Participant
	var score sql.NullFloat64

	err := row.Scan(&p.ID, &p.ChallengeID, &p.UserID, &p.WalletAddress, &p.JoinedAt, &p.IsWinner, &score)
	if err != nil {
		return nil, err
	}

	p.Score = utils.NullFloat64ToPointer(score)
	return &p, nil
}
