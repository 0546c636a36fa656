package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/waifuisalie/ChallengeChain/internal/database"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/scanner"
)

const uniqueViolation = "23505"

// queryable is implemented by both the pool and a transaction.
type queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage persists users, challenges and participants in PostgreSQL.
type PostgresStorage struct {
	db *database.DB
}

func NewPostgresStorage(db *database.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (*model.User, error) {
	u, err := scanner.ScanUser(s.db.QueryRow(ctx,
		`SELECT `+scanner.UserColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, nil
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanner.ScanUser(s.db.QueryRow(ctx,
		`SELECT `+scanner.UserColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return u, nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	u, err := scanner.ScanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (username, password, wallet_address)
		VALUES ($1, $2, $3)
		RETURNING `+scanner.UserColumns,
		in.Username, in.Password, in.WalletAddress,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user %q: %w", in.Username, err)
	}
	return u, nil
}

func (s *PostgresStorage) GetAllChallenges(ctx context.Context) ([]model.Challenge, error) {
	return queryChallenges(ctx, s.db, `SELECT `+scanner.ChallengeColumns+` FROM challenges ORDER BY id`)
}

func (s *PostgresStorage) GetChallengeByID(ctx context.Context, id int) (*model.Challenge, error) {
	c, err := scanner.ScanChallenge(s.db.QueryRow(ctx,
		`SELECT `+scanner.ChallengeColumns+` FROM challenges WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge %d: %w", id, err)
	}
	return c, nil
}

func (s *PostgresStorage) GetChallengesByUser(ctx context.Context, userID int) ([]model.Challenge, error) {
	return queryChallenges(ctx, s.db,
		`SELECT `+scanner.ChallengeColumns+` FROM challenges WHERE creator_id = $1 ORDER BY id`, userID)
}

func (s *PostgresStorage) CreateChallenge(ctx context.Context, in model.InsertChallenge) (*model.Challenge, error) {
	status := in.Status
	if status == "" {
		status = model.StatusUpcoming
	}

	c, err := scanner.ScanChallenge(s.db.QueryRow(ctx, `
		INSERT INTO challenges (
			creator_id, name, description, rules, category, verification_method,
			start_date, end_date, max_participants, crypto_type, entry_fee, status, image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+scanner.ChallengeColumns,
		in.CreatorID, in.Name, in.Description, in.Rules, in.Category, in.VerificationMethod,
		in.StartDate, in.EndDate, in.MaxParticipants, in.CryptoType, in.EntryFee, status, in.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge %q: %w", in.Name, err)
	}
	return c, nil
}

func (s *PostgresStorage) UpdateChallengeStatus(ctx context.Context, id int, status string) (*model.Challenge, error) {
	c, err := scanner.ScanChallenge(s.db.QueryRow(ctx,
		`UPDATE challenges SET status = $2 WHERE id = $1 RETURNING `+scanner.ChallengeColumns, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update status of challenge %d: %w", id, err)
	}
	return c, nil
}

func (s *PostgresStorage) DeleteChallenge(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM participants WHERE challenge_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete participants of challenge %d: %w", id, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM challenges WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete challenge %d: %w", id, err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *PostgresStorage) GetAllParticipants(ctx context.Context) ([]model.Participant, error) {
	return queryParticipants(ctx, s.db, `SELECT `+scanner.ParticipantColumns+` FROM participants ORDER BY id`)
}

func (s *PostgresStorage) GetParticipantsByChallenge(ctx context.Context, challengeID int) ([]model.Participant, error) {
	return queryParticipants(ctx, s.db,
		`SELECT `+scanner.ParticipantColumns+` FROM participants WHERE challenge_id = $1 ORDER BY id`, challengeID)
}

func (s *PostgresStorage) GetParticipantsByUser(ctx context.Context, userID int) ([]model.Participant, error) {
	return queryParticipants(ctx, s.db,
		`SELECT `+scanner.ParticipantColumns+` FROM participants WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *PostgresStorage) CreateParticipant(ctx context.Context, in model.InsertParticipant) (*model.Participant, error) {
	p, err := scanner.ScanParticipant(s.db.QueryRow(ctx, `
		INSERT INTO participants (challenge_id, user_id, wallet_address, joined_at, is_winner, score)
		VALUES ($1, $2, $3, NOW(), FALSE, $4)
		RETURNING `+scanner.ParticipantColumns,
		in.ChallengeID, in.UserID, in.WalletAddress, in.Score,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to add user %d to challenge %d: %w", in.UserID, in.ChallengeID, err)
	}
	return p, nil
}

func (s *PostgresStorage) UpdateParticipantScore(ctx context.Context, id int, score float64) (*model.Participant, error) {
	p, err := scanner.ScanParticipant(s.db.QueryRow(ctx,
		`UPDATE participants SET score = $2 WHERE id = $1 RETURNING `+scanner.ParticipantColumns, id, score))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update score of participant %d: %w", id, err)
	}
	return p, nil
}

func (s *PostgresStorage) SetWinner(ctx context.Context, id int) (*model.Participant, error) {
	var winner *model.Participant
	err := s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var challengeID int
		err := tx.QueryRow(ctx, `SELECT challenge_id FROM participants WHERE id = $1 FOR UPDATE`, id).Scan(&challengeID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to lock participant %d: %w", id, err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE participants SET is_winner = FALSE WHERE challenge_id = $1 AND is_winner`, challengeID); err != nil {
			return fmt.Errorf("failed to clear winners of challenge %d: %w", challengeID, err)
		}

		winner, err = scanner.ScanParticipant(tx.QueryRow(ctx,
			`UPDATE participants SET is_winner = TRUE WHERE id = $1 RETURNING `+scanner.ParticipantColumns, id))
		if err != nil {
			return fmt.Errorf("failed to mark participant %d as winner: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return winner, nil
}

func queryChallenges(ctx context.Context, q queryable, query string, args ...any) ([]model.Challenge, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]model.Challenge, 0)
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating challenges: %w", err)
	}
	return challenges, nil
}

func queryParticipants(ctx context.Context, q queryable, query string, args ...any) ([]model.Participant, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]model.Participant, 0)
	for rows.Next() {
		p, err := scanner.ScanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}
	return participants, nil
}
