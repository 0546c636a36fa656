package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

// MemStorage keeps everything in process memory. Ids start at 1 and are
// never reused.
type MemStorage struct {
	mu sync.RWMutex

	users        map[int]model.User
	challenges   map[int]model.Challenge
	participants map[int]model.Participant

	nextUserID        int
	nextChallengeID   int
	nextParticipantID int

	now func() time.Time
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:             make(map[int]model.User),
		challenges:        make(map[int]model.Challenge),
		participants:      make(map[int]model.Participant),
		nextUserID:        1,
		nextChallengeID:   1,
		nextParticipantID: 1,
		now:               time.Now,
	}
}

func (s *MemStorage) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return clonedUser(u), nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; u.Username == username {
			return clonedUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, in model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, ErrDuplicateUsername
		}
	}

	u := model.User{
		ID:            s.nextUserID,
		Username:      in.Username,
		Password:      in.Password,
		WalletAddress: copyString(in.WalletAddress),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return clonedUser(u), nil
}

func (s *MemStorage) GetAllChallenges(_ context.Context) ([]model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterChallenges(func(model.Challenge) bool { return true }), nil
}

func (s *MemStorage) GetChallengeByID(_ context.Context, id int) (*model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, nil
	}
	return clonedChallenge(c), nil
}

func (s *MemStorage) GetChallengesByUser(_ context.Context, userID int) ([]model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterChallenges(func(c model.Challenge) bool { return c.CreatorID == userID }), nil
}

func (s *MemStorage) CreateChallenge(_ context.Context, in model.InsertChallenge) (*model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = model.StatusUpcoming
	}

	c := model.Challenge{
		ID:                 s.nextChallengeID,
		CreatorID:          in.CreatorID,
		Name:               in.Name,
		Description:        in.Description,
		Rules:              in.Rules,
		Category:           in.Category,
		VerificationMethod: in.VerificationMethod,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		MaxParticipants:    in.MaxParticipants,
		CryptoType:         in.CryptoType,
		EntryFee:           in.EntryFee,
		Status:             status,
		ImageURL:           copyString(in.ImageURL),
	}
	s.nextChallengeID++
	s.challenges[c.ID] = c
	return clonedChallenge(c), nil
}

func (s *MemStorage) UpdateChallengeStatus(_ context.Context, id int, status string) (*model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	s.challenges[id] = c
	return clonedChallenge(c), nil
}

func (s *MemStorage) DeleteChallenge(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.challenges[id]; !ok {
		return false, nil
	}
	for pid, p := range s.participants {
		if p.ChallengeID == id {
			delete(s.participants, pid)
		}
	}
	delete(s.challenges, id)
	return true, nil
}

func (s *MemStorage) GetAllParticipants(_ context.Context) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterParticipants(func(model.Participant) bool { return true }), nil
}

func (s *MemStorage) GetParticipantsByChallenge(_ context.Context, challengeID int) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterParticipants(func(p model.Participant) bool { return p.ChallengeID == challengeID }), nil
}

func (s *MemStorage) GetParticipantsByUser(_ context.Context, userID int) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterParticipants(func(p model.Participant) bool { return p.UserID == userID }), nil
}

func (s *MemStorage) CreateParticipant(_ context.Context, in model.InsertParticipant) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Participant{
		ID:            s.nextParticipantID,
		ChallengeID:   in.ChallengeID,
		UserID:        in.UserID,
		WalletAddress: in.WalletAddress,
		JoinedAt:      s.now(),
		IsWinner:      false,
		Score:         copyFloat(in.Score),
	}
	s.nextParticipantID++
	s.participants[p.ID] = p
	return clonedParticipant(p), nil
}

func (s *MemStorage) UpdateParticipantScore(_ context.Context, id int, score float64) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return nil, nil
	}
	p.Score = &score
	s.participants[id] = p
	return clonedParticipant(p), nil
}

func (s *MemStorage) SetWinner(_ context.Context, id int) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.participants[id]
	if !ok {
		return nil, nil
	}
	for pid, p := range s.participants {
		if p.ChallengeID == target.ChallengeID && p.IsWinner {
			p.IsWinner = false
			s.participants[pid] = p
		}
	}
	target.IsWinner = true
	s.participants[id] = target
	return clonedParticipant(target), nil
}

// filterChallenges and filterParticipants must be called with mu held.
func (s *MemStorage) filterChallenges(keep func(model.Challenge) bool) []model.Challenge {
	out := make([]model.Challenge, 0, len(s.challenges))
	for _, id := range sortedKeys(s.challenges) {
		if c := s.challenges[id]; keep(c) {
			out = append(out, *clonedChallenge(c))
		}
	}
	return out
}

func (s *MemStorage) filterParticipants(keep func(model.Participant) bool) []model.Participant {
	out := make([]model.Participant, 0)
	for _, id := range sortedKeys(s.participants) {
		if p := s.participants[id]; keep(p) {
			out = append(out, *clonedParticipant(p))
		}
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// The cloned* helpers detach pointer fields so callers cannot write
// through to the stored records.
func clonedUser(u model.User) *model.User {
	u.WalletAddress = copyString(u.WalletAddress)
	return &u
}

func clonedChallenge(c model.Challenge) *model.Challenge {
	c.ImageURL = copyString(c.ImageURL)
	return &c
}

func clonedParticipant(p model.Participant) *model.Participant {
	p.Score = copyFloat(p.Score)
	return &p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
