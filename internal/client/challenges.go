package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

// ChallengeState is a snapshot of the cached challenge list.
type ChallengeState struct {
	Challenges []model.ChallengeWithParticipants
	IsLoading  bool
	Error      string
}

type challengeSource interface {
	GetChallenges(ctx context.Context) ([]model.ChallengeWithParticipants, error)
}

// ChallengeStore caches the enriched challenge list. It starts in the
// loading state until the first Refresh completes.
type ChallengeStore struct {
	api challengeSource

	mu          sync.Mutex
	state       ChallengeState
	subscribers map[int]func(ChallengeState)
	nextSubID   int
}

func NewChallengeStore(api challengeSource) *ChallengeStore {
	return &ChallengeStore{
		api:         api,
		state:       ChallengeState{Challenges: []model.ChallengeWithParticipants{}, IsLoading: true},
		subscribers: make(map[int]func(ChallengeState)),
	}
}

// State returns a copy of the current state.
func (s *ChallengeStore) State() ChallengeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start performs the initial fetch.
func (s *ChallengeStore) Start(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh reloads the list. On failure the previous list is kept and the
// error message is recorded.
func (s *ChallengeStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()

	challenges, err := s.api.GetChallenges(ctx)

	s.mu.Lock()
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = fetchErrorMessage(err)
	} else {
		if challenges == nil {
			challenges = []model.ChallengeWithParticipants{}
		}
		s.state.Challenges = challenges
		s.state.Error = ""
	}
	s.mu.Unlock()

	s.notify()
	return err
}

// Find returns a copy of the cached challenge with id.
func (s *ChallengeStore) Find(id int) (model.ChallengeWithParticipants, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return model.ChallengeWithParticipants{}, false
}

func (s *ChallengeStore) Subscribe(fn func(ChallengeState)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *ChallengeStore) notify() {
	s.mu.Lock()
	state := s.snapshotLocked()
	subs := make([]func(ChallengeState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

func (s *ChallengeStore) snapshotLocked() ChallengeState {
	out := s.state
	out.Challenges = make([]model.ChallengeWithParticipants, len(s.state.Challenges))
	copy(out.Challenges, s.state.Challenges)
	return out
}

func fetchErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error fetching challenges: %d", apiErr.StatusCode)
	}
	return fmt.Sprintf("Error fetching challenges: %v", err)
}
