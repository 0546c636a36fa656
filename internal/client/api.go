// Package client talks to the ChallengeChain REST API and holds the state
// the front ends render: the simulated wallet and the challenge list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// APIClient is a thin JSON client for the REST API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient targets baseURL, which includes the API prefix,
// e.g. http://localhost:5000/api.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) GetChallenges(ctx context.Context) ([]model.ChallengeWithParticipants, error) {
	var out []model.ChallengeWithParticipants
	if err := c.do(ctx, http.MethodGet, "/challenges", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) GetChallenge(ctx context.Context, id int) (*model.ChallengeWithParticipants, error) {
	var out model.ChallengeWithParticipants
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/challenges/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CreateChallenge(ctx context.Context, in model.InsertChallenge) (*model.Challenge, error) {
	var out model.Challenge
	if err := c.do(ctx, http.MethodPost, "/challenges", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateChallengeStatus(ctx context.Context, id int, status string) (*model.Challenge, error) {
	var out model.Challenge
	body := model.UpdateStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/challenges/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) JoinChallenge(ctx context.Context, challengeID int, in model.InsertParticipant) (*model.Participant, error) {
	var out model.Participant
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/challenges/%d/participants", challengeID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateScore(ctx context.Context, participantID int, score float64) (*model.Participant, error) {
	var out model.Participant
	body := model.UpdateScoreRequest{Score: &score}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/participants/%d/score", participantID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) SetWinner(ctx context.Context, participantID int) (*model.Participant, error) {
	var out model.Participant
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/participants/%d/winner", participantID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPost, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetUser(ctx context.Context, id int) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var e utils.ErrorResponse
		if json.Unmarshal(raw, &e) != nil || e.Message == "" {
			e.Message = strings.TrimSpace(string(raw))
		}
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
