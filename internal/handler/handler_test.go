package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waifuisalie/ChallengeChain/internal/api"
	"github.com/waifuisalie/ChallengeChain/internal/handler"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/services"
	"github.com/waifuisalie/ChallengeChain/internal/storage"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

type testServer struct {
	t      *testing.T
	router http.Handler
	store  *storage.MemStorage
}

func newTestServer(t *testing.T, uploader services.ImageUploader) *testServer {
	t.Helper()
	store := storage.NewMemStorage()
	h := handler.New(store, uploader)
	return &testServer{
		t:      t,
		router: api.SetupRouter(h, api.Options{APIPrefix: "/api"}),
		store:  store,
	}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(s.t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["message"]
}

func (s *testServer) createUser(name string) model.User {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/users", map[string]string{
		"username":      name,
		"password":      "secret",
		"walletAddress": "0x" + name,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.User](s.t, rec)
}

func challengeBody(creatorID int, overrides map[string]interface{}) map[string]interface{} {
	start := time.Now().Add(-time.Hour).UTC()
	body := map[string]interface{}{
		"creatorId":          creatorID,
		"name":               "Morning Run",
		"description":        "Run five kilometres every morning",
		"rules":              "Post the app summary daily",
		"category":           "Fitness",
		"verificationMethod": "app",
		"startDate":          start.Format(time.RFC3339),
		"endDate":            start.Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"maxParticipants":    10,
		"cryptoType":         "SOL",
		"entryFee":           0.1,
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func (s *testServer) createChallenge(creatorID int, overrides map[string]interface{}) model.Challenge {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/challenges", challengeBody(creatorID, overrides))
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Challenge](s.t, rec)
}

func (s *testServer) join(challengeID int, u model.User) *httptest.ResponseRecorder {
	s.t.Helper()
	return s.do(http.MethodPost, fmt.Sprintf("/api/challenges/%d/participants", challengeID), map[string]interface{}{
		"userId":        u.ID,
		"walletAddress": *u.WalletAddress,
	})
}

func TestUsers(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/users", map[string]string{"username": "alice", "password": "pw", "walletAddress": "0xa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	alice := decode[model.User](t, rec)

	stored, err := s.store.GetUser(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "pw"))
	assert.False(t, utils.CheckPassword(stored.Password, "other"))

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d", alice.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode[model.User](t, rec).Username)

	rec = s.do(http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", message(t, rec))

	rec = s.do(http.MethodPost, "/api/users", map[string]string{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", message(t, rec))

	rec = s.do(http.MethodPost, "/api/users", map[string]string{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "username")

	rec = s.do(http.MethodPost, "/api/users", `{"username":"bob","password":"pw","admin":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code, "undeclared keys are dropped")
	assert.Equal(t, "bob", decode[model.User](t, rec).Username)
}

func TestCreateChallenge_Validation(t *testing.T) {
	s := newTestServer(t, nil)
	alice := s.createUser("alice")

	start := time.Now().UTC()
	rec := s.do(http.MethodPost, "/api/challenges", challengeBody(alice.ID, map[string]interface{}{
		"startDate": start.Format(time.RFC3339),
		"endDate":   start.Add(-time.Hour).Format(time.RFC3339),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "endDate")

	rec = s.do(http.MethodPost, "/api/challenges", challengeBody(alice.ID, map[string]interface{}{"maxParticipants": 1}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "maxParticipants")

	rec = s.do(http.MethodPost, "/api/challenges", challengeBody(alice.ID, map[string]interface{}{"cryptoType": "BTC"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/challenges", challengeBody(alice.ID, map[string]interface{}{"startDate": "not a date"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/challenges", challengeBody(999, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "creatorId: user not found", message(t, rec))
}

func TestCreateChallenge_DerivesStatus(t *testing.T) {
	s := newTestServer(t, nil)
	alice := s.createUser("alice")

	started := s.createChallenge(alice.ID, nil)
	assert.Equal(t, model.StatusActive, started.Status)

	future := time.Now().Add(48 * time.Hour).UTC()
	upcoming := s.createChallenge(alice.ID, map[string]interface{}{
		"startDate": future.Format(time.RFC3339),
		"endDate":   future.Add(24 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, model.StatusUpcoming, upcoming.Status)

	explicit := s.createChallenge(alice.ID, map[string]interface{}{"status": model.StatusCompleted})
	assert.Equal(t, model.StatusCompleted, explicit.Status)
}

func TestJoinChallenge_Capacity(t *testing.T) {
	s := newTestServer(t, nil)
	a, b, c := s.createUser("a"), s.createUser("b"), s.createUser("c")
	ch := s.createChallenge(a.ID, map[string]interface{}{"maxParticipants": 2})

	assert.Equal(t, http.StatusCreated, s.join(ch.ID, a).Code)
	rec := s.join(ch.ID, b)
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decode[model.Participant](t, rec)
	assert.Equal(t, ch.ID, p.ChallengeID)
	assert.False(t, p.IsWinner)

	rec = s.join(ch.ID, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Challenge has reached maximum participants", message(t, rec))

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d/participants", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]model.ParticipantWithUser](t, rec)
	require.Len(t, listed, 2)
	assert.Equal(t, "a", listed[0].Username)
	assert.Equal(t, "b", listed[1].Username)
}

func TestJoinChallenge_Refusals(t *testing.T) {
	s := newTestServer(t, nil)
	a := s.createUser("a")
	done := s.createChallenge(a.ID, map[string]interface{}{"status": model.StatusCompleted})

	rec := s.join(done.ID, a)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Challenge is not open for joining", message(t, rec))

	rec = s.join(999, a)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Challenge not found", message(t, rec))

	open := s.createChallenge(a.ID, nil)
	rec = s.do(http.MethodPost, fmt.Sprintf("/api/challenges/%d/participants", open.ID), map[string]interface{}{"userId": a.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "walletAddress")

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/challenges/%d/participants", open.ID), map[string]interface{}{"userId": 999, "walletAddress": "0x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "userId: user not found", message(t, rec))
}

func TestJoinChallenge_DropsServerOwnedFields(t *testing.T) {
	s := newTestServer(t, nil)
	a := s.createUser("a")
	ch := s.createChallenge(a.ID, nil)

	rec := s.do(http.MethodPost, fmt.Sprintf("/api/challenges/%d/participants", ch.ID), map[string]interface{}{
		"userId":        a.ID,
		"walletAddress": "0xa",
		"score":         0,
		"isWinner":      true,
		"joinedAt":      "2001-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	p := decode[model.Participant](t, rec)
	assert.False(t, p.IsWinner)
	assert.True(t, p.JoinedAt.After(time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC)))

	stored, err := s.store.GetParticipantsByChallenge(context.Background(), ch.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].IsWinner)
}

func TestCreateChallenge_LenientBody(t *testing.T) {
	s := newTestServer(t, nil)
	a := s.createUser("a")

	ch := s.createChallenge(a.ID, map[string]interface{}{
		"startDate":    "2030-01-01",
		"endDate":      "2030-01-08",
		"participants": []int{1, 2},
		"totalPool":    99,
	})
	assert.True(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Equal(ch.StartDate), ch.StartDate)
	assert.True(t, time.Date(2030, 1, 8, 0, 0, 0, 0, time.UTC).Equal(ch.EndDate), ch.EndDate)
	assert.Equal(t, model.StatusUpcoming, ch.Status)

	rec := s.do(http.MethodPost, "/api/challenges", challengeBody(a.ID, map[string]interface{}{"startDate": "next tuesday"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), `invalid date "next tuesday"`)
}

func TestGetChallenge_Enrichment(t *testing.T) {
	s := newTestServer(t, nil)
	a, b, c := s.createUser("a"), s.createUser("b"), s.createUser("c")
	ch := s.createChallenge(a.ID, nil)
	for _, u := range []model.User{a, b, c} {
		require.Equal(t, http.StatusCreated, s.join(ch.ID, u).Code)
	}

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.ChallengeWithParticipants](t, rec)
	assert.Equal(t, "a", got.CreatorName)
	assert.Len(t, got.Participants, 3)
	assert.Equal(t, 0.3, got.TotalPool)

	empty := s.createChallenge(b.ID, nil)
	rec = s.do(http.MethodGet, "/api/challenges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]model.ChallengeWithParticipants](t, rec)
	require.Len(t, all, 2)
	assert.Equal(t, empty.ID, all[1].ID)
	assert.NotNil(t, all[1].Participants)
	assert.Equal(t, 0.0, all[1].TotalPool)
	assert.Contains(t, rec.Body.String(), `"participants":[]`)

	rec = s.do(http.MethodGet, "/api/challenges/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetChallenge_UnknownCreator(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()
	ch, err := s.store.CreateChallenge(ctx, model.InsertChallenge{
		CreatorID: 42, Name: "Orphan", StartDate: time.Now(), EndDate: time.Now().Add(time.Hour),
		MaxParticipants: 2, CryptoType: "SOL", EntryFee: 1,
	})
	require.NoError(t, err)

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unknown", decode[model.ChallengeWithParticipants](t, rec).CreatorName)
}

func TestUpdateChallengeStatus(t *testing.T) {
	s := newTestServer(t, nil)
	a := s.createUser("a")
	ch := s.createChallenge(a.ID, nil)
	path := fmt.Sprintf("/api/challenges/%d/status", ch.ID)

	rec := s.do(http.MethodPatch, path, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status", message(t, rec))

	rec = s.do(http.MethodPatch, path, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/api/challenges/999/status", map[string]string{"status": model.StatusActive})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, path, map[string]string{"status": model.StatusCompleted})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusCompleted, decode[model.Challenge](t, rec).Status)
}

func TestParticipantScoreAndWinner(t *testing.T) {
	s := newTestServer(t, nil)
	a, b := s.createUser("a"), s.createUser("b")
	ch := s.createChallenge(a.ID, nil)
	pa := decode[model.Participant](t, s.join(ch.ID, a))
	pb := decode[model.Participant](t, s.join(ch.ID, b))

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/score", pa.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid score", message(t, rec))

	rec = s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/score", pa.ID), `{"score":"high"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/api/participants/999/score", map[string]interface{}{"score": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Participant not found", message(t, rec))

	rec = s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/score", pa.ID), map[string]interface{}{"score": 120.5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120.5, *decode[model.Participant](t, rec).Score)

	require.Equal(t, http.StatusOK, s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/winner", pa.ID), nil).Code)
	rec = s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/winner", pb.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[model.Participant](t, rec).IsWinner)

	got := decode[model.ChallengeWithParticipants](t, s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil))
	assert.Equal(t, model.StatusCompleted, got.Status)
	winners := 0
	for _, p := range got.Participants {
		if p.IsWinner {
			winners++
			assert.Equal(t, pb.ID, p.ID)
		}
	}
	assert.Equal(t, 1, winners)

	rec = s.do(http.MethodPatch, "/api/participants/999/winner", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteChallenge(t *testing.T) {
	s := newTestServer(t, nil)
	a := s.createUser("a")
	ch := s.createChallenge(a.ID, nil)
	require.Equal(t, http.StatusCreated, s.join(ch.ID, a).Code)

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Challenge deleted", message(t, rec))

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, fmt.Sprintf("/api/challenges/%d", ch.ID), nil).Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d/participations", a.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Participant](t, rec))
}

func TestUserChallengesAndParticipations(t *testing.T) {
	s := newTestServer(t, nil)
	a, b := s.createUser("a"), s.createUser("b")
	mine := s.createChallenge(a.ID, nil)
	theirs := s.createChallenge(b.ID, nil)
	require.Equal(t, http.StatusCreated, s.join(theirs.ID, a).Code)

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/users/%d/challenges", a.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[[]model.ChallengeWithParticipants](t, rec)
	require.Len(t, created, 1)
	assert.Equal(t, mine.ID, created[0].ID)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d/participations", a.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	joined := decode[[]model.Participant](t, rec)
	require.Len(t, joined, 1)
	assert.Equal(t, theirs.ID, joined[0].ChallengeID)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/users/999/challenges", nil).Code)
}

func TestLeaderboardRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	a, b, c := s.createUser("a"), s.createUser("b"), s.createUser("c")
	ch := s.createChallenge(a.ID, map[string]interface{}{"entryFee": 0.5})
	for u, score := range map[*model.User]float64{&a: 100, &b: 150, &c: 75} {
		p := decode[model.Participant](t, s.join(ch.ID, *u))
		require.Equal(t, http.StatusOK, s.do(http.MethodPatch, fmt.Sprintf("/api/participants/%d/score", p.ID), map[string]float64{"score": score}).Code)
	}

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/challenges/%d/leaderboard", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]model.LeaderboardEntry](t, rec)
	require.Len(t, entries, 3)
	assert.Equal(t, b.ID, entries[0].UserID)
	assert.Equal(t, a.ID, entries[1].UserID)
	assert.Equal(t, c.ID, entries[2].UserID)
	assert.Equal(t, model.BadgeGold, entries[0].Badge)
	assert.Equal(t, 1.5, *entries[0].Reward)
	assert.Equal(t, 0.0, *entries[1].Reward)

	rec = s.do(http.MethodGet, "/api/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.LeaderboardEntry](t, rec), 3)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/challenges/999/leaderboard", nil).Code)
}

type fakeUploader struct {
	filename string
	data     string
}

func (f *fakeUploader) UploadChallengeImage(_ context.Context, file io.Reader, filename string) (string, error) {
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.filename, f.data = filename, string(b)
	return "https://cdn.example.com/" + filename, nil
}

func multipartRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	up := &fakeUploader{}
	s := newTestServer(t, up)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartRequest(t, "image", "cover.png", "png-data"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "https://cdn.example.com/cover.png", decode[handler.UploadResponse](t, rec).ImageURL)
	assert.Equal(t, "png-data", up.data)

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartRequest(t, "file", "cover.png", "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartRequest(t, "image", "evil.exe", "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	noUpload := newTestServer(t, nil)
	rec = httptest.NewRecorder()
	noUpload.router.ServeHTTP(rec, multipartRequest(t, "image", "cover.png", "x"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouterAmbient(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", message(t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", message(t, rec))

	rec = s.do(http.MethodGet, "/api", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ChallengeChain API")

	s.do(http.MethodGet, "/api/challenges", nil)
	rec = s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `challengechain_http_requests_total{method="GET",route="/api/challenges",status="200"} 1`)
}

func TestTotalPool(t *testing.T) {
	assert.Equal(t, 0.3, handler.TotalPool(3, 0.1))
	assert.Equal(t, 0.0, handler.TotalPool(0, 0.5))
	assert.Equal(t, 1.5, handler.TotalPool(3, 0.5))
}
