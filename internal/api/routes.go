package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/waifuisalie/ChallengeChain/internal/handler"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
	"github.com/waifuisalie/ChallengeChain/internal/middleware"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

// Options configures SetupRouter.
type Options struct {
	// APIPrefix is prepended to every API route, e.g. "/api".
	APIPrefix string
	// UploadDir, when set, is served under /uploads/.
	UploadDir string
	Metrics   *middleware.Metrics
}

// SetupRouter wires every route under opts.APIPrefix. /health, /metrics and
// /uploads/ stay at the root.
func SetupRouter(h *handler.Handler, opts Options) http.Handler {
	r := mux.NewRouter()

	metrics := opts.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}
	r.Use(metrics.Middleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	if opts.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))),
		).Methods(http.MethodGet)
	}

	api := r
	if opts.APIPrefix != "" && opts.APIPrefix != "/" {
		r.HandleFunc(opts.APIPrefix, h.RootHandler).Methods(http.MethodGet)
		api = r.PathPrefix(opts.APIPrefix).Subrouter()
	}

	// Root - API documentation
	api.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/challenges", h.GetUserChallenges).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/participations", h.GetUserParticipations).Methods(http.MethodGet)

	// Challenges
	api.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	api.HandleFunc("/challenges", h.CreateChallenge).Methods(http.MethodPost)
	api.HandleFunc("/challenges/{id:[0-9]+}", h.GetChallenge).Methods(http.MethodGet)
	api.HandleFunc("/challenges/{id:[0-9]+}", h.DeleteChallenge).Methods(http.MethodDelete)
	api.HandleFunc("/challenges/{id:[0-9]+}/status", h.UpdateChallengeStatus).Methods(http.MethodPatch)

	// Participants
	api.HandleFunc("/challenges/{id:[0-9]+}/participants", h.GetChallengeParticipants).Methods(http.MethodGet)
	api.HandleFunc("/challenges/{id:[0-9]+}/participants", h.JoinChallenge).Methods(http.MethodPost)
	api.HandleFunc("/participants/{id:[0-9]+}/score", h.UpdateParticipantScore).Methods(http.MethodPatch)
	api.HandleFunc("/participants/{id:[0-9]+}/winner", h.SetWinner).Methods(http.MethodPatch)

	// Leaderboard
	api.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/challenges/{id:[0-9]+}/leaderboard", h.GetChallengeLeaderboard).Methods(http.MethodGet)

	// Uploads
	api.HandleFunc("/upload", h.UploadImage).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("no route for %s %s, request %s", r.Method, r.URL.Path, middleware.RequestID(r.Context()))
		utils.Error(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return middleware.LoggerMiddleware(r)
}
