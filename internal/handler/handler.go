package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/waifuisalie/ChallengeChain/internal/services"
	"github.com/waifuisalie/ChallengeChain/internal/storage"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
	"github.com/waifuisalie/ChallengeChain/internal/validation"
)

// Handler serves the REST API on top of a Storage.
type Handler struct {
	store    storage.Storage
	uploader services.ImageUploader
	validate *validation.Validator
	now      func() time.Time
}

// New builds a Handler. uploader may be nil, in which case POST /upload
// answers 503.
func New(store storage.Storage, uploader services.ImageUploader) *Handler {
	return &Handler{
		store:    store,
		uploader: uploader,
		validate: validation.New(),
		now:      time.Now,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// badRequest answers 400 with the validation text, or a generic body
// message when err comes from JSON decoding.
func badRequest(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		utils.Error(w, http.StatusBadRequest, verr.Error())
		return
	}
	utils.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
}

func invalidID(w http.ResponseWriter, err error) {
	utils.Error(w, http.StatusBadRequest, "Invalid id: "+err.Error())
}
