package handler

import (
	"net/http"

	"github.com/waifuisalie/ChallengeChain/internal/services"
	"github.com/waifuisalie/ChallengeChain/internal/utils"
)

const maxUploadSize = 10 << 20

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadImage stores a challenge cover image sent as multipart field "image".
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Image upload is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	if !services.IsAllowedImage(header.Filename) {
		utils.Error(w, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		return
	}

	url, err := h.uploader.UploadChallengeImage(r.Context(), file, header.Filename)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	utils.Created(w, UploadResponse{ImageURL: url})
}
