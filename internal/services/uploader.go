package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/waifuisalie/ChallengeChain/internal/config"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
)

// ImageUploader stores an uploaded challenge image and returns its public URL.
type ImageUploader interface {
	UploadChallengeImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// IsAllowedImage reports whether filename has an accepted image extension.
func IsAllowedImage(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

// LocalUploader writes images to a directory served under URLPrefix.
type LocalUploader struct {
	Dir       string
	URLPrefix string
}

func NewLocalUploader(dir, urlPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalUploader{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (u *LocalUploader) UploadChallengeImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return u.URLPrefix + "/" + name, nil
}

// NewImageUploader returns Cloudinary when credentials are configured and
// local disk storage otherwise.
func NewImageUploader(cfg *config.Config) (ImageUploader, error) {
	if cfg.CloudinaryEnabled() {
		svc, err := NewCloudinaryService(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Uploading images to Cloudinary")
		return svc, nil
	}
	local, err := NewLocalUploader(cfg.UploadDir, "/uploads")
	if err != nil {
		return nil, err
	}
	logger.Info("Uploading images to %s", cfg.UploadDir)
	return local, nil
}
