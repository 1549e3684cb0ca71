package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Upload folders, one per file-backed entity.
const (
	ProfilePicFolder = "profile_pic"
	ExerciseFolder   = "exercise"
	ProjectFolder    = "project"
)

func uploadRoot() string {
	if root := os.Getenv("UPLOAD_DIR"); root != "" {
		return root
	}
	return "uploads"
}

// UploadPath builds a storage path for an uploaded file. The original
// extension is preserved; the stem is replaced with a fresh uuid so repeated
// uploads never collide and client-supplied names never leak into storage.
func UploadPath(folder, filename string) string {
	ext := filepath.Ext(filename)
	return filepath.Join(uploadRoot(), folder, uuid.New().String()+ext)
}

// SaveUpload persists a multipart file under a generated unique path and
// returns that path.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, folder string) (string, error) {
	path := UploadPath(folder, file.Filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
