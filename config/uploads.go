package config

import (
	"os"
	"path/filepath"
)

// BaseUploadDir resolves the uploads root from UPLOAD_DIR, defaulting to ./uploads.
func BaseUploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func ResumesDir() string { return filepath.Join(BaseUploadDir(), "resumes") }
func ImagesDir() string  { return filepath.Join(BaseUploadDir(), "images") }

// EnsureUploadDirs creates the resume and image directories if absent.
func EnsureUploadDirs() error {
	for _, dir := range []string{ResumesDir(), ImagesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
