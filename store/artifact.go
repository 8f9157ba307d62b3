package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// extByMIME maps the declared content types the model service returns to
// storage extensions. Anything unknown is stored as PNG.
var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
}

const defaultExt = ".png"

// ArtifactStore writes uploaded originals and generated images to the local
// filesystem and hands out the public paths the static file routes serve.
// File names carry a millisecond timestamp; two requests writing within the
// same millisecond and with the same base name is an accepted collision.
type ArtifactStore struct {
	uploadDir    string
	generatedDir string
}

func NewArtifactStore(uploadDir, generatedDir string) (*ArtifactStore, error) {
	for _, dir := range []string{uploadDir, generatedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return &ArtifactStore{uploadDir: uploadDir, generatedDir: generatedDir}, nil
}

// SaveArtifact persists a generated image and returns its public path under
// /generated/.
func (s *ArtifactStore) SaveArtifact(data []byte, mimeType, baseName string) (string, error) {
	name := fmt.Sprintf("%s_%d%s", baseName, time.Now().UnixMilli(), extensionFor(mimeType))
	if err := os.WriteFile(filepath.Join(s.generatedDir, name), data, 0o644); err != nil {
		return "", err
	}
	return "/generated/" + name, nil
}

// SaveUpload persists an uploaded original, keeping its extension, and
// returns its public path under /uploads/.
func (s *ArtifactStore) SaveUpload(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = defaultExt
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	if err := os.WriteFile(filepath.Join(s.uploadDir, name), data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// UploadDir returns the directory uploaded originals are written to.
func (s *ArtifactStore) UploadDir() string { return s.uploadDir }

// GeneratedDir returns the directory generated artifacts are written to.
func (s *ArtifactStore) GeneratedDir() string { return s.generatedDir }

func extensionFor(mimeType string) string {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if ext, ok := extByMIME[mime]; ok {
		return ext
	}
	return defaultExt
}
