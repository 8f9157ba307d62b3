package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewArtifactStore(filepath.Join(dir, "uploads"), filepath.Join(dir, "generated"))
	require.NoError(t, err)
	return s
}

func TestNewArtifactStoreCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	up := filepath.Join(dir, "a", "uploads")
	gen := filepath.Join(dir, "a", "generated")
	_, err := NewArtifactStore(up, gen)
	require.NoError(t, err)
	for _, d := range []string{up, gen} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"image/png":                ".png",
		"image/jpeg":               ".jpg",
		"image/jpg":                ".jpg",
		"image/gif":                ".gif",
		"IMAGE/PNG":                ".png",
		"image/jpeg; charset=bin":  ".jpg",
		"image/webp":               ".png",
		"application/octet-stream": ".png",
		"":                         ".png",
	}
	for mime, want := range cases {
		assert.Equal(t, want, extensionFor(mime), "mime=%q", mime)
	}
}

func TestSaveArtifactReturnsPublicPath(t *testing.T) {
	s := newTestStore(t)
	path, err := s.SaveArtifact([]byte("data"), "image/jpeg", "sketch")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/generated/sketch_"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	onDisk := filepath.Join(s.GeneratedDir(), strings.TrimPrefix(path, "/generated/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestSaveArtifactDistinctBaseNamesNeverCollide(t *testing.T) {
	s := newTestStore(t)
	first, err := s.SaveArtifact([]byte("same"), "image/png", "step_1")
	require.NoError(t, err)
	second, err := s.SaveArtifact([]byte("same"), "image/png", "step_2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	entries, err := os.ReadDir(s.GeneratedDir())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveUploadKeepsOriginalExtension(t *testing.T) {
	s := newTestStore(t)
	path, err := s.SaveUpload([]byte("photo"), "My Cat.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	noExt, err := s.SaveUpload([]byte("photo"), "upload")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(noExt, ".png"))
}
