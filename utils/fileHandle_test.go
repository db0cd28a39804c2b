package utils_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"lnf/config"
	"lnf/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	assert.True(t, utils.AllowedFile("photo.jpg"))
	assert.True(t, utils.AllowedFile("photo.JPEG"))
	assert.True(t, utils.AllowedFile("photo.webp"))
	assert.False(t, utils.AllowedFile("script.exe"))
	assert.False(t, utils.AllowedFile("archive.tar.gz"))
	assert.False(t, utils.AllowedFile("noextension"))
}

func TestGenerateItemID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.GenerateItemID()
		assert.Len(t, id, 8)
		assert.False(t, seen[id], "item ids must not collide")
		seen[id] = true
	}
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, utils.IsValidCategory("Electronics"))
	assert.True(t, utils.IsValidCategory("electronics"))
	assert.False(t, utils.IsValidCategory("Spaceships"))
}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestSaveUploadedImage(t *testing.T) {
	config.LoadConfig()
	config.AppConfig.UploadDir = t.TempDir()

	file := uploadHeader(t, "receipt.png", []byte("not really a png"))

	saved, err := utils.SaveUploadedImage(file)
	require.NoError(t, err)
	assert.NotEqual(t, "receipt.png", saved)
	assert.Equal(t, ".png", filepath.Ext(saved))

	data, err := os.ReadFile(filepath.Join(config.AppConfig.UploadDir, saved))
	require.NoError(t, err)
	assert.Equal(t, []byte("not really a png"), data)
}

func TestSaveUploadedImageRejectsExtension(t *testing.T) {
	config.LoadConfig()
	config.AppConfig.UploadDir = t.TempDir()

	file := uploadHeader(t, "payload.exe", []byte("nope"))

	_, err := utils.SaveUploadedImage(file)
	assert.ErrorIs(t, err, utils.ErrFileType)
}

func TestSaveUploadedImageRejectsOversize(t *testing.T) {
	config.LoadConfig()
	config.AppConfig.UploadDir = t.TempDir()
	config.AppConfig.MaxUploadMB = 0

	file := uploadHeader(t, "big.jpg", bytes.Repeat([]byte("a"), 1024))

	_, err := utils.SaveUploadedImage(file)
	assert.ErrorIs(t, err, utils.ErrFileSize)
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "", utils.GetFileURL(""))
	assert.Equal(t, "/uploads/a.png", utils.GetFileURL("a.png"))
}
