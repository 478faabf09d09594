package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestValidateImage_AcceptsKnownExtensions(t *testing.T) {
	for _, name := range []string{"a.png", "b.jpg", "c.JPEG", "d.gif", "e.webp"} {
		header := testFileHeader(t, name, []byte("img"))
		assert.NoError(t, ValidateImage(header), name)
	}
}

func TestValidateImage_RejectsUnknownExtension(t *testing.T) {
	header := testFileHeader(t, "payload.exe", []byte("img"))

	err := ValidateImage(header)
	require.Error(t, err)

	var upErr *Error
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "invalid_file_format", upErr.Code)
}

func TestValidateImage_RejectsOversizedFile(t *testing.T) {
	header := testFileHeader(t, "big.png", []byte("img"))
	header.Size = MaxFileSize + 1

	err := ValidateImage(header)
	require.Error(t, err)

	var upErr *Error
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "file_too_large", upErr.Code)
}

func TestSaveServiceImage_WritesUniqueFile(t *testing.T) {
	dir := t.TempDir()
	header := testFileHeader(t, "photo.PNG", []byte("png-bytes"))

	publicPath, err := SaveServiceImage(header, dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, "/static/uploads/services/"))
	assert.True(t, strings.HasSuffix(publicPath, ".png"))
	assert.NotContains(t, publicPath, "photo")

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(publicPath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestSaveServiceImage_DistinctNamesForSameUpload(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveServiceImage(testFileHeader(t, "photo.png", []byte("one")), dir)
	require.NoError(t, err)
	second, err := SaveServiceImage(testFileHeader(t, "photo.png", []byte("two")), dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
