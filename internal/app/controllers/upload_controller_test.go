package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/pkg/blobstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBlobStore struct {
	putFilename string
	putSize     int64
	putContent  []byte
	putErr      error
}

func (s *fakeBlobStore) Put(ctx context.Context, r io.Reader, size int64, opts blobstore.PutOptions) (blobstore.Ref, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.putFilename = opts.Filename
	s.putSize = size
	s.putContent = data
	if opts.Progress != nil {
		opts.Progress(100)
	}
	return "stored-ref.png", nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, ref blobstore.Ref) error { return nil }

func (s *fakeBlobStore) URL(ref blobstore.Ref) string {
	return "http://localhost:8080/uploads/" + string(ref)
}

func uploadRequest(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func uploadRouter(blobs blobstore.Store) *gin.Engine {
	r := gin.New()
	r.POST("/uploads", NewUploadController(blobs).Upload)
	return r
}

func TestUploadStoresFile(t *testing.T) {
	blobs := &fakeBlobStore{}
	r := uploadRouter(blobs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "file", "poster.png", []byte("png-bytes")))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "poster.png", blobs.putFilename)
	assert.Equal(t, []byte("png-bytes"), blobs.putContent)
	assert.Equal(t, int64(len("png-bytes")), blobs.putSize)

	var resp struct {
		Data struct {
			Ref string `json:"ref"`
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stored-ref.png", resp.Data.Ref)
	assert.Equal(t, "http://localhost:8080/uploads/stored-ref.png", resp.Data.URL)
}

func TestUploadMissingFile(t *testing.T) {
	r := uploadRouter(&fakeBlobStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "wrong-field", "poster.png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadOversizedFile(t *testing.T) {
	blobs := &fakeBlobStore{}
	r := uploadRouter(blobs)

	big := bytes.Repeat([]byte("x"), maxUploadSize+1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "file", "huge.bin", big))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, blobs.putFilename, "oversized uploads must never reach the store")
}
