package blobstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefIsExternal(t *testing.T) {
	assert.True(t, Ref("https://cdn.example.com/x.png").IsExternal())
	assert.True(t, FromURL("http://example.com/y.jpg").IsExternal())
	assert.False(t, Ref("3f2a-photo.jpg").IsExternal())
	assert.False(t, Ref("").IsExternal())
}

func TestProgressReaderReportsCompletion(t *testing.T) {
	content := bytes.Repeat([]byte("x"), 1000)

	var last float64
	var reports int
	r := newProgressReader(bytes.NewReader(content), int64(len(content)), func(pct float64) {
		reports++
		require.GreaterOrEqual(t, pct, last, "progress must not go backwards")
		last = pct
	})

	var sink bytes.Buffer
	n, err := sink.ReadFrom(r)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)
	assert.Greater(t, reports, 0)
	assert.Equal(t, float64(100), last)
}

func TestProgressReaderNilCallbackPassesThrough(t *testing.T) {
	src := strings.NewReader("hello")
	r := newProgressReader(src, 5, nil)
	assert.Equal(t, src, r, "no callback means no wrapping")
}

func TestLocalStorePutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), strings.NewReader("image-bytes"), 11, PutOptions{
		Filename: "team-photo.JPG",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(ref), ".jpg"), "extension is derived from the filename, lowercased")

	data, err := os.ReadFile(filepath.Join(dir, string(ref)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, string(ref)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.png"))
	assert.NoError(t, store.Delete(context.Background(), ""))
	assert.NoError(t, store.Delete(context.Background(), FromURL("https://cdn.example.com/ext.png")))
}

func TestLocalStoreDeleteRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	defer os.Remove(outside)

	// Traversal refs collapse to their base name inside the store directory.
	require.NoError(t, store.Delete(context.Background(), Ref("../victim.txt")))
	_, err = os.Stat(outside)
	assert.NoError(t, err, "files outside the store directory must survive")
}

func TestLocalStoreURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/uploads/abc.png", store.URL("abc.png"))
	assert.Equal(t, "https://cdn.example.com/x.png", store.URL(FromURL("https://cdn.example.com/x.png")))
	assert.Equal(t, "", store.URL(""))
}
