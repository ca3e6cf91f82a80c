package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProofStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalProofStore(dir, "payment-proofs")
	require.NoError(t, err)

	ref, err := store.Save("bukti.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "payment-proofs/"), "reference should carry the url base")
	assert.True(t, strings.HasSuffix(ref, "_bukti.jpg"), "reference should keep the original filename")

	// The file exists on disk with the uploaded content.
	name := strings.TrimPrefix(ref, "payment-proofs/")
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalProofStore_SaveUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalProofStore(dir, "payment-proofs")
	require.NoError(t, err)

	first, err := store.Save("bukti.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("bukti.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same filename must never collide")
}

func TestLocalProofStore_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalProofStore(dir, "payment-proofs")
	require.NoError(t, err)

	ref, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, ref, "..", "path traversal components must be stripped")
	assert.True(t, strings.HasSuffix(ref, "_passwd"))
}
