package filestorage

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string // expected suffix after the timestamp prefix
	}{
		{"Term 1 Notes.pdf", "_Term_1_Notes.pdf"},
		{"report.PDF", "_report.pdf"},
		{"../../etc/passwd", "_passwd"},
		{"weird  !!name??.docx", "_weird_name.docx"},
		{"___.txt", "_file.txt"},
	}

	for _, tt := range tests {
		got := SanitizeFilename(tt.in)
		assert.Truef(t, strings.HasSuffix(got, tt.want), "SanitizeFilename(%q) = %q, want suffix %q", tt.in, got, tt.want)
		// Timestamp prefix keeps repeated uploads of the same name apart
		assert.Regexpf(t, `^\d+_`, got, "SanitizeFilename(%q) = %q", tt.in, got)
	}
}

// uploadedFile builds a real multipart.FileHeader the way Gin hands one
// to the services.
func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	saved, err := store.SaveFileWithPath(uploadedFile(t, "Term 1 Notes.pdf", "notes"), "resources")
	require.NoError(t, err)

	assert.Equal(t, "Term 1 Notes.pdf", saved.OriginalName)
	assert.Equal(t, int64(len("notes")), saved.Size)
	assert.Truef(t, strings.HasPrefix(saved.URL, "http://localhost:8080/uploads/resources/"), "url %q", saved.URL)

	physical := store.GetFullPath(saved.URL)
	require.NotEmpty(t, physical)
	content, err := os.ReadFile(physical)
	require.NoError(t, err)
	assert.Equal(t, "notes", string(content))

	// Deleting by the stored URL removes the file under its subdirectory
	require.NoError(t, store.DeleteFile(saved.URL))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))

	// Deleting an already-gone file is not an error
	assert.NoError(t, store.DeleteFile(saved.URL))
}

func TestLocalStorageSaveNilHeader(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	saved, err := store.SaveFile(nil)
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.Error(t, store.DeleteFile("../../etc/passwd"))
	assert.Empty(t, store.GetFullPath("../../etc/passwd"))
}
