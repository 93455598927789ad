package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/filestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResourceStore struct {
	nextID    int64
	resources map[int64]*models.Resource
	createErr error
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{nextID: 1, resources: map[int64]*models.Resource{}}
}

func (f *fakeResourceStore) Create(_ context.Context, resource *models.Resource) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	resource.ID = f.nextID
	copied := *resource
	f.resources[copied.ID] = &copied
	f.nextID++
	return copied.ID, nil
}

func (f *fakeResourceStore) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, apperrors.ErrLearningResourceNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeResourceStore) List(_ context.Context, _ repositories.ResourceFilter) ([]*models.Resource, error) {
	out := []*models.Resource{}
	for id := f.nextID - 1; id >= 1; id-- {
		if r, ok := f.resources[id]; ok {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeResourceStore) Count(ctx context.Context, filter repositories.ResourceFilter) (int64, error) {
	resources, _ := f.List(ctx, filter)
	return int64(len(resources)), nil
}

func (f *fakeResourceStore) Delete(_ context.Context, id int64) ([]string, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, apperrors.ErrLearningResourceNotFound
	}
	urls := make([]string, 0, len(r.Files))
	for _, file := range r.Files {
		urls = append(urls, file.FileURL)
	}
	delete(f.resources, id)
	return urls, nil
}

func (f *fakeResourceStore) IncrementDownloads(_ context.Context, id int64) error {
	r, ok := f.resources[id]
	if !ok {
		return apperrors.ErrLearningResourceNotFound
	}
	r.Downloads++
	return nil
}

// memoryStorage tracks stored file URLs without touching disk.
type memoryStorage struct {
	nextID  int
	files   map[string]bool
	saveErr map[string]error // keyed by original filename
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{nextID: 1, files: map[string]bool{}, saveErr: map[string]error{}}
}

func (m *memoryStorage) SaveFile(header *multipart.FileHeader) (*filestorage.StoredFile, error) {
	return m.SaveFileWithPath(header, "")
}

func (m *memoryStorage) SaveFileWithPath(header *multipart.FileHeader, path string) (*filestorage.StoredFile, error) {
	if err := m.saveErr[header.Filename]; err != nil {
		return nil, err
	}
	url := fmt.Sprintf("/uploads/%s/%d_%s", path, m.nextID, header.Filename)
	m.nextID++
	m.files[url] = true
	return &filestorage.StoredFile{URL: url, OriginalName: header.Filename, Size: header.Size}, nil
}

func (m *memoryStorage) DeleteFile(filePath string) error {
	delete(m.files, filePath)
	return nil
}

func (m *memoryStorage) GetFullPath(fileURL string) string { return fileURL }

// resourceUpload builds a multipart.FileHeader for a named file.
func resourceUpload(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", name)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["files"]
	require.Len(t, files, 1)
	return files[0]
}

func TestResourceCreateClassifiesFiles(t *testing.T) {
	store := newFakeResourceStore()
	storage := newMemoryStorage()
	svc := NewResourceService(store, storage)

	uploads := []*multipart.FileHeader{
		resourceUpload(t, "syllabus.pdf", "pdf content"),
		resourceUpload(t, "diagram.png", "png content"),
		resourceUpload(t, "notes.pdf", "more pdf"),
	}

	resource, err := svc.Create(context.Background(), &dto.CreateResourceRequest{
		Title:   "Form 2 Chemistry Notes",
		Subject: "Chemistry",
		Class:   "Form 2",
		Access:  "student",
	}, uploads, 5)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryPDF, resource.Type) // two pdfs beat one image
	assert.True(t, resource.Active)
	assert.Equal(t, int64(5), resource.UploadedBy)
	require.Len(t, resource.Files, 3)
	assert.Equal(t, models.CategoryImage, resource.Files[1].Category)
	assert.Equal(t, "png", resource.Files[1].Extension)
	assert.Len(t, storage.files, 3)
}

func TestResourceCreateNoFilesRejected(t *testing.T) {
	svc := NewResourceService(newFakeResourceStore(), newMemoryStorage())

	_, err := svc.Create(context.Background(), &dto.CreateResourceRequest{Title: "Empty"}, nil, 1)

	assert.ErrorIs(t, err, apperrors.ErrNoFilesAttached)
}

func TestResourceCreateFailedSaveCleansUp(t *testing.T) {
	store := newFakeResourceStore()
	storage := newMemoryStorage()
	storage.saveErr["broken.pdf"] = assert.AnError
	svc := NewResourceService(store, storage)

	uploads := []*multipart.FileHeader{
		resourceUpload(t, "first.pdf", "ok"),
		resourceUpload(t, "broken.pdf", "fails"),
	}

	_, err := svc.Create(context.Background(), &dto.CreateResourceRequest{Title: "T"}, uploads, 1)

	assert.Error(t, err)
	// The file stored before the failure is removed again
	assert.Empty(t, storage.files)
	assert.Empty(t, store.resources)
}

func TestResourceCreateFailedInsertCleansUp(t *testing.T) {
	store := newFakeResourceStore()
	store.createErr = assert.AnError
	storage := newMemoryStorage()
	svc := NewResourceService(store, storage)

	uploads := []*multipart.FileHeader{resourceUpload(t, "first.pdf", "ok")}

	_, err := svc.Create(context.Background(), &dto.CreateResourceRequest{Title: "T"}, uploads, 1)

	assert.Error(t, err)
	assert.Empty(t, storage.files)
}

func TestResourceDeleteRemovesStoredFiles(t *testing.T) {
	store := newFakeResourceStore()
	storage := newMemoryStorage()
	svc := NewResourceService(store, storage)

	resource, err := svc.Create(context.Background(), &dto.CreateResourceRequest{Title: "T"},
		[]*multipart.FileHeader{resourceUpload(t, "notes.pdf", "pdf")}, 1)
	require.NoError(t, err)
	require.Len(t, storage.files, 1)

	require.NoError(t, svc.Delete(context.Background(), resource.ID))

	assert.Empty(t, storage.files)
	_, err = svc.GetByID(context.Background(), resource.ID)
	assert.ErrorIs(t, err, apperrors.ErrLearningResourceNotFound)
}

func TestRecordDownload(t *testing.T) {
	store := newFakeResourceStore()
	svc := NewResourceService(store, newMemoryStorage())

	resource, err := svc.Create(context.Background(), &dto.CreateResourceRequest{Title: "T"},
		[]*multipart.FileHeader{resourceUpload(t, "notes.pdf", "pdf")}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RecordDownload(context.Background(), resource.ID))
	require.NoError(t, svc.RecordDownload(context.Background(), resource.ID))

	got, err := svc.GetByID(context.Background(), resource.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Downloads)
}
