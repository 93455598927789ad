package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/filestorage"
	"github.com/omondi/shulehub/internal/pkg/helpers"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

// ResourceStore is the persistence surface the resource service needs.
type ResourceStore interface {
	Create(ctx context.Context, resource *models.Resource) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	List(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error)
	Count(ctx context.Context, filter repositories.ResourceFilter) (int64, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	IncrementDownloads(ctx context.Context, id int64) error
}

// ResourceService manages learning resources and their uploaded files.
type ResourceService struct {
	store   ResourceStore
	storage filestorage.FileStorage
}

// NewResourceService creates a new ResourceService
func NewResourceService(store ResourceStore, storage filestorage.FileStorage) *ResourceService {
	return &ResourceService{store: store, storage: storage}
}

// Create stores the uploaded files and records the resource. The
// resource type is the dominant category among the attached files.
func (s *ResourceService) Create(ctx context.Context, req *dto.CreateResourceRequest, uploads []*multipart.FileHeader, uploadedBy int64) (*models.Resource, error) {
	if len(uploads) == 0 {
		return nil, apperrors.ErrNoFilesAttached
	}

	files := make([]models.ResourceFile, 0, len(uploads))
	stored := make([]string, 0, len(uploads))
	cleanup := func() {
		for _, url := range stored {
			if err := s.storage.DeleteFile(url); err != nil {
				logger.Warn().Err(err).Str("file", url).Msg("Failed to clean up stored file")
			}
		}
	}

	for _, header := range uploads {
		saved, err := s.storage.SaveFileWithPath(header, "resources")
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, saved.URL)

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
		files = append(files, models.ResourceFile{
			FileURL:   saved.URL,
			FileName:  header.Filename,
			FileSize:  header.Size,
			Extension: ext,
			Category:  ClassifyFile(header.Filename),
		})
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Class:       req.Class,
		Teacher:     req.Teacher,
		Category:    req.Category,
		Access:      models.AccessLevel(req.Access),
		Type:        DominantCategory(files),
		Files:       files,
		UploadedBy:  uploadedBy,
		Active:      true,
	}

	id, err := s.store.Create(ctx, resource)
	if err != nil {
		cleanup()
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one resource with its files
func (s *ResourceService) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves a page of resources matching the filter
func (s *ResourceService) List(ctx context.Context, req *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(req.Page, req.PageSize)
	filter := repositories.ResourceFilter{
		Subject: req.Subject,
		Class:   req.Class,
		Access:  models.AccessLevel(req.Access),
		Type:    models.FileCategory(req.Type),
		Offset:  offset,
		Limit:   limit,
	}

	resources, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ResourceListResponse{
		Resources:  resources,
		Pagination: helpers.NewPaginationInfo(total, req.Page, req.PageSize),
	}, nil
}

// Delete removes a resource and its stored files. Storage cleanup
// failures are logged, not surfaced; the record is already gone.
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	urls, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	for _, url := range urls {
		if err := s.storage.DeleteFile(url); err != nil {
			logger.Warn().Err(err).Str("file", url).Int64("resourceID", id).Msg("Failed to delete stored file")
		}
	}
	return nil
}

// RecordDownload bumps the download counter for a resource
func (s *ResourceService) RecordDownload(ctx context.Context, id int64) error {
	return s.store.IncrementDownloads(ctx, id)
}
