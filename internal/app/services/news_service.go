package services

import (
	"context"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/helpers"
)

// NewsStore is the persistence surface the news service needs.
type NewsStore interface {
	Create(ctx context.Context, item *models.NewsItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.NewsItem, error)
	List(ctx context.Context, filter repositories.NewsFilter) ([]*models.NewsItem, error)
	Update(ctx context.Context, item *models.NewsItem) error
	Delete(ctx context.Context, id int64) error
}

// NewsService manages school news and events.
type NewsService struct {
	store NewsStore
}

// NewNewsService creates a new NewsService
func NewNewsService(store NewsStore) *NewsService {
	return &NewsService{store: store}
}

// Create publishes or drafts a news item. Events must carry a parsable
// event date; plain news items ignore it.
func (s *NewsService) Create(ctx context.Context, req *dto.CreateNewsItemRequest, createdBy int64) (*models.NewsItem, error) {
	item := &models.NewsItem{
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		Published: req.Published,
		CreatedBy: createdBy,
	}

	if req.Category == models.NewsCategoryEvent {
		item.EventDate = helpers.ParseDate(req.EventDate)
		if item.EventDate == nil {
			return nil, apperrors.ErrEventDateMissing
		}
	}

	id, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one news item
func (s *NewsService) GetByID(ctx context.Context, id int64) (*models.NewsItem, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves news items matching the filter
func (s *NewsService) List(ctx context.Context, filter repositories.NewsFilter) ([]*models.NewsItem, error) {
	return s.store.List(ctx, filter)
}

// Update edits a news item
func (s *NewsService) Update(ctx context.Context, id int64, req *dto.UpdateNewsItemRequest) (*models.NewsItem, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Body = req.Body
	item.Category = req.Category
	item.Published = req.Published
	item.EventDate = nil
	if req.Category == models.NewsCategoryEvent {
		item.EventDate = helpers.ParseDate(req.EventDate)
		if item.EventDate == nil {
			return nil, apperrors.ErrEventDateMissing
		}
	}

	if err := s.store.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a news item
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
