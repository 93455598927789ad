package services

import (
	"context"
	"strings"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/validation"
)

// SubscriberStore is the persistence surface the subscriber service needs.
type SubscriberStore interface {
	Create(ctx context.Context, email string) (int64, error)
	List(ctx context.Context) ([]*models.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Delete(ctx context.Context, email string) error
}

// SubscriberService manages the newsletter subscriber list.
type SubscriberService struct {
	store SubscriberStore
}

// NewSubscriberService creates a new SubscriberService
func NewSubscriberService(store SubscriberStore) *SubscriberService {
	return &SubscriberService{store: store}
}

// Subscribe adds an email to the list. Addresses are stored trimmed and
// lowercased so the unique constraint catches case variants.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	if _, err := s.store.Create(ctx, email); err != nil {
		return nil, err
	}
	return s.store.GetByEmail(ctx, email)
}

// List returns all subscribers
func (s *SubscriberService) List(ctx context.Context) ([]*models.Subscriber, error) {
	return s.store.List(ctx)
}

// Unsubscribe removes an email from the list
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	return s.store.Delete(ctx, strings.ToLower(strings.TrimSpace(email)))
}
