package services

import (
	"context"
	"testing"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberStore struct {
	nextID      int64
	subscribers map[string]*models.Subscriber
}

func newFakeSubscriberStore() *fakeSubscriberStore {
	return &fakeSubscriberStore{nextID: 1, subscribers: map[string]*models.Subscriber{}}
}

func (f *fakeSubscriberStore) Create(_ context.Context, email string) (int64, error) {
	if _, ok := f.subscribers[email]; ok {
		return 0, apperrors.ErrAlreadySubscribed
	}
	sub := &models.Subscriber{ID: f.nextID, Email: email}
	f.subscribers[email] = sub
	f.nextID++
	return sub.ID, nil
}

func (f *fakeSubscriberStore) List(_ context.Context) ([]*models.Subscriber, error) {
	out := make([]*models.Subscriber, 0, len(f.subscribers))
	for _, sub := range f.subscribers {
		out = append(out, sub)
	}
	return out, nil
}

func (f *fakeSubscriberStore) GetByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	sub, ok := f.subscribers[email]
	if !ok {
		return nil, apperrors.ErrSubscriberNotFound
	}
	return sub, nil
}

func (f *fakeSubscriberStore) Delete(_ context.Context, email string) error {
	if _, ok := f.subscribers[email]; !ok {
		return apperrors.ErrSubscriberNotFound
	}
	delete(f.subscribers, email)
	return nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	store := newFakeSubscriberStore()
	svc := NewSubscriberService(store)

	sub, err := svc.Subscribe(context.Background(), "  Reader@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", sub.Email)
}

func TestSubscribeTwiceRejected(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberStore())

	_, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	// A case variant of the same address hits the same record
	_, err = svc.Subscribe(context.Background(), "READER@example.com")
	assert.ErrorIs(t, err, apperrors.ErrAlreadySubscribed)
}

func TestSubscribeInvalidEmailRejected(t *testing.T) {
	store := newFakeSubscriberStore()
	svc := NewSubscriberService(store)

	_, err := svc.Subscribe(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.subscribers)
}

func TestUnsubscribeNormalizesEmail(t *testing.T) {
	store := newFakeSubscriberStore()
	svc := NewSubscriberService(store)

	_, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), " READER@example.com "))
	assert.Empty(t, store.subscribers)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberStore())

	err := svc.Unsubscribe(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, apperrors.ErrSubscriberNotFound)
}
