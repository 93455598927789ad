package services

import (
	"context"
	"testing"
	"time"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignStore struct {
	nextID    int64
	campaigns map[int64]*models.EmailCampaign
	markErr   error
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{nextID: 1, campaigns: map[int64]*models.EmailCampaign{}}
}

func (f *fakeCampaignStore) Create(_ context.Context, campaign *models.EmailCampaign) (int64, error) {
	campaign.ID = f.nextID
	copied := *campaign
	f.campaigns[copied.ID] = &copied
	f.nextID++
	return copied.ID, nil
}

func (f *fakeCampaignStore) GetByID(_ context.Context, id int64) (*models.EmailCampaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperrors.ErrCampaignNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCampaignStore) List(_ context.Context) ([]*models.EmailCampaign, error) {
	out := []*models.EmailCampaign{}
	for id := f.nextID - 1; id >= 1; id-- {
		if c, ok := f.campaigns[id]; ok {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCampaignStore) Update(_ context.Context, campaign *models.EmailCampaign) error {
	if _, ok := f.campaigns[campaign.ID]; !ok {
		return apperrors.ErrCampaignNotFound
	}
	copied := *campaign
	f.campaigns[copied.ID] = &copied
	return nil
}

func (f *fakeCampaignStore) MarkPublished(_ context.Context, id int64, sentAt time.Time, sent, failed int) error {
	if f.markErr != nil {
		return f.markErr
	}
	c, ok := f.campaigns[id]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	c.Status = models.CampaignPublished
	c.SentAt = &sentAt
	c.SentCount = sent
	c.FailedCount = failed
	return nil
}

func (f *fakeCampaignStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.campaigns[id]; !ok {
		return apperrors.ErrCampaignNotFound
	}
	delete(f.campaigns, id)
	return nil
}

type staticRoster struct{ students []*models.Student }

func (r staticRoster) List(_ context.Context, _ repositories.StudentFilter) ([]*models.Student, error) {
	return r.students, nil
}

type staticStaff struct{ staff []*models.Admin }

func (s staticStaff) List(_ context.Context) ([]*models.Admin, error) { return s.staff, nil }

type staticSubscribers struct{ subscribers []*models.Subscriber }

func (s staticSubscribers) List(_ context.Context) ([]*models.Subscriber, error) {
	return s.subscribers, nil
}

// flakyMailer fails delivery to the addresses in fail and records the
// rest.
type flakyMailer struct {
	fail map[string]bool
	sent []email.Message
}

func (m *flakyMailer) Send(_ context.Context, msg email.Message) error {
	if m.fail[msg.To] {
		return assert.AnError
	}
	m.sent = append(m.sent, msg)
	return nil
}

func campaignFixture(mailer email.Mailer) (*CampaignService, *fakeCampaignStore) {
	students := []*models.Student{
		{ID: 1, Status: models.StatusActive, GuardianEmail: "guardian.one@example.com"},
		{ID: 2, Status: models.StatusActive, GuardianEmail: "guardian.two@example.com"},
	}
	staff := []*models.Admin{
		{ID: 1, Role: models.RoleTeacher, Email: "teacher@example.com"},
		{ID: 2, Role: models.RolePrincipal, Department: "Administration", Email: "principal@example.com"},
	}
	subscribers := []*models.Subscriber{
		{ID: 1, Email: "reader.one@example.com"},
		{ID: 2, Email: "reader.two@example.com"},
	}

	store := newFakeCampaignStore()
	svc := NewCampaignService(store, staticRoster{students}, staticStaff{staff}, staticSubscribers{subscribers}, mailer)
	return svc, store
}

func TestCampaignCreateMaterializesRecipients(t *testing.T) {
	svc, store := campaignFixture(&flakyMailer{})

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title:   "Term Opening",
		Subject: "Term dates",
		Body:    "<p>School reopens on Monday.</p>",
		Group:   "parents",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, models.CampaignDraft, campaign.Status)
	assert.Equal(t, int64(7), campaign.CreatedBy)
	assert.Equal(t, []string{"guardian.one@example.com", "guardian.two@example.com"}, campaign.Recipients)
	// The list is stored with the campaign, not re-derived later
	assert.Equal(t, campaign.Recipients, store.campaigns[campaign.ID].Recipients)
}

func TestCampaignCreateEmptyGroupRejected(t *testing.T) {
	store := newFakeCampaignStore()
	svc := NewCampaignService(store, staticRoster{}, staticStaff{}, staticSubscribers{}, &flakyMailer{})

	_, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title:   "Term Opening",
		Subject: "Term dates",
		Body:    "body",
		Group:   "parents",
	}, 1)

	assert.ErrorIs(t, err, apperrors.ErrNoRecipients)
	assert.Empty(t, store.campaigns)
}

func TestCampaignPublishTalliesOutcome(t *testing.T) {
	mailer := &flakyMailer{fail: map[string]bool{"guardian.two@example.com": true}}
	svc, store := campaignFixture(mailer)

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title:   "Term Opening",
		Subject: "Term dates",
		Body:    "body",
		Group:   "parents",
	}, 1)
	require.NoError(t, err)

	report, err := svc.Publish(context.Background(), campaign.ID)
	require.NoError(t, err)

	assert.Equal(t, dto.SendReport{Recipients: 2, Sent: 1, Failed: 1}, *report)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "guardian.one@example.com", mailer.sent[0].To)
	assert.Equal(t, "Term dates", mailer.sent[0].Subject)

	published := store.campaigns[campaign.ID]
	assert.Equal(t, models.CampaignPublished, published.Status)
	assert.Equal(t, 1, published.SentCount)
	assert.Equal(t, 1, published.FailedCount)
	assert.NotNil(t, published.SentAt)
}

func TestCampaignPublishMarkFailureLeavesDraft(t *testing.T) {
	mailer := &flakyMailer{}
	svc, store := campaignFixture(mailer)

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title:   "Term Opening",
		Subject: "Term dates",
		Body:    "body",
		Group:   "parents",
	}, 1)
	require.NoError(t, err)

	store.markErr = assert.AnError
	_, err = svc.Publish(context.Background(), campaign.ID)
	require.Error(t, err)

	// The batch has gone out even though the status flip failed, so the
	// campaign is still a retryable draft that would re-send on publish.
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, models.CampaignDraft, store.campaigns[campaign.ID].Status)
	assert.Zero(t, store.campaigns[campaign.ID].SentCount)
}

func TestCampaignPublishTwiceRejected(t *testing.T) {
	svc, _ := campaignFixture(&flakyMailer{})

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title: "T", Subject: "S", Body: "B", Group: "staff",
	}, 1)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), campaign.ID)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrCampaignAlreadyPublished)
}

func TestCampaignUpdatePublishedRejected(t *testing.T) {
	svc, _ := campaignFixture(&flakyMailer{})

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title: "T", Subject: "S", Body: "B", Group: "staff",
	}, 1)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), campaign.ID)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), campaign.ID, &dto.UpdateCampaignRequest{
		Title: "T2", Subject: "S2", Body: "B2",
	})
	assert.ErrorIs(t, err, apperrors.ErrCampaignAlreadyPublished)
}

func TestCampaignUpdateDraftKeepsRecipients(t *testing.T) {
	svc, _ := campaignFixture(&flakyMailer{})

	campaign, err := svc.Create(context.Background(), &dto.CreateCampaignRequest{
		Title: "T", Subject: "S", Body: "B", Group: "parents",
	}, 1)
	require.NoError(t, err)
	original := campaign.Recipients

	updated, err := svc.Update(context.Background(), campaign.ID, &dto.UpdateCampaignRequest{
		Title: "T2", Subject: "S2", Body: "B2",
	})
	require.NoError(t, err)

	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, original, updated.Recipients)
}

func TestBroadcastSendsToSubscribers(t *testing.T) {
	mailer := &flakyMailer{}
	svc, store := campaignFixture(mailer)

	report, err := svc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Subject: "Newsletter", Body: "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, dto.SendReport{Recipients: 2, Sent: 2}, *report)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "reader.one@example.com", mailer.sent[0].To)
	// A broadcast leaves no campaign record behind
	assert.Empty(t, store.campaigns)
}

func TestBroadcastNoSubscribersRejected(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignStore(), staticRoster{}, staticStaff{}, staticSubscribers{}, &flakyMailer{})

	_, err := svc.Broadcast(context.Background(), &dto.BroadcastRequest{Subject: "S", Body: "B"})

	assert.ErrorIs(t, err, apperrors.ErrNoRecipients)
}

func TestPreviewRecipientsDoesNotPersist(t *testing.T) {
	svc, store := campaignFixture(&flakyMailer{})

	got, err := svc.PreviewRecipients(context.Background(), models.GroupParents)
	require.NoError(t, err)

	assert.Equal(t, []string{"guardian.one@example.com", "guardian.two@example.com"}, got)
	assert.Empty(t, store.campaigns)
}
