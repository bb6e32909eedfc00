package service_test

import (
	"context"
	"errors"
	"sync"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
)

// Mock repositories

type MockInfluencerRepo struct {
	influencers map[int]*model.Influencer
	lastSearch  model.SearchInfluencersInput
}

func (m *MockInfluencerRepo) Create(ctx context.Context, in model.CreateInfluencerInput) (*model.Influencer, error) {
	if m.influencers == nil {
		m.influencers = map[int]*model.Influencer{}
	}
	i := &model.Influencer{ID: len(m.influencers) + 1, Name: in.Name, Email: in.Email, Phone: in.Phone}
	m.influencers[i.ID] = i
	return i, nil
}

func (m *MockInfluencerRepo) GetByID(ctx context.Context, id int) (*model.Influencer, error) {
	return m.influencers[id], nil
}

func (m *MockInfluencerRepo) List(ctx context.Context) ([]*model.Influencer, error) {
	list := []*model.Influencer{}
	for _, i := range m.influencers {
		list = append(list, i)
	}
	return list, nil
}

func (m *MockInfluencerRepo) Update(ctx context.Context, in model.UpdateInfluencerInput) (*model.Influencer, error) {
	i, ok := m.influencers[in.ID]
	if !ok {
		return nil, appErrors.NewInfluencerNotFound(in.ID)
	}
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Bio.Set {
		i.Bio = in.Bio.Ptr()
	}
	return i, nil
}

func (m *MockInfluencerRepo) Search(ctx context.Context, in model.SearchInfluencersInput) ([]*model.Influencer, error) {
	m.lastSearch = in
	return []*model.Influencer{}, nil
}

func (m *MockInfluencerRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.influencers[id]
	return ok, nil
}

type MockSponsorRepo struct {
	sponsors map[int]*model.Sponsor
}

func (m *MockSponsorRepo) Create(ctx context.Context, in model.CreateSponsorInput) (*model.Sponsor, error) {
	return &model.Sponsor{ID: 1, CompanyName: in.CompanyName, ContactEmail: in.ContactEmail, Industry: in.Industry}, nil
}

func (m *MockSponsorRepo) GetByID(ctx context.Context, id int) (*model.Sponsor, error) {
	return m.sponsors[id], nil
}

func (m *MockSponsorRepo) List(ctx context.Context) ([]*model.Sponsor, error) {
	return []*model.Sponsor{}, nil
}

func (m *MockSponsorRepo) Update(ctx context.Context, in model.UpdateSponsorInput) (*model.Sponsor, error) {
	return nil, appErrors.NewSponsorNotFound(in.ID)
}

func (m *MockSponsorRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.sponsors[id]
	return ok, nil
}

type MockProductRepo struct {
	products map[int]*model.Product
	created  int
}

func (m *MockProductRepo) Create(ctx context.Context, in model.CreateProductInput) (*model.Product, error) {
	m.created++
	return &model.Product{ID: 100 + m.created, SponsorID: in.SponsorID, Name: in.Name, Category: in.Category}, nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	return m.products[id], nil
}

func (m *MockProductRepo) List(ctx context.Context) ([]*model.Product, error) {
	return []*model.Product{}, nil
}

func (m *MockProductRepo) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Product, error) {
	return []*model.Product{}, nil
}

func (m *MockProductRepo) Update(ctx context.Context, in model.UpdateProductInput) (*model.Product, error) {
	return nil, appErrors.NewProductNotFound(in.ID)
}

type MockCampaignRepo struct {
	created    []model.CreateCampaignInput
	lastSearch model.SearchCampaignsInput
}

func (m *MockCampaignRepo) Create(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error) {
	m.created = append(m.created, in)
	status := model.CampaignDraft
	if in.Status != nil {
		status = *in.Status
	}
	return &model.Campaign{
		ID: len(m.created), SponsorID: in.SponsorID, ProductID: in.ProductID,
		Title: in.Title, Budget: in.Budget, Status: status,
	}, nil
}

func (m *MockCampaignRepo) GetByID(ctx context.Context, id int) (*model.Campaign, error) {
	return nil, nil
}

func (m *MockCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) {
	return []*model.Campaign{}, nil
}

func (m *MockCampaignRepo) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Campaign, error) {
	return []*model.Campaign{}, nil
}

func (m *MockCampaignRepo) Update(ctx context.Context, in model.UpdateCampaignInput) (*model.Campaign, error) {
	return nil, appErrors.NewCampaignNotFound(in.ID)
}

func (m *MockCampaignRepo) Search(ctx context.Context, in model.SearchCampaignsInput) ([]*model.Campaign, error) {
	m.lastSearch = in
	return []*model.Campaign{}, nil
}

type MockAccountRepo struct {
	created int
}

func (m *MockAccountRepo) Create(ctx context.Context, in model.CreateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	m.created++
	return &model.SocialMediaAccount{ID: m.created, InfluencerID: in.InfluencerID, Platform: in.Platform, Username: in.Username, URL: in.URL}, nil
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id int) (*model.SocialMediaAccount, error) {
	return nil, nil
}

func (m *MockAccountRepo) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.SocialMediaAccount, error) {
	return []*model.SocialMediaAccount{}, nil
}

func (m *MockAccountRepo) Update(ctx context.Context, in model.UpdateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	return nil, appErrors.NewSocialMediaAccountNotFound(in.ID)
}

type MockIndicatorsRepo struct{}

func (m *MockIndicatorsRepo) Create(ctx context.Context, in model.CreatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	return &model.PerformanceIndicators{ID: 1, InfluencerID: in.InfluencerID, Platform: in.Platform, FollowersCount: in.FollowersCount}, nil
}

func (m *MockIndicatorsRepo) GetByID(ctx context.Context, id int) (*model.PerformanceIndicators, error) {
	return nil, nil
}

func (m *MockIndicatorsRepo) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.PerformanceIndicators, error) {
	return []*model.PerformanceIndicators{}, nil
}

func (m *MockIndicatorsRepo) Update(ctx context.Context, in model.UpdatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	return nil, appErrors.NewPerformanceIndicatorsNotFound(in.ID)
}

type MockStatsRepo struct {
	calls int
	fail  bool
}

func (m *MockStatsRepo) Counts(ctx context.Context) (*model.DashboardStats, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("db down")
	}
	return &model.DashboardStats{Influencers: m.calls}, nil
}

// recordingQueue captures published events synchronously.
type recordingQueue struct {
	mu     sync.Mutex
	events []queue.Event
	fail   bool
}

func (q *recordingQueue) Publish(topic string, payload any) error {
	if q.fail {
		return errors.New("broker unavailable")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, payload.(queue.Event))
	return nil
}

func (q *recordingQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func strPtr(s string) *string { return &s }
