package controller_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/lib/pq"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/cache"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/controller"
	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/service"
)

// --- Mock Repositories ---

type MockInfluencerRepo struct {
	influencers map[int]*model.Influencer
	createErr   error
}

func (m *MockInfluencerRepo) Create(ctx context.Context, in model.CreateInfluencerInput) (*model.Influencer, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &model.Influencer{ID: 1, Name: in.Name, Email: in.Email, Phone: in.Phone, Bio: in.Bio}, nil
}

func (m *MockInfluencerRepo) GetByID(ctx context.Context, id int) (*model.Influencer, error) {
	return m.influencers[id], nil
}

func (m *MockInfluencerRepo) List(ctx context.Context) ([]*model.Influencer, error) {
	return []*model.Influencer{}, nil
}

func (m *MockInfluencerRepo) Update(ctx context.Context, in model.UpdateInfluencerInput) (*model.Influencer, error) {
	i, ok := m.influencers[in.ID]
	if !ok {
		return nil, appErrors.NewInfluencerNotFound(in.ID)
	}
	return i, nil
}

func (m *MockInfluencerRepo) Search(ctx context.Context, in model.SearchInfluencersInput) ([]*model.Influencer, error) {
	return []*model.Influencer{}, nil
}

func (m *MockInfluencerRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.influencers[id]
	return ok, nil
}

type MockSponsorRepo struct{}

func (m *MockSponsorRepo) Create(ctx context.Context, in model.CreateSponsorInput) (*model.Sponsor, error) {
	return &model.Sponsor{ID: 1, CompanyName: in.CompanyName}, nil
}
func (m *MockSponsorRepo) GetByID(ctx context.Context, id int) (*model.Sponsor, error) {
	if id == 1 {
		return &model.Sponsor{ID: 1, CompanyName: "Acme"}, nil
	}
	return nil, nil
}
func (m *MockSponsorRepo) List(ctx context.Context) ([]*model.Sponsor, error) { return nil, nil }
func (m *MockSponsorRepo) Update(ctx context.Context, in model.UpdateSponsorInput) (*model.Sponsor, error) {
	return nil, appErrors.NewSponsorNotFound(in.ID)
}
func (m *MockSponsorRepo) Exists(ctx context.Context, id int) (bool, error) { return id == 1, nil }

type MockProductRepo struct{}

func (m *MockProductRepo) Create(ctx context.Context, in model.CreateProductInput) (*model.Product, error) {
	return &model.Product{ID: 1, SponsorID: in.SponsorID}, nil
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if id == 2 {
		return &model.Product{ID: 2, SponsorID: 9}, nil
	}
	return nil, nil
}
func (m *MockProductRepo) List(ctx context.Context) ([]*model.Product, error) { return nil, nil }
func (m *MockProductRepo) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Product, error) {
	return []*model.Product{}, nil
}
func (m *MockProductRepo) Update(ctx context.Context, in model.UpdateProductInput) (*model.Product, error) {
	return nil, appErrors.NewProductNotFound(in.ID)
}

type MockCampaignRepo struct{}

func (m *MockCampaignRepo) Create(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error) {
	return &model.Campaign{ID: 1}, nil
}
func (m *MockCampaignRepo) GetByID(ctx context.Context, id int) (*model.Campaign, error) {
	return nil, nil
}
func (m *MockCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) { return nil, nil }
func (m *MockCampaignRepo) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Campaign, error) {
	return nil, nil
}
func (m *MockCampaignRepo) Update(ctx context.Context, in model.UpdateCampaignInput) (*model.Campaign, error) {
	return nil, appErrors.NewCampaignNotFound(in.ID)
}
func (m *MockCampaignRepo) Search(ctx context.Context, in model.SearchCampaignsInput) ([]*model.Campaign, error) {
	return []*model.Campaign{{ID: 3, Budget: 1234.56, Status: model.CampaignActive}}, nil
}

type MockIndicatorsRepo struct{}

func (m *MockIndicatorsRepo) Create(ctx context.Context, in model.CreatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	return nil, nil
}
func (m *MockIndicatorsRepo) GetByID(ctx context.Context, id int) (*model.PerformanceIndicators, error) {
	if id == 1 {
		return &model.PerformanceIndicators{ID: 1, InfluencerID: 1, Platform: model.PlatformYouTube, FollowersCount: 900}, nil
	}
	return nil, nil
}
func (m *MockIndicatorsRepo) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.PerformanceIndicators, error) {
	return []*model.PerformanceIndicators{}, nil
}
func (m *MockIndicatorsRepo) Update(ctx context.Context, in model.UpdatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	return nil, appErrors.NewPerformanceIndicatorsNotFound(in.ID)
}

type MockStatsRepo struct{}

func (m *MockStatsRepo) Counts(ctx context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{Influencers: 4}, nil
}

// --- Helpers ---

type envelope struct {
	Result *struct {
		Data json.RawMessage `json:"data"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func newTestServer(influencers *MockInfluencerRepo) http.Handler {
	sponsors := &MockSponsorRepo{}
	products := &MockProductRepo{}
	rpc := controller.NewMarketplaceRPC(controller.Services{
		Influencers: &service.InfluencerService{InfluencerRepo: influencers},
		Sponsors:    &service.SponsorService{SponsorRepo: sponsors},
		Products:    &service.ProductService{ProductRepo: products, SponsorRepo: sponsors},
		Campaigns:   &service.CampaignService{CampaignRepo: &MockCampaignRepo{}, SponsorRepo: sponsors, ProductRepo: products},
		Indicators:  &service.PerformanceIndicatorsService{IndicatorsRepo: &MockIndicatorsRepo{}, InfluencerRepo: influencers},
		Stats:       &service.StatsService{StatsRepo: &MockStatsRepo{}, Cache: cache.NewMemoryStatsCache()},
	})
	return controller.NewRouter(rpc, controller.RouterConfig{})
}

func query(t *testing.T, h http.Handler, name, input string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	target := "/trpc/" + name
	if input != "" {
		target += "?input=" + url.QueryEscape(input)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr, decode(t, rr)
}

func mutate(t *testing.T, h http.Handler, name, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/trpc/"+name, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr, decode(t, rr)
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", rr.Body.String(), err)
	}
	return env
}

// --- Tests ---

func TestHealthcheck(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := query(t, h, "healthcheck", "")
	if rr.Code != http.StatusOK || env.Result == nil {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
	var health controller.HealthStatus
	json.Unmarshal(env.Result.Data, &health)
	if health.Status != "ok" || health.Timestamp.IsZero() {
		t.Errorf("unexpected health %+v", health)
	}
}

func TestCreateInfluencerReturnsNulls(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := mutate(t, h, "createInfluencer", `{"name":"Ann","email":"ann@example.com"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	data := string(env.Result.Data)
	for _, frag := range []string{`"phone":null`, `"bio":null`, `"portfolio_description":null`} {
		if !strings.Contains(data, frag) {
			t.Errorf("missing %s in %s", frag, data)
		}
	}
}

func TestGetMissingReturnsNullData(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := query(t, h, "getInfluencer", `{"id":99}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if env.Result == nil || string(env.Result.Data) != "null" {
		t.Errorf("expected null data, got %s", rr.Body.String())
	}
}

func TestErrorMapping(t *testing.T) {
	dup := &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "influencers_email_key"`}

	cases := []struct {
		name    string
		repo    *MockInfluencerRepo
		call    func(h http.Handler) (*httptest.ResponseRecorder, envelope)
		status  int
		code    string
		message string
	}{
		{
			name: "validation",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "createInfluencer", `{"name":"Ann","email":"nope"}`)
			},
			status: http.StatusBadRequest, code: "BAD_REQUEST", message: "email",
		},
		{
			name: "malformed json",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "createInfluencer", `{"name":`)
			},
			status: http.StatusBadRequest, code: "BAD_REQUEST", message: "invalid input",
		},
		{
			name: "not found",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "updateInfluencer", `{"id":5,"name":"x"}`)
			},
			status: http.StatusNotFound, code: "NOT_FOUND", message: "Influencer with ID 5 not found",
		},
		{
			name: "ownership",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "createCampaign", `{"sponsor_id":1,"product_id":2,"title":"t","budget":10}`)
			},
			status: http.StatusBadRequest, code: "BAD_REQUEST", message: "Product 2 does not belong to sponsor 1",
		},
		{
			name: "unique violation",
			repo: &MockInfluencerRepo{createErr: dup},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "createInfluencer", `{"name":"Ann","email":"ann@example.com"}`)
			},
			status: http.StatusConflict, code: "CONFLICT", message: dup.Error(),
		},
		{
			name: "unknown procedure",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return query(t, h, "dropTables", "")
			},
			status: http.StatusNotFound, code: "NOT_FOUND", message: "dropTables",
		},
		{
			name: "query via post",
			repo: &MockInfluencerRepo{},
			call: func(h http.Handler) (*httptest.ResponseRecorder, envelope) {
				return mutate(t, h, "getInfluencers", `{}`)
			},
			status: http.StatusMethodNotAllowed, code: "METHOD_NOT_SUPPORTED", message: "POST",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr, env := c.call(newTestServer(c.repo))
			if rr.Code != c.status {
				t.Fatalf("expected %d, got %d: %s", c.status, rr.Code, rr.Body.String())
			}
			if env.Error == nil {
				t.Fatalf("expected error envelope, got %s", rr.Body.String())
			}
			if env.Error.Code != c.code {
				t.Errorf("expected code %s, got %s", c.code, env.Error.Code)
			}
			if !strings.Contains(env.Error.Message, c.message) {
				t.Errorf("expected %q in %q", c.message, env.Error.Message)
			}
		})
	}
}

func TestSearchCampaignsReturnsNumericBudget(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := query(t, h, "searchCampaigns", `{"status":"active","min_budget":100}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(string(env.Result.Data), `"budget":1234.56`) {
		t.Errorf("budget must serialize as a number: %s", env.Result.Data)
	}
}

func TestDashboardStats(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := mutate(t, h, "refreshDashboardStats", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var stats model.DashboardStats
	json.Unmarshal(env.Result.Data, &stats)
	if stats.Influencers != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}

	if rr, _ := query(t, h, "getDashboardStats", ""); rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, _ := query(t, h, "healthcheck", "")
	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated request id")
	}
}

func TestEveryProcedureRegistered(t *testing.T) {
	rpc := controller.NewMarketplaceRPC(controller.Services{})
	got := map[string]bool{}
	for _, name := range rpc.Procedures() {
		got[name] = true
	}
	for _, name := range []string{
		"healthcheck",
		"createInfluencer", "getInfluencer", "getInfluencers", "updateInfluencer", "searchInfluencers",
		"createSponsor", "getSponsor", "getSponsors", "updateSponsor",
		"createProduct", "getProduct", "getProducts", "getProductsBySponsor", "updateProduct",
		"createCampaign", "getCampaign", "getCampaigns", "getCampaignsBySponsor", "updateCampaign", "searchCampaigns",
		"createSocialMediaAccount", "getSocialMediaAccounts", "updateSocialMediaAccount",
		"createPerformanceIndicators", "getPerformanceIndicator", "getPerformanceIndicators", "updatePerformanceIndicators",
		"getDashboardStats", "refreshDashboardStats",
	} {
		if !got[name] {
			t.Errorf("procedure %s not registered", name)
		}
	}
}

func TestGetPerformanceIndicator(t *testing.T) {
	h := newTestServer(&MockInfluencerRepo{})

	rr, env := query(t, h, "getPerformanceIndicator", `{"id":1}`)
	if rr.Code != http.StatusOK || !strings.Contains(string(env.Result.Data), `"followers_count":900`) {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}

	_, env = query(t, h, "getPerformanceIndicator", `{"id":2}`)
	if env.Result == nil || string(env.Result.Data) != "null" {
		t.Errorf("expected null data for a missing row, got %+v", env)
	}

	if rr, _ := query(t, h, "getPerformanceIndicator", `{"id":0}`); rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for id 0, got %d", rr.Code)
	}
}
