package handlers

import (
	"context"
	"sync"

	"seasonal_calc/internal/models"
	"seasonal_calc/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockLightCost struct {
	estimate   models.LightEstimate
	result     models.LightCostResult
	err        error
	lastParams models.LightParams
	lastRegion string
	calls      int
}

func (m *mockLightCost) Estimate(ctx context.Context, p models.LightParams, region string) (models.LightEstimate, error) {
	m.calls++
	m.lastParams = p
	m.lastRegion = region
	return m.estimate, m.err
}

func (m *mockLightCost) EstimateLocal(p models.LightParams) (models.LightCostResult, error) {
	m.calls++
	m.lastParams = p
	return m.result, m.err
}

type mockThaw struct {
	plan     models.ThawPlan
	err      error
	lastReq  models.ThawParams
	planCall int
}

func (m *mockThaw) Plan(ctx context.Context, p models.ThawParams) (models.ThawPlan, error) {
	m.planCall++
	m.lastReq = p
	return m.plan, m.err
}

type mockCountdown struct {
	mu        sync.Mutex
	state     models.CountdownState
	cancelled int
}

func (m *mockCountdown) Start(w models.ThawWindow) string { return "mock" }

func (m *mockCountdown) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled++
	m.state = models.CountdownState{Phase: models.PhaseIdle}
}

func (m *mockCountdown) CurrentState() models.CountdownState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockCountdown) set(st models.CountdownState) {
	m.mu.Lock()
	m.state = st
	m.mu.Unlock()
}

type mockSettings struct {
	stored   *models.Settings
	loadErr  error
	saveErr  error
	defaults models.Settings
	lastLang string
}

func (m *mockSettings) Load(ctx context.Context) (*models.Settings, error) {
	return m.stored, m.loadErr
}

func (m *mockSettings) Save(ctx context.Context, st models.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = &st
	return nil
}

func (m *mockSettings) Defaults(acceptLanguage string) models.Settings {
	m.lastLang = acceptLanguage
	return m.defaults
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
