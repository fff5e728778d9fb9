package service

import (
	"context"
	"sync"
	"time"

	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/metrics"
	"seasonal_calc/internal/models"
	"seasonal_calc/internal/repository"
)

// LightCost estimates holiday light electricity cost.
type LightCost interface {
	Estimate(ctx context.Context, p models.LightParams, region string) (models.LightEstimate, error)
	EstimateLocal(p models.LightParams) (models.LightCostResult, error)
}

// Regions exposes the static rate presets and locale detection.
type Regions interface {
	List() []models.RegionPreset
	Resolve(code string) models.RegionPreset
	Detect(localeTag string) models.RegionCode
	FromAcceptLanguage(header string) models.RegionCode
}

// Thaw plans turkey thawing.
type Thaw interface {
	Plan(ctx context.Context, p models.ThawParams) (models.ThawPlan, error)
}

// Countdown is the single thaw countdown of the process.
type Countdown interface {
	Start(w models.ThawWindow) string
	Cancel()
	CurrentState() models.CountdownState
}

// Settings is the accessor for the persisted settings slot.
type Settings interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, st models.Settings) error
	Defaults(acceptLanguage string) models.Settings
}

type Service struct {
	LightCost
	Regions
	Thaw
	Countdown
	Settings
}

// Options carries what the services need beyond the repositories.
type Options struct {
	Remote        RemoteEstimator // nil means local only
	Location      *time.Location  // zone for target times without an offset
	CountdownTick time.Duration
	Log           *logger.Logger
}

// NewService wires the repository layer and options into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	settings := NewSettingsService(repos.Settings, log.Named("settings"))
	countdown := NewCountdownSession(opts.CountdownTick, WithOnChange(countdownObserver(log.Named("countdown"))))

	return &Service{
		LightCost: NewLightCostService(opts.Remote, settings, log.Named("lights")),
		Regions:   NewRegionService(),
		Thaw:      NewThawService(countdown, opts.Location, log.Named("thaw")),
		Countdown: countdown,
		Settings:  settings,
	}
}

// phaseObserver logs and counts countdown phase transitions. Ticks that only
// move the fraction are ignored.
type phaseObserver struct {
	mu   sync.Mutex
	last models.CountdownPhase
	log  *logger.Logger
}

func countdownObserver(log *logger.Logger) func(models.CountdownState) {
	o := &phaseObserver{last: models.PhaseIdle, log: log}
	return o.observe
}

func (o *phaseObserver) observe(st models.CountdownState) {
	o.mu.Lock()
	changed := st.Phase != o.last
	o.last = st.Phase
	o.mu.Unlock()

	if !changed {
		return
	}
	metrics.IncreaseCountdownPhaseMetric(string(st.Phase))
	o.log.Infow("countdown_phase_changed",
		"session_id", st.SessionID,
		"phase", st.Phase,
		"remaining_s", st.RemainingSeconds,
	)
}
