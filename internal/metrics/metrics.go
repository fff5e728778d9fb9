package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	seasonalCalc = "seasonal_calc"

	lightEstimatesTotal   = "light_estimates_total"
	remoteFallbacksTotal  = "remote_fallbacks_total"
	thawPlansTotal        = "thaw_plans_total"
	countdownPhaseTotal   = "countdown_phase_changes_total"
	settingsFailuresTotal = "settings_failures_total"
	httpRequestsTotal     = "http_requests_total"

	// Labels
	sourceLabel         = "source"
	methodLabel         = "method"
	behindScheduleLabel = "behind_schedule"
	phaseLabel          = "phase"
	opLabel             = "op"
	codeLabel           = "code"
	pathLabel           = "path"
)

/**
* Metrics definition
**/
var lightEstimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      lightEstimatesTotal,
		Help:      "number of light cost estimates by result source",
	},
	[]string{sourceLabel},
)

var remoteFallbacksTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      remoteFallbacksTotal,
		Help:      "number of remote estimate failures recovered by local computation",
	},
)

var thawPlansTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      thawPlansTotal,
		Help:      "number of thaw plans by method and schedule status",
	},
	[]string{methodLabel, behindScheduleLabel},
)

var countdownPhaseTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      countdownPhaseTotal,
		Help:      "number of countdown phase transitions by target phase",
	},
	[]string{phaseLabel},
)

var settingsFailuresTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      settingsFailuresTotal,
		Help:      "number of settings slot read/write failures",
	},
	[]string{opLabel},
)

var httpRequestsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: seasonalCalc,
		Name:      httpRequestsTotal,
		Help:      "number of HTTP requests partitioned by status code, method and route",
	},
	[]string{codeLabel, methodLabel, pathLabel},
)

func IncreaseLightEstimatesMetric(source string) {
	lightEstimatesTotalMetric.With(prometheus.Labels{sourceLabel: source}).Inc()
}

func IncreaseRemoteFallbacksMetric() {
	remoteFallbacksTotalMetric.Inc()
}

func IncreaseThawPlansMetric(method string, behind bool) {
	thawPlansTotalMetric.With(prometheus.Labels{
		methodLabel:         method,
		behindScheduleLabel: strconv.FormatBool(behind),
	}).Inc()
}

func IncreaseCountdownPhaseMetric(phase string) {
	countdownPhaseTotalMetric.With(prometheus.Labels{phaseLabel: phase}).Inc()
}

func IncreaseSettingsFailuresMetric(op string) {
	settingsFailuresTotalMetric.With(prometheus.Labels{opLabel: op}).Inc()
}

func IncreaseHTTPRequestsMetric(code int, method, path string) {
	httpRequestsTotalMetric.With(prometheus.Labels{
		codeLabel:   strconv.Itoa(code),
		methodLabel: method,
		pathLabel:   path,
	}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(lightEstimatesTotalMetric)
	prometheus.MustRegister(remoteFallbacksTotalMetric)
	prometheus.MustRegister(thawPlansTotalMetric)
	prometheus.MustRegister(countdownPhaseTotalMetric)
	prometheus.MustRegister(settingsFailuresTotalMetric)
	prometheus.MustRegister(httpRequestsTotalMetric)
}
