package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"seasonal_calc"
	"seasonal_calc/internal/models"
	"seasonal_calc/internal/service"
)

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}

func TestEstimateLights_OK(t *testing.T) {
	lc := &mockLightCost{estimate: models.LightEstimate{
		Result: models.LightCostResult{TotalCost: 1.728},
		Source: models.SourceLocal,
	}}
	s := &service.Service{LightCost: lc, Regions: service.NewRegionService()}
	r := newTestRouter(s)

	w := postJSON(t, r, "/api/v1/lights/estimate",
		`{"lightType":"incandescent","powerWatt":40,"hoursPerDay":8,"days":30,"ratePerKWh":0.18,"region":"us"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if lc.calls != 1 || lc.lastRegion != "us" {
		t.Fatalf("unexpected service call: calls=%d region=%q", lc.calls, lc.lastRegion)
	}
	want := models.LightParams{LightType: models.LightIncandescent, PowerWatt: 40, HoursPerDay: 8, Days: 30, RatePerKWh: 0.18}
	if lc.lastParams != want {
		t.Fatalf("params = %+v; want %+v", lc.lastParams, want)
	}

	var out models.LightEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Result.TotalCost != 1.728 || out.Source != models.SourceLocal {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestEstimateLights_RateFromRegionPreset(t *testing.T) {
	lc := &mockLightCost{}
	s := &service.Service{LightCost: lc, Regions: service.NewRegionService()}
	r := newTestRouter(s)

	w := postJSON(t, r, "/api/v1/lights/estimate", `{"lightType":"led","powerWatt":5,"hoursPerDay":6,"days":10,"region":"uk"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if lc.lastParams.RatePerKWh != service.ResolveRegion("uk").RatePerKWh {
		t.Fatalf("rate = %v; want uk preset", lc.lastParams.RatePerKWh)
	}
}

func TestEstimateLights_Errors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{"malformed json", `{"powerWatt":`, nil, http.StatusBadRequest},
		{"non numeric", `{"powerWatt":"forty"}`, nil, http.StatusBadRequest},
		{"invalid input", `{"lightType":"led"}`, fmt.Errorf("%w: days", service.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", `{"lightType":"led"}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{LightCost: &mockLightCost{err: tc.svcErr}, Regions: service.NewRegionService()}
			w := postJSON(t, newTestRouter(s), "/api/v1/lights/estimate", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d; want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var resp map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["error"] == "" {
				t.Fatalf("expected error message, got %s", w.Body.String())
			}
		})
	}
}

func TestRemoteCompatibleEstimate(t *testing.T) {
	led, savings := 0.3456, 1.3824
	lc := &mockLightCost{result: models.LightCostResult{TotalCost: 1.728, LEDCostEstimate: &led, Savings: &savings}}
	r := newTestRouter(&service.Service{LightCost: lc})

	w := postJSON(t, r, "/api/v1/estimate",
		`{"lightType":"incandescent","powerWatt":40,"hoursPerDay":8,"days":30,"pricePerKWh":0.18}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if lc.lastParams.RatePerKWh != 0.18 {
		t.Fatalf("pricePerKWh not mapped: %+v", lc.lastParams)
	}

	var out seasonal_calc.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.TotalCost == nil || *out.TotalCost != 1.728 || out.Savings == nil || *out.Savings != 1.3824 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRemoteCompatibleEstimate_LEDOmitsOptionalFields(t *testing.T) {
	lc := &mockLightCost{result: models.LightCostResult{TotalCost: 0.5}}
	r := newTestRouter(&service.Service{LightCost: lc})

	w := postJSON(t, r, "/api/v1/estimate", `{"lightType":"led","powerWatt":5,"hoursPerDay":8,"days":30,"pricePerKWh":0.18}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["ledCostEstimate"]; ok {
		t.Fatalf("ledCostEstimate must be absent for LED: %s", w.Body.String())
	}
	if _, ok := raw["savings"]; ok {
		t.Fatalf("savings must be absent for LED: %s", w.Body.String())
	}
}
