package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"seasonal_calc/internal/models"
	"seasonal_calc/internal/service"
)

func getSettingsResponse(t *testing.T, r http.Handler, lang string) SettingsResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp SettingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestGetSettings_Saved(t *testing.T) {
	ms := &mockSettings{stored: &models.Settings{LightType: models.LightLED, PowerWatt: 5, Region: models.RegionUK}}
	r := newTestRouter(&service.Service{Settings: ms})

	resp := getSettingsResponse(t, r, "")
	if !resp.Saved || resp.Settings.PowerWatt != 5 || resp.Settings.Region != models.RegionUK {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetSettings_DefaultsWhenEmptyOrUnavailable(t *testing.T) {
	cases := []struct {
		name string
		ms   *mockSettings
	}{
		{"empty slot", &mockSettings{}},
		{"storage down", &mockSettings{loadErr: fmt.Errorf("%w: disk", service.ErrPersistenceUnavailable)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.ms.defaults = models.Settings{Region: models.RegionAU, Rate: 0.30}
			r := newTestRouter(&service.Service{Settings: tc.ms})

			resp := getSettingsResponse(t, r, "en-AU")
			if resp.Saved || resp.Settings.Region != models.RegionAU || resp.Settings.Rate != 0.30 {
				t.Fatalf("unexpected response: %+v", resp)
			}
			if tc.ms.lastLang != "en-AU" {
				t.Fatalf("Accept-Language not passed to defaults: %q", tc.ms.lastLang)
			}
		})
	}
}

func TestPutSettings(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		saveErr   error
		wantCode  int
		wantSaved bool
	}{
		{"saved", `{"lightType":"led","powerWatt":5,"rate":0.2}`, nil, http.StatusOK, true},
		{"storage down", `{"lightType":"led"}`, fmt.Errorf("%w: disk", service.ErrPersistenceUnavailable), http.StatusOK, false},
		{"invalid", `{"lightType":"neon"}`, fmt.Errorf("%w: lightType", service.ErrInvalidInput), http.StatusBadRequest, false},
		{"malformed", `{"powerWatt":"x"}`, nil, http.StatusBadRequest, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms := &mockSettings{saveErr: tc.saveErr}
			r := newTestRouter(&service.Service{Settings: ms})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d; want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var resp SettingsResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Saved != tc.wantSaved {
				t.Fatalf("saved = %v; want %v", resp.Saved, tc.wantSaved)
			}
		})
	}
}
