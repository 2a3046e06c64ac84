package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/khelsetu/arena/external/geodata"
	"github.com/khelsetu/arena/internal/infrastructure/repository/memory"
	idgen "github.com/khelsetu/arena/internal/platform/id"
	"github.com/khelsetu/arena/internal/platform/logging"
	"github.com/khelsetu/arena/internal/usecase"
)

type stubGeoService struct {
	countries []geodata.Country
	states    []geodata.State
	err       error
}

func (s *stubGeoService) ListCountries(_ context.Context) ([]geodata.Country, error) {
	return s.countries, s.err
}

func (s *stubGeoService) ListStates(_ context.Context, _ string) ([]geodata.State, error) {
	return s.states, s.err
}

func newSeededRouter(t *testing.T, geo GeoService) http.Handler {
	t.Helper()

	resultRepo := memory.NewResultRepository(memory.SeedResults())
	accountRepo := memory.NewAccountRepository(memory.SeedAccounts())
	profileRepo := memory.NewProfileRepository(memory.SeedProfiles())

	handler := NewHandler(
		usecase.NewLeaderboardService(resultRepo, accountRepo, profileRepo),
		usecase.NewSummaryService(resultRepo),
		usecase.NewAthleteService(resultRepo, accountRepo, profileRepo),
		usecase.NewResultService(resultRepo, accountRepo, idgen.NewRandomGenerator()),
		geo,
		usecase.ViewDistrict,
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), []string{"*"})
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func TestHandler_Healthz(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestHandler_GetLeaderboard_DefaultDistrictView(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := decodeData(t, rec.Body.Bytes())
	if data["view"] != "district" {
		t.Fatalf("expected district view, got %v", data["view"])
	}

	entries, ok := data["entries"].([]any)
	if !ok || len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %v", data["entries"])
	}

	first, _ := entries[0].(map[string]any)
	if first["athleteId"] != "ath-meera" {
		t.Fatalf("expected ath-meera first, got %v", first["athleteId"])
	}
	if first["rank"] != float64(1) || first["score"] != float64(91) {
		t.Fatalf("unexpected first entry: %v", first)
	}
	if first["district"] != "Unknown" {
		t.Fatalf("expected Unknown district placeholder, got %v", first["district"])
	}

	second, _ := entries[1].(map[string]any)
	if second["athleteId"] != "ath-aarav" || second["name"] != "Aarav S." {
		t.Fatalf("expected profile name to win for ath-aarav, got %v", second)
	}
}

func TestHandler_GetLeaderboard_UnrecognizedViewFallsBackToGlobal(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard?view=planet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	data := decodeData(t, rec.Body.Bytes())
	if data["view"] != "global" {
		t.Fatalf("expected global fallback, got %v", data["view"])
	}
}

func TestHandler_GetAthleteSummary(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/athletes/ath-aarav/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := decodeData(t, rec.Body.Bytes())
	if data["overallScore"] != float64(82) {
		t.Fatalf("expected overall score 82, got %v", data["overallScore"])
	}
	if data["badge"] != "Gold" {
		t.Fatalf("expected Gold badge, got %v", data["badge"])
	}
	if data["bestScore"] != float64(88) {
		t.Fatalf("expected best score 88, got %v", data["bestScore"])
	}

	series, _ := data["trendSeries"].([]any)
	if len(series) != 3 {
		t.Fatalf("expected 3 trend points, got %d", len(series))
	}
}

func TestHandler_GetProfilePage_AccountOnlyName(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/ath-kabir", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := decodeData(t, rec.Body.Bytes())
	if data["name"] != "Kabir Singh" {
		t.Fatalf("expected first/last fallback name, got %v", data["name"])
	}
	if data["imageUrl"] != "/defaultImg.png" {
		t.Fatalf("expected default avatar, got %v", data["imageUrl"])
	}
}

func TestHandler_GetProfilePage_NotFound(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/ath-ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_SubmitResult(t *testing.T) {
	router := newSeededRouter(t, nil)

	payload := `{"athleteId":"ath-diya","exercise":"shuttle-run","score":79.5,"splitTimes":[3.1,3.2]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec.Body.Bytes())
	if data["athleteId"] != "ath-diya" {
		t.Fatalf("unexpected athlete id: %v", data["athleteId"])
	}
	if data["exercise"] != "shuttle-run" {
		t.Fatalf("unexpected exercise: %v", data["exercise"])
	}
	if data["id"] == "" {
		t.Fatalf("expected generated record id")
	}
}

func TestHandler_SubmitResult_UnknownAthlete(t *testing.T) {
	router := newSeededRouter(t, nil)

	payload := `{"athleteId":"ath-ghost","exercise":"situps"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_SubmitResult_InvalidJSON(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_ListCountries(t *testing.T) {
	geo := &stubGeoService{countries: []geodata.Country{{ID: 101, Name: "India", ISO2: "IN"}}}
	router := newSeededRouter(t, geo)

	req := httptest.NewRequest(http.MethodGet, "/v1/geo/countries", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	items, ok := envelope["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one country, got %v", envelope["data"])
	}
}

func TestHandler_ListCountries_DisabledCatalog(t *testing.T) {
	router := newSeededRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/geo/countries", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
