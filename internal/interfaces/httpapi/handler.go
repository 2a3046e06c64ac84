package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/khelsetu/arena/external/geodata"
	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
	"github.com/khelsetu/arena/internal/platform/logging"
	"github.com/khelsetu/arena/internal/usecase"
)

// GeoService lists reference countries and states for location pickers.
type GeoService interface {
	ListCountries(ctx context.Context) ([]geodata.Country, error)
	ListStates(ctx context.Context, countryCode string) ([]geodata.State, error)
}

type Handler struct {
	leaderboardService *usecase.LeaderboardService
	summaryService     *usecase.SummaryService
	athleteService     *usecase.AthleteService
	resultService      *usecase.ResultService
	geoService         GeoService
	defaultView        usecase.View
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	leaderboardService *usecase.LeaderboardService,
	summaryService *usecase.SummaryService,
	athleteService *usecase.AthleteService,
	resultService *usecase.ResultService,
	geoService GeoService,
	defaultView usecase.View,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leaderboardService: leaderboardService,
		summaryService:     summaryService,
		athleteService:     athleteService,
		resultService:      resultService,
		geoService:         geoService,
		defaultView:        defaultView,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	view := usecase.ParseView(r.URL.Query().Get("view"), h.defaultView)
	entries, err := h.leaderboardService.Build(ctx, view)
	if err != nil {
		h.logger.ErrorContext(ctx, "build leaderboard failed", "view", string(view), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardDTO{
		View:    string(view),
		Entries: items,
	})
}

func (h *Handler) GetAthleteSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthleteSummary")
	defer span.End()

	athleteID := strings.TrimSpace(r.PathValue("athleteID"))
	summary, err := h.summaryService.Summarize(ctx, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "summarize athlete failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetAthletePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthletePage")
	defer span.End()

	athleteID := strings.TrimSpace(r.PathValue("athleteID"))
	page, err := h.athleteService.GetAthletePage(ctx, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "get athlete page failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(page.Results))
	for _, record := range page.Results {
		items = append(items, resultToDTO(record))
	}

	dto := athletePageDTO{Results: items}
	if page.HasProfile {
		profileDTO := profileToDTO(page.Profile)
		dto.Profile = &profileDTO
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfilePage")
	defer span.End()

	athleteID := strings.TrimSpace(r.PathValue("athleteID"))
	page, err := h.athleteService.GetProfilePage(ctx, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile page failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	var acct *account.Record
	if page.HasAccount {
		acct = &page.Account
	}
	var prof *profile.Record
	if page.HasProfile {
		prof = &page.Profile
	}
	identity := usecase.ResolveIdentity(acct, prof)

	items := make([]resultDTO, 0, len(page.Results))
	for _, record := range page.Results {
		items = append(items, resultToDTO(record))
	}

	dto := profilePageDTO{
		AthleteID: athleteID,
		Name:      identity.Name,
		State:     identity.State,
		District:  identity.District,
		ImageURL:  identity.ImageURL,
		Results:   items,
	}
	if page.HasAccount {
		accountDTO := accountToDTO(page.Account)
		dto.Account = &accountDTO
	}
	if page.HasProfile {
		profileDTO := profileToDTO(page.Profile)
		dto.Profile = &profileDTO
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitResult")
	defer span.End()

	var req submitResultRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.resultService.Submit(ctx, usecase.SubmitInput{
		AthleteID:            req.AthleteID,
		Exercise:             req.Exercise,
		Score:                req.Score,
		Feedback:             req.Feedback,
		Corrections:          req.Corrections,
		Reps:                 req.Reps,
		JumpHeightCm:         req.JumpHeightCm,
		JumpDisplacementNorm: req.JumpDisplacementNorm,
		Turns:                req.Turns,
		SplitTimes:           req.SplitTimes,
		Cadence:              req.Cadence,
		TrunkAngleAvg:        req.TrunkAngleAvg,
		TrunkAngleMin:        req.TrunkAngleMin,
		TrunkAngleMax:        req.TrunkAngleMax,
		DistanceKm:           req.DistanceKm,
		DurationSec:          req.DurationSec,
		PaceMinPerKm:         req.PaceMinPerKm,
		VideoURL:             req.VideoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit result failed", "athlete_id", req.AthleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, resultToDTO(record))
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries")
	defer span.End()

	if h.geoService == nil {
		writeError(ctx, w, fmt.Errorf("%w: geodata catalog is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	countries, err := h.geoService.ListCountries(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countries)
}

func (h *Handler) ListStatesByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatesByCountry")
	defer span.End()

	if h.geoService == nil {
		writeError(ctx, w, fmt.Errorf("%w: geodata catalog is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	code := strings.TrimSpace(r.PathValue("countryCode"))
	states, err := h.geoService.ListStates(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "list states failed", "country_code", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, states)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type submitResultRequest struct {
	AthleteID            string    `json:"athleteId" validate:"required"`
	Exercise             string    `json:"exercise"`
	Score                *float64  `json:"score"`
	Feedback             []string  `json:"feedback" validate:"max=50,dive,max=500"`
	Corrections          []string  `json:"corrections" validate:"max=50,dive,max=500"`
	Reps                 *int      `json:"reps"`
	JumpHeightCm         *float64  `json:"jumpHeightCm"`
	JumpDisplacementNorm *float64  `json:"jumpDisplacementNorm"`
	Turns                *int      `json:"turns"`
	SplitTimes           []float64 `json:"splitTimes" validate:"max=100"`
	Cadence              *float64  `json:"cadence"`
	TrunkAngleAvg        *float64  `json:"trunkAngleAvg"`
	TrunkAngleMin        *float64  `json:"trunkAngleMin"`
	TrunkAngleMax        *float64  `json:"trunkAngleMax"`
	DistanceKm           *float64  `json:"distanceKm"`
	DurationSec          *float64  `json:"durationSec"`
	PaceMinPerKm         *float64  `json:"paceMinPerKm"`
	VideoURL             string    `json:"videoUrl" validate:"omitempty,max=2048"`
}

type leaderboardDTO struct {
	View    string                `json:"view"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	AthleteID  string `json:"athleteId"`
	Name       string `json:"name"`
	State      string `json:"state"`
	District   string `json:"district"`
	ImageURL   string `json:"imageUrl"`
	Score      int    `json:"score"`
	TestsCount int    `json:"testsCount"`
	Rank       int    `json:"rank"`
}

type summaryDTO struct {
	OverallScore int             `json:"overallScore"`
	Badge        string          `json:"badge"`
	BestScore    float64         `json:"bestScore"`
	LastTestAt   string          `json:"lastTestAt,omitempty"`
	TrendSeries  []trendPointDTO `json:"trendSeries"`
	YAxisDomain  [2]float64      `json:"yAxisDomain"`
	Distribution map[string]int  `json:"distribution"`
}

type trendPointDTO struct {
	Timestamp string  `json:"timestamp"`
	Score     float64 `json:"score"`
}

type resultDTO struct {
	ID                   string    `json:"id"`
	AthleteID            string    `json:"athleteId"`
	Exercise             string    `json:"exercise"`
	Score                float64   `json:"score"`
	Feedback             []string  `json:"feedback,omitempty"`
	Corrections          []string  `json:"corrections,omitempty"`
	Reps                 *int      `json:"reps,omitempty"`
	JumpHeightCm         *float64  `json:"jumpHeightCm,omitempty"`
	JumpDisplacementNorm *float64  `json:"jumpDisplacementNorm,omitempty"`
	Turns                *int      `json:"turns,omitempty"`
	SplitTimes           []float64 `json:"splitTimes,omitempty"`
	Cadence              *float64  `json:"cadence,omitempty"`
	TrunkAngleAvg        *float64  `json:"trunkAngleAvg,omitempty"`
	TrunkAngleMin        *float64  `json:"trunkAngleMin,omitempty"`
	TrunkAngleMax        *float64  `json:"trunkAngleMax,omitempty"`
	DistanceKm           *float64  `json:"distanceKm,omitempty"`
	DurationSec          *float64  `json:"durationSec,omitempty"`
	PaceMinPerKm         *float64  `json:"paceMinPerKm,omitempty"`
	VideoURL             string    `json:"videoUrl,omitempty"`
	CreatedAt            string    `json:"createdAt"`
}

type accountDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	State     string `json:"state,omitempty"`
	District  string `json:"district,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type profileDTO struct {
	UserID       string `json:"userId"`
	Name         string `json:"name,omitempty"`
	Sport        string `json:"sport,omitempty"`
	State        string `json:"state,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

type athletePageDTO struct {
	Results []resultDTO `json:"results"`
	Profile *profileDTO `json:"profile,omitempty"`
}

type profilePageDTO struct {
	AthleteID string      `json:"athleteId"`
	Name      string      `json:"name"`
	State     string      `json:"state"`
	District  string      `json:"district"`
	ImageURL  string      `json:"imageUrl"`
	Account   *accountDTO `json:"account,omitempty"`
	Profile   *profileDTO `json:"profile,omitempty"`
	Results   []resultDTO `json:"results"`
}

func leaderboardEntryToDTO(entry usecase.LeaderboardEntry) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		AthleteID:  entry.AthleteID,
		Name:       entry.Name,
		State:      entry.State,
		District:   entry.District,
		ImageURL:   entry.ImageURL,
		Score:      entry.Score,
		TestsCount: entry.TestsCount,
		Rank:       entry.Rank,
	}
}

func summaryToDTO(summary usecase.AthleteSummary) summaryDTO {
	points := make([]trendPointDTO, 0, len(summary.TrendSeries))
	for _, point := range summary.TrendSeries {
		points = append(points, trendPointDTO{
			Timestamp: point.Timestamp.UTC().Format(time.RFC3339),
			Score:     point.Score,
		})
	}

	lastTestAt := ""
	if !summary.LastTestAt.IsZero() {
		lastTestAt = summary.LastTestAt.UTC().Format(time.RFC3339)
	}

	return summaryDTO{
		OverallScore: summary.OverallScore,
		Badge:        string(summary.Badge),
		BestScore:    summary.BestScore,
		LastTestAt:   lastTestAt,
		TrendSeries:  points,
		YAxisDomain:  summary.YAxisDomain,
		Distribution: summary.Distribution,
	}
}

func resultToDTO(record result.Record) resultDTO {
	return resultDTO{
		ID:                   record.ID,
		AthleteID:            record.AthleteID,
		Exercise:             record.Exercise,
		Score:                record.Score,
		Feedback:             record.Feedback,
		Corrections:          record.Corrections,
		Reps:                 record.Reps,
		JumpHeightCm:         record.JumpHeightCm,
		JumpDisplacementNorm: record.JumpDisplacementNorm,
		Turns:                record.Turns,
		SplitTimes:           record.SplitTimes,
		Cadence:              record.Cadence,
		TrunkAngleAvg:        record.TrunkAngleAvg,
		TrunkAngleMin:        record.TrunkAngleMin,
		TrunkAngleMax:        record.TrunkAngleMax,
		DistanceKm:           record.DistanceKm,
		DurationSec:          record.DurationSec,
		PaceMinPerKm:         record.PaceMinPerKm,
		VideoURL:             record.VideoURL,
		CreatedAt:            record.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func accountToDTO(record account.Record) accountDTO {
	return accountDTO{
		ID:        record.ID,
		Name:      record.Name,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
		Username:  record.Username,
		State:     record.State,
		District:  record.District,
		ImageURL:  record.ImageURL,
		CreatedAt: record.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func profileToDTO(record profile.Record) profileDTO {
	return profileDTO{
		UserID:       record.UserID,
		Name:         record.Name,
		Sport:        record.Sport,
		State:        record.State,
		ProfileImage: record.ProfileImage,
		UpdatedAt:    record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
