package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ga-tools/ga-lens/pkg/adapters"
	"github.com/ga-tools/ga-lens/pkg/models/api"
	"github.com/ga-tools/ga-lens/pkg/models/domain"
	dashboardsvc "github.com/ga-tools/ga-lens/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

// Service is the dashboard controller surface the handler depends on.
type Service interface {
	Properties() []domain.Property
	CompareTime(ctx context.Context, req dashboardsvc.TimeRequest) (*domain.TimeComparison, error)
	CompareProperties(ctx context.Context, req dashboardsvc.PropertyRequest) (*domain.PropertyComparison, error)
	RebuildLast() (*dashboardsvc.Result, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	props := h.svc.Properties()
	response := make([]api.Property, 0, len(props))
	for _, p := range props {
		response = append(response, api.Property{ID: p.ID, Name: p.Name})
	}
	writeJSON(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) RunComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	custom, err := parseCustomDates(req)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	switch req.Mode {
	case string(dashboardsvc.ModeProperty):
		result, err := h.svc.CompareProperties(ctx, dashboardsvc.PropertyRequest{
			PropertyIDs: req.PropertyIDs,
			Preset:      domain.RangePreset(req.Preset),
			Custom:      custom,
		})
		if err != nil {
			writeComparisonError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, adapters.MapPropertyComparisonDomainToApi(result))
	default:
		// Time comparison is the default mode, as in the original UI.
		result, err := h.svc.CompareTime(ctx, dashboardsvc.TimeRequest{
			PropertyID: req.PropertyID,
			Preset:     domain.RangePreset(req.Preset),
			Custom:     custom,
		})
		if err != nil {
			writeComparisonError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, adapters.MapTimeComparisonDomainToApi(result))
	}
}

func (h *Handler) LastComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.svc.RebuildLast()
	if err != nil {
		writeComparisonError(ctx, w, err)
		return
	}

	switch result.Mode {
	case dashboardsvc.ModeProperty:
		writeJSON(ctx, w, http.StatusOK, adapters.MapPropertyComparisonDomainToApi(result.Property))
	default:
		writeJSON(ctx, w, http.StatusOK, adapters.MapTimeComparisonDomainToApi(result.Time))
	}
}

// parseCustomDates lifts the optional date strings into domain form. Absent
// fields stay zero; presence checks belong to the period resolver.
func parseCustomDates(req api.ComparisonRequest) (*domain.CustomDates, error) {
	if req.PrimaryStart == "" && req.PrimaryEnd == "" &&
		req.ComparisonStart == "" && req.ComparisonEnd == "" {
		return nil, nil
	}

	custom := &domain.CustomDates{}
	fields := []struct {
		value string
		dst   *time.Time
	}{
		{req.PrimaryStart, &custom.PrimaryStart},
		{req.PrimaryEnd, &custom.PrimaryEnd},
		{req.ComparisonStart, &custom.ComparisonStart},
		{req.ComparisonEnd, &custom.ComparisonEnd},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", f.value)
		if err != nil {
			return nil, errors.New("dates must be formatted as YYYY-MM-DD")
		}
		*f.dst = t
	}
	return custom, nil
}

func writeComparisonError(ctx context.Context, w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeError(ctx, w, http.StatusBadRequest, validation.Reason)
	case errors.Is(err, dashboardsvc.ErrFetchInProgress):
		writeError(ctx, w, http.StatusConflict, err.Error())
	default:
		writeError(ctx, w, http.StatusBadGateway, err.Error())
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, api.ErrorResponse{Error: msg})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
	}
}
