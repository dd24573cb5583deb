package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ga-tools/ga-lens/pkg/models/api"
	"github.com/ga-tools/ga-lens/pkg/models/domain"
	dashboardsvc "github.com/ga-tools/ga-lens/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDashboard struct {
	mock.Mock
}

func (m *mockDashboard) Properties() []domain.Property {
	args := m.Called()
	return args.Get(0).([]domain.Property)
}

func (m *mockDashboard) CompareTime(
	ctx context.Context,
	req dashboardsvc.TimeRequest,
) (*domain.TimeComparison, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeComparison), args.Error(1)
}

func (m *mockDashboard) CompareProperties(
	ctx context.Context,
	req dashboardsvc.PropertyRequest,
) (*domain.PropertyComparison, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyComparison), args.Error(1)
}

func (m *mockDashboard) RebuildLast() (*dashboardsvc.Result, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboardsvc.Result), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockDashboard) *WebAPI {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewWebAPI(logger, Config{
		Addr: ":0",
		Dependencies: Dependencies{
			Dashboard: svc,
		},
	})
}

func TestListProperties(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Properties").Return([]domain.Property{
		{ID: "123", Name: "Main Site"},
	})

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var props []api.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&props))
	require.Len(t, props, 1)
	assert.Equal(t, "123", props[0].ID)
	assert.Equal(t, "Main Site", props[0].Name)
}

func TestRunComparison_TimeMode(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("CompareTime", mock.Anything, dashboardsvc.TimeRequest{
		PropertyID: "123",
		Preset:     domain.PresetLast7Days,
	}).Return(&domain.TimeComparison{
		PropertyID: "123",
		Primary:    domain.PeriodTotals{Users: 84},
		Comparison: domain.PeriodTotals{Users: 70},
		Deltas: []domain.MetricDelta{
			{Metric: "users", Current: 84, Previous: 70, ChangePercent: 20, Direction: domain.ChangeUp},
		},
	}, nil)

	webAPI := newTestAPI(t, svc)

	body := `{"mode":"time","property_id":"123","preset":"last7days"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", strings.NewReader(body))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TimeComparisonResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 84.0, resp.Primary.Users)
	assert.Equal(t, 70.0, resp.Comparison.Users)
	require.Len(t, resp.Deltas, 1)
	assert.Equal(t, "up", resp.Deltas[0].Direction)

	svc.AssertExpectations(t)
}

func TestRunComparison_PropertyMode(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("CompareProperties", mock.Anything, mock.AnythingOfType("dashboard.PropertyRequest")).
		Return(&domain.PropertyComparison{
			Range: domain.DateRange{Role: domain.RolePrimary},
			Properties: []domain.PropertyTotals{
				{PropertyID: "123", PropertyName: "Main Site"},
				{PropertyID: "456", PropertyName: "Blog"},
			},
		}, nil)

	webAPI := newTestAPI(t, svc)

	body := `{"mode":"property","property_ids":["123","456"],"preset":"last30days"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", strings.NewReader(body))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PropertyComparisonResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Properties, 2)
	assert.Equal(t, "Blog", resp.Properties[1].PropertyName)
}

func TestRunComparison_ValidationError(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("CompareTime", mock.Anything, mock.AnythingOfType("dashboard.TimeRequest")).
		Return(nil, domain.NewValidationError("no property selected"))

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison",
		strings.NewReader(`{"mode":"time","preset":"last7days"}`))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "no property selected", resp.Error)
}

func TestRunComparison_FetchInProgress(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("CompareTime", mock.Anything, mock.AnythingOfType("dashboard.TimeRequest")).
		Return(nil, dashboardsvc.ErrFetchInProgress)

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison",
		strings.NewReader(`{"mode":"time","property_id":"123","preset":"last7days"}`))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunComparison_RemoteFailure(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("CompareTime", mock.Anything, mock.AnythingOfType("dashboard.TimeRequest")).
		Return(nil, assert.AnError)

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison",
		strings.NewReader(`{"mode":"time","property_id":"123","preset":"last7days"}`))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRunComparison_InvalidBody(t *testing.T) {
	svc := new(mockDashboard)
	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CompareTime")
}

func TestRunComparison_InvalidCustomDate(t *testing.T) {
	svc := new(mockDashboard)
	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison",
		strings.NewReader(`{"mode":"time","property_id":"123","preset":"custom","primary_start":"03/01/2025"}`))
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CompareTime")
}

func TestLastComparison(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("RebuildLast").Return(&dashboardsvc.Result{
		Mode: dashboardsvc.ModeTime,
		Time: &domain.TimeComparison{PropertyID: "123"},
	}, nil)

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comparison/last", nil)
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TimeComparisonResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "123", resp.PropertyID)
}

func TestLastComparison_NothingFetchedYet(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("RebuildLast").Return(nil, domain.NewValidationError("no data has been fetched yet"))

	webAPI := newTestAPI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comparison/last", nil)
	rec := httptest.NewRecorder()
	webAPI.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
