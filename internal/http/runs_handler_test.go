package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/mocks"
	"github.com/guttosm/slotting-service/internal/service"
)

func sampleRun() model.OptimizationRun {
	return model.OptimizationRun{
		RunID:        "run-1",
		LocationName: "Pallet Rack 1",
		PalletName:   "Standard",
		SKUs:         []model.RunSKU{{Name: "Cube", Status: model.SKUStatusPacked, Quantity: 60, Layers: 5}},
		CreatedAt:    time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC),
	}
}

func TestListRuns(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		opts           model.RunQueryOptions
		runs           []model.OptimizationRun
		expectedStatus int
		expectedLimit  int
	}{
		{
			name:           "defaults",
			opts:           model.RunQueryOptions{},
			runs:           []model.OptimizationRun{sampleRun()},
			expectedStatus: http.StatusOK,
			expectedLimit:  service.RunsPageLimit(0),
		},
		{
			name:           "filters and paging",
			query:          "?location=Pallet+Rack+1&user_id=u1&limit=500&skip=20",
			opts:           model.RunQueryOptions{LocationName: "Pallet Rack 1", UserID: "u1", Limit: 500, Skip: 20},
			expectedStatus: http.StatusOK,
			expectedLimit:  service.RunsPageLimit(500),
		},
		{
			name:           "negative skip",
			query:          "?skip=-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := &mocks.MockRunsService{}
			defer runs.AssertExpectations(t)
			router, _, _ := setupRouterWithMocks(t, WithRunsService(runs))
			if tt.expectedStatus == http.StatusOK {
				runs.On("List", mock.Anything, tt.opts).Return(tt.runs, int64(len(tt.runs)), nil).Once()
			}

			w := perform(router, http.MethodGet, APIPrefix+"/runs"+tt.query, nil, nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			page := decodeData[struct {
				Items []model.OptimizationRun `json:"items"`
				Total int64                   `json:"total"`
				Limit int                     `json:"limit"`
			}](t, w)
			assert.Equal(t, tt.expectedLimit, page.Limit)
			assert.Equal(t, int64(len(tt.runs)), page.Total)
			assert.NotNil(t, page.Items)
			assert.Len(t, page.Items, len(tt.runs))
		})
	}
}

func TestGetRun(t *testing.T) {
	run := sampleRun()

	tests := []struct {
		name           string
		run            *model.OptimizationRun
		err            error
		expectedStatus int
	}{
		{"found", &run, nil, http.StatusOK},
		{"not found", nil, service.ErrRunNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := &mocks.MockRunsService{}
			defer runs.AssertExpectations(t)
			router, _, _ := setupRouterWithMocks(t, WithRunsService(runs))
			runs.On("Get", mock.Anything, "run-1").Return(tt.run, tt.err).Once()

			w := perform(router, http.MethodGet, APIPrefix+"/runs/run-1", nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.run != nil {
				got := decodeData[model.OptimizationRun](t, w)
				assert.Equal(t, "run-1", got.RunID)
				assert.Equal(t, 60, got.SKUs[0].Quantity)
			}
		})
	}
}

func TestRuns_HistoryDisabled(t *testing.T) {
	router, _, _ := setupRouterWithMocks(t)

	for _, path := range []string{"/runs", "/runs/run-1"} {
		w := perform(router, http.MethodGet, APIPrefix+path, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.NotEmpty(t, decodeError(t, w).Message)
	}
}
