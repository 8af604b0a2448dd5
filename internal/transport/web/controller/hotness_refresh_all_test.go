package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/idea-feed/internal/command"
	cmdmocks "github.com/jbeshir/idea-feed/internal/command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHotnessRefreshAll_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantReq    *command.RefreshAllHotnessRequest
		result     command.RefreshAllHotnessResult
		execErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:    "defaults",
			wantReq: &command.RefreshAllHotnessRequest{},
			result: command.RefreshAllHotnessResult{
				ProcessedCount: 250,
				TotalCount:     250,
				Duration:       1200 * time.Millisecond,
				Success:        true,
			},
			wantStatus: http.StatusOK,
			wantBody: `{"processedCount":250,"errorCount":0,"totalCount":250,` +
				`"durationMs":1200,"success":true}`,
		},
		{
			name:       "forced_with_batch_size",
			query:      "?force=true&batch_size=50",
			wantReq:    &command.RefreshAllHotnessRequest{BatchSize: 50, ForceUpdate: true},
			result:     command.RefreshAllHotnessResult{ProcessedCount: 3, ErrorCount: 2, TotalCount: 3},
			wantStatus: http.StatusOK,
			wantBody: `{"processedCount":3,"errorCount":2,"totalCount":3,` +
				`"durationMs":0,"success":false}`,
		},
		{
			name:       "invalid_batch_size",
			query:      "?batch_size=lots",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid_batch_size"}`,
		},
		{
			name:       "stopped_early",
			wantReq:    &command.RefreshAllHotnessRequest{},
			result:     command.RefreshAllHotnessResult{ProcessedCount: 100, TotalCount: 300, Success: true},
			execErr:    errors.New("listing candidates: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody: `{"processedCount":100,"errorCount":0,"totalCount":300,` +
				`"durationMs":0,"success":false,"error":"listing candidates: connection reset"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refreshCmd := cmdmocks.NewMockCommand[command.RefreshAllHotnessRequest, command.RefreshAllHotnessResult](t)
			if tc.wantReq != nil {
				refreshCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.result, tc.execErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/hotness/refresh"+tc.query, nil)
			req = testContextWithUserID(1)(req)
			rec := httptest.NewRecorder()

			HotnessRefreshAll{RefreshCmd: refreshCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
