package controller

import (
	"net/http"
	"strconv"

	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// HotnessRefreshAllResponse reports a batch refresh run.
type HotnessRefreshAllResponse struct {
	ProcessedCount int64   `json:"processedCount"`
	ErrorCount     int64   `json:"errorCount"`
	TotalCount     int64   `json:"totalCount"`
	DurationMS     int64   `json:"durationMs"`
	Success        bool    `json:"success"`
	Error          *string `json:"error,omitempty"`
}

// HotnessRefreshAll handles POST /v1/admin/hotness/refresh.
type HotnessRefreshAll struct {
	RefreshCmd command.Command[command.RefreshAllHotnessRequest, command.RefreshAllHotnessResult]
}

func (c HotnessRefreshAll) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	req := command.RefreshAllHotnessRequest{
		ForceUpdate: q.Get("force") == boolTrue,
	}
	if q.Has("batch_size") {
		batchSize, err := strconv.Atoi(q.Get("batch_size"))
		if err != nil {
			logger.WarnContext(ctx, "unable to parse batch size from query", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid_batch_size")
			return
		}
		req.BatchSize = batchSize
	}

	result, err := c.RefreshCmd.Execute(ctx, req)

	resp := HotnessRefreshAllResponse{
		ProcessedCount: result.ProcessedCount,
		ErrorCount:     result.ErrorCount,
		TotalCount:     result.TotalCount,
		DurationMS:     result.Duration.Milliseconds(),
		Success:        result.Success,
	}
	if err != nil {
		logger.ErrorContext(ctx, "hotness refresh stopped early", "error", err)
		msg := err.Error()
		resp.Error = &msg
		resp.Success = false
		writeJSON(ctx, w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
