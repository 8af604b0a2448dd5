package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

// ErrorResponse is the JSON body of client-visible failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code string) {
	writeJSON(ctx, w, status, ErrorResponse{Error: code})
}

func parseBoolVar(vars map[string]string, name string) (bool, error) {
	switch vars[name] {
	case boolTrue:
		return true, nil
	case boolFalse:
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value [%s]", name, vars[name])
	}
}

func parseIDVar(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s [%s]", name, raw)
	}
	return id, nil
}

// parseLimit reads a page size from the query. Integers too large or too small to
// represent saturate, and anything below 1 becomes 1; callers clamp the upper bound.
func parseLimit(raw string) (int, error) {
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	// On ErrRange, ParseInt returns the bound the value overflowed towards.
	return int(max(limit, 1)), nil
}
