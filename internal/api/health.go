package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/respond"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthHandler struct {
	probes []Probe
	logger *slog.Logger
}

type probeResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready handlers. With the memory
// driver there are no probes and /ready always succeeds.
func NewHealthHandlers(logger *slog.Logger, probes ...Probe) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{probes: probes, logger: logger}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]probeResult, 0, len(handler.probes))
	isSystemReady := true

	for _, probe := range handler.probes {
		result := probeResult{Name: probe.Name, IsOK: true}
		if err := probe.Check(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.ErrorContext(request.Context(), "readiness_check_failed",
				slog.String("dependency", probe.Name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	status, httpStatus := "ready", http.StatusOK
	if !isSystemReady {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}
