package dto

// Health probe statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each component to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewReadinessResponse summarizes health check results. A nil error marks a
// healthy component.
func NewReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
