package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status   string            `json:"status"`
	Time     string            `json:"time"`
	Version  string            `json:"version,omitempty"`
	Backend  string            `json:"backend,omitempty"`
	Checks   map[string]string `json:"checks"`
	Acquired int64             `json:"connections_acquired"`
	Released int64             `json:"connections_released"`
}

type SchemaResponse struct {
	Status  string            `json:"status"`
	Backend string            `json:"backend"`
	Created []string          `json:"created"`
	Failed  map[string]string `json:"failed,omitempty"`
}

type HealthController struct {
	db      Store
	version string
}

func NewHealthController(db Store, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"
	health := HealthResponse{
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
	}

	// Round-trip a trivial query through the adapter
	if h.db != nil {
		health.Backend = string(h.db.Backend().Kind())
		if row, err := h.db.FetchOne("SELECT 1 AS ok"); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if row == nil {
			checks["database"] = "error: no row returned"
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
		stats := h.db.Stats()
		health.Acquired = stats.Acquired
		health.Released = stats.Released
	} else {
		checks["database"] = "not configured"
	}

	health.Status = status
	health.Checks = checks

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// Schema re-runs the schema bootstrap and reports the outcome per table.
func (h *HealthController) Schema(c *gin.Context) {
	if h.db == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database not configured"})
		return
	}

	report, err := h.db.InitSchema()
	if report == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}

	resp := SchemaResponse{
		Status:  "healthy",
		Backend: string(report.Backend),
		Created: report.Created(),
	}
	if failed := report.Failed(); len(failed) > 0 {
		resp.Status = "degraded"
		resp.Failed = make(map[string]string, len(failed))
		for _, f := range failed {
			resp.Failed[f.Table] = f.Err.Error()
		}
	}

	statusCode := http.StatusOK
	if err != nil {
		resp.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}
	c.IndentedJSON(statusCode, resp)
}
