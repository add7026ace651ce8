package handler

import (
	"runtime"
	"time"

	"github.com/celengan/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and system info endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health reports liveness. Database connectivity is reported but does not
// flip the status so that load balancers keep routing during brief outages.
func (h *SystemHandler) Health(c *gin.Context) {
	database := "up"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			database = "down"
		}
	}

	h.Success(c, HealthResponse{
		Status:    "ok",
		Database:  database,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
