package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/booking-api/internal/config"
	"github.com/barberia-app/booking-api/internal/maintenance"
)

// MaintenanceHandler exposes the cron surface: the scheduled trigger used
// by an external cron caller, a manual trigger for admins and a status
// probe.
type MaintenanceHandler struct {
	reconciler *maintenance.Reconciler
	config     *config.Config
}

func NewMaintenanceHandler(
	reconciler *maintenance.Reconciler,
	cfg *config.Config,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		reconciler: reconciler,
		config:     cfg,
	}
}

// DailyMaintenance is called by the external scheduler; it authenticates
// with the shared cron secret instead of a user token.
func (h *MaintenanceHandler) DailyMaintenance(c *gin.Context) {
	if h.config.CronSecret == "" ||
		subtle.ConstantTimeCompare(
			[]byte(c.GetHeader("X-Cron-Secret")),
			[]byte(h.config.CronSecret),
		) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_cron_secret"})
		return
	}

	h.run(c, "cron")
}

func (h *MaintenanceHandler) ManualMaintenance(c *gin.Context) {
	h.run(c, "manual")
}

func (h *MaintenanceHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"window_days": h.config.MaintenanceWindowDays,
		"interval":    h.config.MaintenanceInterval.String(),
	})
}

func (h *MaintenanceHandler) run(c *gin.Context, trigger string) {
	report, err := h.reconciler.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "maintenance_failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"executed_by": trigger,
		"report":      report,
	})
}
