package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/booking-api/internal/config"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/httpresp"
	"github.com/barberia-app/booking-api/internal/middleware"
	ucAvailability "github.com/barberia-app/booking-api/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	setUC   *ucAvailability.SetAvailability
	queryUC *ucAvailability.QueryAvailability
	slotsUC *ucAvailability.GetSlots
	config  *config.Config
}

func NewAvailabilityHandler(
	setUC *ucAvailability.SetAvailability,
	queryUC *ucAvailability.QueryAvailability,
	slotsUC *ucAvailability.GetSlots,
	cfg *config.Config,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		setUC:   setUC,
		queryUC: queryUC,
		slotsUC: slotsUC,
		config:  cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetAvailabilityRequest struct {
	Date      string   `json:"date" binding:"required"`
	Action    string   `json:"action" binding:"required"`
	TimeSlots []string `json:"time_slots" binding:"required"`
}

// ======================================================
// BARBER: configure availability
// ======================================================

func (h *AvailabilityHandler) Set(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		httperr.From(c, err, "invalid_request")
		return
	}

	date, err := parseDate(h.config.Timezone, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	rec, err := h.setUC.Execute(c.Request.Context(), ucAvailability.SetAvailabilityInput{
		BarberID: barberID,
		Date:     date,
		Action:   action,
		Slots:    req.TimeSlots,
	})
	if err != nil {
		httperr.From(c, err, "failed_to_set_availability")
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// BARBER: stored override records for a range
// ======================================================

func (h *AvailabilityHandler) Query(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	start, end, ok := h.parseRange(c)
	if !ok {
		return
	}

	recs, err := h.queryUC.Execute(c.Request.Context(), barberID, start, end)
	if err != nil {
		httperr.From(c, err, "failed_to_get_availability")
		return
	}

	httpresp.List(c, recs)
}

// ======================================================
// CLIENT: resolved slots
// ======================================================

func (h *AvailabilityHandler) SlotsForDate(c *gin.Context) {
	barberID, ok := h.parseBarberID(c)
	if !ok {
		return
	}

	date, err := parseDate(h.config.Timezone, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.slotsUC.ForDate(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.From(c, err, "failed_to_get_slots")
		return
	}

	httpresp.OK(c, slots)
}

func (h *AvailabilityHandler) Weekly(c *gin.Context) {
	barberID, ok := h.parseBarberID(c)
	if !ok {
		return
	}

	start, end, ok := h.parseRange(c)
	if !ok {
		return
	}

	weekly, err := h.slotsUC.ForRange(c.Request.Context(), barberID, start, end)
	if err != nil {
		httperr.From(c, err, "failed_to_get_weekly_availability")
		return
	}

	httpresp.OK(c, weekly)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AvailabilityHandler) parseBarberID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id es requerido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AvailabilityHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := parseDate(h.config.Timezone, c.Query("start_date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "start_date es requerido.")
		return time.Time{}, time.Time{}, false
	}

	end, err := parseDate(h.config.Timezone, c.Query("end_date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "end_date es requerido.")
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
