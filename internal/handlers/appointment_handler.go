package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/booking-api/internal/config"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/httpresp"
	"github.com/barberia-app/booking-api/internal/middleware"
	ucAppointment "github.com/barberia-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	cancelUC *ucAppointment.CancelAppointment
	updateUC *ucAppointment.UpdateAppointment
	listUC   *ucAppointment.ListAppointments
	config   *config.Config
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	listUC *ucAppointment.ListAppointments,
	cfg *config.Config,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		updateUC: updateUC,
		listUC:   listUC,
		config:   cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Service     string `json:"service" binding:"required"`
	DurationMin int    `json:"duration_min"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Service     *string `json:"service"`
	DurationMin *int    `json:"duration_min"`
	Notes       *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseDate(h.config.Timezone, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:    clientID,
		BarberID:    req.BarberID,
		Date:        date,
		Time:        req.Time,
		Service:     req.Service,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.From(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apps, err := h.listUC.ByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.From(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.UpdateFields(c.Request.Context(), actorID, id, ucAppointment.FieldsPatch{
		Service:     req.Service,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.From(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.UpdateStatus(
		c.Request.Context(),
		actorID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		httperr.From(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.From(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
