package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucappointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucappointment.CreateAppointment
	transition   *ucappointment.TransitionAppointment
	complete     *ucappointment.CompleteService
	reschedule   *ucappointment.Reschedule
	listByDate   *ucappointment.ListAppointmentsByDate
	availability *ucappointment.GetAvailability
	tz           string
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	transition *ucappointment.TransitionAppointment,
	complete *ucappointment.CompleteService,
	reschedule *ucappointment.Reschedule,
	listByDate *ucappointment.ListAppointmentsByDate,
	availability *ucappointment.GetAvailability,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		transition:   transition,
		complete:     complete,
		reschedule:   reschedule,
		listByDate:   listByDate,
		availability: availability,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceType string `json:"service_type" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	DurationMinutes int `json:"duration_minutes"`

	PackageID *uint `json:"package_id"`

	AttendeeIDs []uint `json:"attendee_ids"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type CompleteServiceRequest struct {
	SatisfactionRating *int   `json:"satisfaction_rating"`
	Feedback           string `json:"feedback"`
	Notes              string `json:"notes"`
	RedeemPoints       int    `json:"redeem_points"`
}

type RescheduleRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		ProviderID:      providerID,
		CreatorID:       providerID,
		Title:           req.Title,
		Description:     req.Description,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		ServiceType:     req.ServiceType,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		PackageID:       req.PackageID,
		AttendeeIDs:     req.AttendeeIDs,
	})
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transition.Execute(
		c.Request.Context(),
		providerID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req CompleteServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.complete.Execute(c.Request.Context(), ucappointment.CompleteServiceInput{
		ProviderID:         providerID,
		AppointmentID:      id,
		SatisfactionRating: req.SatisfactionRating,
		Feedback:           req.Feedback,
		Notes:              req.Notes,
		RedeemPoints:       req.RedeemPoints,
	})
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete_service", "Erro ao concluir atendimento.")
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": out.Appointment,
		"history":     out.History,
		"category":    out.Category,
	})
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucappointment.RescheduleInput{
		ProviderID:      providerID,
		AppointmentID:   id,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule", "Erro ao remarcar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	loc := timezone.Location(h.tz)
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	serviceType := c.Query("service_type")
	if dateStr == "" || serviceType == "" {
		httperr.BadRequest(c, "missing_date_or_service", "Data e serviço são obrigatórios.")
		return
	}

	loc := timezone.Location(h.tz)
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProviderID:  providerID,
		ServiceType: serviceType,
		Date:        date,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar horários.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":         dateStr,
		"service_type": serviceType,
		"slots":        slots,
	})
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
