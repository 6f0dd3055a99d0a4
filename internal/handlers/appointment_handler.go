package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASES
// ======================================================

type Booker interface {
	Execute(ctx context.Context, actor access.Actor, in domain.BookingInput) (*models.Appointment, error)
}

type AvailabilityReader interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]schedule.Interval, error)
}

type AppointmentLister interface {
	Execute(ctx context.Context, actor access.Actor, filter domain.ListFilter) ([]dto.AppointmentListDTO, error)
}

// AppointmentAction covers get, cancel and complete.
type AppointmentAction interface {
	Execute(ctx context.Context, actor access.Actor, appointmentID uint) (*models.Appointment, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         Booker
	availability AvailabilityReader
	list         AppointmentLister
	get          AppointmentAction
	cancel       AppointmentAction
	complete     AppointmentAction
}

func NewAppointmentHandler(
	book Booker,
	availability AvailabilityReader,
	list AppointmentLister,
	get AppointmentAction,
	cancel AppointmentAction,
	complete AppointmentAction,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		availability: availability,
		list:         list,
		get:          get,
		cancel:       cancel,
		complete:     complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	PatientID uint   `json:"patient_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartsAt  *int   `json:"starts_at" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), actor, domain.BookingInput{
		DoctorID:  req.DoctorID,
		ServiceID: req.ServiceID,
		PatientID: req.PatientID,
		Date:      date,
		StartsAt:  *req.StartsAt,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	serviceID, ok := queryID(c, "service_id")
	if !ok {
		return
	}
	doctorID, ok := queryID(c, "doctor_id")
	if !ok {
		return
	}
	if serviceID == 0 || doctorID == 0 {
		httperr.BadRequest(c, "missing_parameters", "service_id and doctor_id are required.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	free, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ServiceID: serviceID,
		DoctorID:  doctorID,
		Date:      date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, free)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	var filter domain.ListFilter

	if raw := c.Query("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		filter.Date = &date
	}

	for name, dst := range map[string]*uint{
		"doctor_id":  &filter.DoctorID,
		"patient_id": &filter.PatientID,
		"service_id": &filter.ServiceID,
	} {
		id, ok := queryID(c, name)
		if !ok {
			return
		}
		*dst = id
	}

	_, filter.Limit, filter.Offset = pagination(c, 50, 100)

	items, err := h.list.Execute(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// GET / CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	h.act(c, h.get)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.act(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.act(c, h.complete)
}

func (h *AppointmentHandler) act(c *gin.Context, uc AppointmentAction) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}
