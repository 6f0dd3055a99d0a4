package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type ShiftReader interface {
	Execute(ctx context.Context, doctorID uint) ([]schedule.Interval, error)
}

type ShiftWriter interface {
	Execute(ctx context.Context, actor access.Actor, doctorID uint, shifts []schedule.Interval) ([]schedule.Interval, error)
}

type ServiceAssigner interface {
	Assign(ctx context.Context, actor access.Actor, serviceID, doctorID uint) error
	Unassign(ctx context.Context, actor access.Actor, serviceID, doctorID uint) error
}

type DoctorHandler struct {
	getShifts    ShiftReader
	updateShifts ShiftWriter
	assignment   ServiceAssigner
}

func NewDoctorHandler(
	getShifts ShiftReader,
	updateShifts ShiftWriter,
	assignment ServiceAssigner,
) *DoctorHandler {
	return &DoctorHandler{
		getShifts:    getShifts,
		updateShifts: updateShifts,
		assignment:   assignment,
	}
}

type UpdateShiftsRequest struct {
	Shifts []schedule.Interval `json:"shifts" binding:"required"`
}

func (h *DoctorHandler) GetShifts(c *gin.Context) {
	doctorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	shifts, err := h.getShifts.Execute(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

func (h *DoctorHandler) UpdateShifts(c *gin.Context) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	doctorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	shifts, err := h.updateShifts.Execute(c.Request.Context(), actor, doctorID, req.Shifts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

func (h *DoctorHandler) AssignService(c *gin.Context) {
	h.link(c, h.assignment.Assign)
}

func (h *DoctorHandler) UnassignService(c *gin.Context) {
	h.link(c, h.assignment.Unassign)
}

func (h *DoctorHandler) link(
	c *gin.Context,
	op func(ctx context.Context, actor access.Actor, serviceID, doctorID uint) error,
) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	serviceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	doctorID, ok := pathID(c, "doctorId")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), actor, serviceID, doctorID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
