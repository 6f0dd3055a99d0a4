package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func newDoctorRouter(actor access.Actor) (*gin.Engine, *mockShiftReader, *mockShiftWriter, *mockAssigner) {
	reader := &mockShiftReader{}
	writer := &mockShiftWriter{}
	assigner := &mockAssigner{}
	h := NewDoctorHandler(reader, writer, assigner)

	r := gin.New()
	r.Use(func(c *gin.Context) { middleware.SetActor(c, actor) })
	r.GET("/doctors/:id/shifts", h.GetShifts)
	r.PUT("/doctors/:id/shifts", h.UpdateShifts)
	r.PUT("/services/:id/doctors/:doctorId", h.AssignService)
	r.DELETE("/services/:id/doctors/:doctorId", h.UnassignService)

	return r, reader, writer, assigner
}

func TestDoctorHandler_GetShifts(t *testing.T) {
	r, reader, _, _ := newDoctorRouter(patientActor)
	reader.On("Execute", mock.Anything, uint(10)).
		Return([]schedule.Interval{{Start: 480, End: 720}}, nil)

	w := doJSON(r, http.MethodGet, "/doctors/10/shifts", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Shifts []schedule.Interval `json:"shifts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []schedule.Interval{{Start: 480, End: 720}}, body.Shifts)
}

func TestDoctorHandler_UpdateShifts(t *testing.T) {
	doctor := access.Actor{UserID: 10, Role: models.RoleDoctor}

	t.Run("valid set", func(t *testing.T) {
		r, _, writer, _ := newDoctorRouter(doctor)
		in := []schedule.Interval{{Start: 780, End: 1020}, {Start: 480, End: 720}}
		writer.On("Execute", mock.Anything, doctor, uint(10), in).
			Return([]schedule.Interval{{Start: 480, End: 720}, {Start: 780, End: 1020}}, nil)

		w := doJSON(r, http.MethodPut, "/doctors/10/shifts", gin.H{"shifts": in})

		assert.Equal(t, http.StatusOK, w.Code)
		writer.AssertExpectations(t)
	})

	t.Run("overlapping set", func(t *testing.T) {
		r, _, writer, _ := newDoctorRouter(doctor)
		writer.On("Execute", mock.Anything, doctor, uint(10), mock.Anything).
			Return(nil, httperr.ErrValidation("invalid_shifts", "shifts overlap"))

		w := doJSON(r, http.MethodPut, "/doctors/10/shifts", gin.H{
			"shifts": []schedule.Interval{{Start: 0, End: 60}, {Start: 30, End: 90}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_shifts", decode(t, w)["error_code"])
	})

	t.Run("missing body", func(t *testing.T) {
		r, _, writer, _ := newDoctorRouter(doctor)

		w := doJSON(r, http.MethodPut, "/doctors/10/shifts", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		writer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDoctorHandler_ServiceLinks(t *testing.T) {
	admin := access.Actor{UserID: 30, Role: models.RoleClinicAdmin}

	r, _, _, assigner := newDoctorRouter(admin)
	assigner.On("Assign", mock.Anything, admin, uint(5), uint(10)).Return(nil)
	assigner.On("Unassign", mock.Anything, admin, uint(5), uint(10)).
		Return(httperr.ErrConflict("doctor_not_assigned", ""))

	w := doJSON(r, http.MethodPut, "/services/5/doctors/10", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/services/5/doctors/10", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPut, "/services/5/doctors/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assigner.AssertExpectations(t)
}
