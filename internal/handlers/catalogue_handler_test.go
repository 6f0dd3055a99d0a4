package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// The cases below are all rejected before the database is reached, so the
// handlers run without one.

func withActor(actor access.Actor) gin.HandlerFunc {
	return func(c *gin.Context) { middleware.SetActor(c, actor) }
}

func TestClinicHandler_Guards(t *testing.T) {
	clinicOne := uint(1)
	admin := access.Actor{UserID: 30, Role: models.RoleClinicAdmin, ClinicID: &clinicOne}
	doctor := access.Actor{UserID: 10, Role: models.RoleDoctor, ClinicID: &clinicOne}

	h := NewClinicHandler(nil, nil, "secret")

	tests := []struct {
		name       string
		actor      access.Actor
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{name: "admin of another clinic", actor: admin, method: http.MethodPatch, path: "/clinics/2", body: gin.H{"name": "x"}, wantStatus: http.StatusForbidden},
		{name: "doctor cannot add doctors", actor: doctor, method: http.MethodPost, path: "/clinics/1/doctors", body: gin.H{}, wantStatus: http.StatusForbidden},
		{name: "bad clinic id", actor: admin, method: http.MethodGet, path: "/clinics/zero", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(withActor(tt.actor))
			r.GET("/clinics/:id", h.Get)
			r.PATCH("/clinics/:id", h.Update)
			r.POST("/clinics/:id/doctors", h.AddDoctor)

			w := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestClinicHandler_RegisterRejectsUnknownTimezone(t *testing.T) {
	h := NewClinicHandler(nil, nil, "secret")

	r := gin.New()
	r.POST("/clinics", h.Register)

	w := doJSON(r, http.MethodPost, "/clinics", gin.H{
		"name":     "Clinica Centro",
		"timezone": "Mars/Olympus",
		"admin": gin.H{
			"first_name": "Ana",
			"email":      "ana@example.com",
			"password":   "secret1",
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_timezone", decode(t, w)["error_code"])
}

func TestServiceHandler_CreateGuards(t *testing.T) {
	clinicOne := uint(1)
	admin := access.Actor{UserID: 30, Role: models.RoleClinicAdmin, ClinicID: &clinicOne}

	h := NewServiceHandler(nil, nil)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "other clinic",
			body:       gin.H{"clinic_id": 2, "name": "Consulta", "duration_min": 30},
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:       "longer than a day",
			body:       gin.H{"clinic_id": 1, "name": "Consulta", "duration_min": 1441},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_duration",
		},
		{
			name:       "zero duration",
			body:       gin.H{"clinic_id": 1, "name": "Consulta", "duration_min": 0},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(withActor(admin))
			r.POST("/services", h.Create)

			w := doJSON(r, http.MethodPost, "/services", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w)["error_code"])
		})
	}
}
