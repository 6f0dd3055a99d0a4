package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	ClinicID    uint   `json:"clinic_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

// --------- Handlers ---------

// List is public. Filters: clinic_id, doctor_id, category, query.
func (h *ServiceHandler) List(c *gin.Context) {
	clinicID, ok := queryID(c, "clinic_id")
	if !ok {
		return
	}
	doctorID, ok := queryID(c, "doctor_id")
	if !ok {
		return
	}

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	_, limit, offset := pagination(c, 50, 100)

	q := h.db.WithContext(c.Request.Context()).Model(&models.ClinicService{})

	if clinicID != 0 {
		q = q.Where("clinic_services.clinic_id = ?", clinicID)
	}

	if doctorID != 0 {
		q = q.Joins("JOIN service_doctors sd ON sd.service_id = clinic_services.id").
			Where("sd.doctor_id = ?", doctorID)
	}

	if category != "" {
		q = q.Where("LOWER(clinic_services.category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(clinic_services.name) LIKE ? OR LOWER(clinic_services.description) LIKE ?", like, like)
	}

	var services []models.ClinicService
	if err := q.
		Order("clinic_services.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	if err := h.attachDoctors(c, services); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.ClinicService
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Clinic service not found.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	services := []models.ClinicService{service}
	if err := h.attachDoctors(c, services); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, services[0])
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DurationMin > schedule.MinutesPerDay {
		httperr.BadRequest(c, "invalid_duration", "A service cannot last longer than a day.")
		return
	}

	if !access.CanManageClinic(actor, req.ClinicID) {
		httperr.Forbidden(c, "forbidden", "Only the clinic admin is authorized.")
		return
	}

	service := models.ClinicService{
		ClinicID:    req.ClinicID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		DurationMin: req.DurationMin,
		DoctorIDs:   []uint{},
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Respond(c, httperr.ErrConflict("service_already_exists", "The clinic already has a service with that name."))
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ClinicID: &service.ClinicID,
		UserID:   &actor.UserID,
		Action:   "service_created",
		Entity:   "clinic_service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

// attachDoctors fills DoctorIDs for every service with one query.
func (h *ServiceHandler) attachDoctors(c *gin.Context, services []models.ClinicService) error {
	if len(services) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}

	var links []models.ServiceDoctor
	if err := h.db.WithContext(c.Request.Context()).
		Where("service_id IN ?", ids).
		Order("doctor_id ASC").
		Find(&links).Error; err != nil {
		return err
	}

	byService := make(map[uint][]uint, len(services))
	for _, l := range links {
		byService[l.ServiceID] = append(byService[l.ServiceID], l.DoctorID)
	}

	for i := range services {
		services[i].DoctorIDs = byService[services[i].ID]
		if services[i].DoctorIDs == nil {
			services[i].DoctorIDs = []uint{}
		}
	}
	return nil
}
