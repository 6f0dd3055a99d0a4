package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ClinicHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	jwt   string
}

func NewClinicHandler(db *gorm.DB, dispatcher *audit.Dispatcher, jwtSecret string) *ClinicHandler {
	return &ClinicHandler{db: db, audit: dispatcher, jwt: jwtSecret}
}

// --------- Requests ---------

type RegisterClinicRequest struct {
	Name     string          `json:"name" binding:"required"`
	City     string          `json:"city"`
	Street   string          `json:"street"`
	Timezone string          `json:"timezone"`
	Admin    RegisterRequest `json:"admin" binding:"required"`
}

type UpdateClinicRequest struct {
	Name     *string `json:"name,omitempty"`
	City     *string `json:"city,omitempty"`
	Street   *string `json:"street,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// --------- Handlers ---------

// Register creates a clinic together with its admin account.
func (h *ClinicHandler) Register(c *gin.Context) {
	var req RegisterClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = timezone.Default()
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
		return
	}

	clinic := models.Clinic{
		Name:     strings.TrimSpace(req.Name),
		City:     req.City,
		Street:   req.Street,
		Timezone: tz,
	}

	var admin *models.User

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&clinic).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrConflict("clinic_already_exists", "A clinic with that name already exists.")
			}
			return err
		}

		u, err := newUser(req.Admin, models.RoleClinicAdmin, &clinic.ID)
		if err != nil {
			return err
		}
		if err := tx.Create(u).Error; err != nil {
			return emailTaken(err)
		}

		clinic.AdminID = &u.ID
		if err := tx.Model(&clinic).Update("admin_id", u.ID).Error; err != nil {
			return err
		}

		admin = u
		return nil
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := issueToken(h.jwt, admin, timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"clinic": clinic,
		"admin":  admin,
		"token":  token,
	})
}

// List is public: anyone can browse clinics.
func (h *ClinicHandler) List(c *gin.Context) {
	_, limit, offset := pagination(c, 20, 100)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Clinic{})

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", like, like)
	}

	var clinics []models.Clinic
	if err := q.Order("id ASC").Limit(limit).Offset(offset).Find(&clinics).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clinics", "Could not list clinics.")
		return
	}

	httpresp.List(c, clinics)
}

func (h *ClinicHandler) Get(c *gin.Context) {
	clinic, _, ok := h.ownClinic(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, clinic)
}

func (h *ClinicHandler) Update(c *gin.Context) {
	clinic, actor, ok := h.ownClinic(c)
	if !ok {
		return
	}

	var req UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		clinic.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		clinic.City = *req.City
	}
	if req.Street != nil {
		clinic.Street = *req.Street
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		clinic.Timezone = *req.Timezone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(clinic).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Respond(c, httperr.ErrConflict("clinic_already_exists", "A clinic with that name already exists."))
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ClinicID: &clinic.ID,
		UserID:   &actor.UserID,
		Action:   "clinic_updated",
		Entity:   "clinic",
		EntityID: &clinic.ID,
	})

	c.JSON(http.StatusOK, clinic)
}

// AddDoctor creates a doctor account inside the admin's clinic.
func (h *ClinicHandler) AddDoctor(c *gin.Context) {
	clinic, actor, ok := h.ownClinic(c)
	if !ok {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctor, err := newUser(req, models.RoleDoctor, &clinic.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(doctor).Error; err != nil {
		httperr.Respond(c, emailTaken(err))
		return
	}

	h.audit.Dispatch(audit.Event{
		ClinicID: &clinic.ID,
		UserID:   &actor.UserID,
		Action:   "doctor_added",
		Entity:   "user",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusCreated, doctor)
}

// ownClinic loads the :id clinic and requires the caller to administer it.
func (h *ClinicHandler) ownClinic(c *gin.Context) (*models.Clinic, access.Actor, bool) {
	actor, ok := actorOr401(c)
	if !ok {
		return nil, actor, false
	}

	id, ok := pathID(c, "id")
	if !ok {
		return nil, actor, false
	}

	if !access.CanManageClinic(actor, id) {
		httperr.Forbidden(c, "forbidden", "Only the clinic admin is authorized.")
		return nil, actor, false
	}

	var clinic models.Clinic
	if err := h.db.WithContext(c.Request.Context()).First(&clinic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "clinic_not_found", "Clinic not found.")
			return nil, actor, false
		}
		httperr.Respond(c, err)
		return nil, actor, false
	}

	return &clinic, actor, true
}
