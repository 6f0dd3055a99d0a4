package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := actorOr401(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var user models.User
	if err := h.db.WithContext(ctx).First(&user, actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	body := gin.H{"user": user}

	if user.ClinicID != nil {
		var clinic models.Clinic
		if err := h.db.WithContext(ctx).First(&clinic, *user.ClinicID).Error; err == nil {
			body["clinic"] = clinic
		}
	}

	c.JSON(http.StatusOK, body)
}
