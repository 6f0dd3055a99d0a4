package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db         *gorm.DB
	jwtSecret  string
	checkEmail func(email string) bool
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtSecret:  jwtSecret,
		checkEmail: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	City      string `json:"city"`
	Street    string `json:"street"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register signs up a patient. Doctors and clinic admins are created through
// their clinic.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := newUser(req, models.RolePatient, nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !h.checkEmail(user.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not look valid.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(user).Error; err != nil {
		httperr.Respond(c, emailTaken(err))
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Wrong e-mail or password.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong e-mail or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- Helpers ---------

// newUser builds a user with a hashed password.
func newUser(req RegisterRequest, role string, clinicID *uint) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ClinicID:     clinicID,
		Email:        validators.NormalizeEmail(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		City:         req.City,
		Street:       req.Street,
		PasswordHash: string(hashed),
		Role:         role,
	}, nil
}

func emailTaken(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("email_already_registered", "A user with that e-mail already exists.")
	}
	return err
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	return issueToken(h.jwtSecret, user, time.Now())
}

func issueToken(secret string, user *models.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"role":     user.Role,
		"clinicId": user.ClinicID,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
