package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
)

const (
	ContextUserID   = "userID"
	ContextClinicID = "clinicID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		actor := access.Actor{UserID: uint(userID), Role: role}

		// Patients carry no clinic; the claim is absent or null.
		if raw, ok := claims["clinicId"].(float64); ok && raw > 0 {
			clinicID := uint(raw)
			actor.ClinicID = &clinicID
		}

		SetActor(c, actor)
		c.Next()
	}
}

// SetActor stores the authenticated caller on the request context.
func SetActor(c *gin.Context, actor access.Actor) {
	c.Set(ContextUserID, actor.UserID)
	c.Set(ContextUserRole, actor.Role)
	c.Set(ContextClinicID, actor.ClinicID)
}

// ActorFrom returns the caller set by AuthMiddleware.
func ActorFrom(c *gin.Context) (access.Actor, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return access.Actor{}, false
	}

	actor := access.Actor{UserID: userID.(uint)}
	actor.Role = c.GetString(ContextUserRole)
	if v, ok := c.Get(ContextClinicID); ok {
		actor.ClinicID, _ = v.(*uint)
	}
	return actor, true
}
