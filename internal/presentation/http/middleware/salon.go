package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
)

// ExtractSalonFromHost extracts a salon slug from the subdomain
// e.g., "glow-studio.glowdesk.com" -> "glow-studio"
func ExtractSalonFromHost(host string) (string, error) {
	// Remove port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("invalid subdomain")
	}
	return parts[0], nil
}

// SalonMiddleware validates the salon from the subdomain and adds it to context
func SalonMiddleware(salonRepo repository.SalonRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract salon from subdomain
		salonSlug, err := ExtractSalonFromHost(c.Request.Host)
		if err != nil {
			// Allow requests without subdomain (for backwards compatibility during migration)
			c.Set("salon_id", uuid.Nil)
			c.Next()
			return
		}

		// Lookup salon by slug
		salon, err := salonRepo.GetBySlug(c.Request.Context(), salonSlug)
		if err != nil || salon == nil {
			response.NotFound(c, "Salon not found")
			c.Abort()
			return
		}

		// Validate user has access to this salon (if authenticated)
		userIDVal, exists := c.Get("user_id")
		if exists {
			userID, ok := userIDVal.(uuid.UUID)
			if ok && userID != uuid.Nil {
				isMember, _ := salonRepo.IsMember(c.Request.Context(), salon.ID, userID)
				if !isMember {
					response.Forbidden(c, "Access denied to this salon")
					c.Abort()
					return
				}
			}
		}

		// Set salon ID in Gin context (for middleware/handlers)
		c.Set("salon_id", salon.ID)
		c.Set("salon", salon)

		// Also set salon ID in request context (for services/repositories)
		ctx := infraRepo.WithSalon(c.Request.Context(), salon.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSalon ensures a valid salon context exists
func RequireSalon() gin.HandlerFunc {
	return func(c *gin.Context) {
		salonID, exists := c.Get("salon_id")
		if !exists {
			response.BadRequest(c, "Salon context required")
			c.Abort()
			return
		}

		id, ok := salonID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid salon context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSalonID retrieves the salon ID from gin context
func GetSalonID(c *gin.Context) uuid.UUID {
	salonID, exists := c.Get("salon_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := salonID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
