package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// getPaginationParams reads page-based pagination from the query string
func getPaginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// GetUserID returns the authenticated user's ID, or nil outside an
// authenticated request.
func GetUserID(c *gin.Context) *uuid.UUID {
	raw, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRoles returns the roles carried by the caller's token.
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	list, ok := roles.([]string)
	if !ok {
		return nil
	}
	return list
}

// IsSuperAdmin reports whether the caller holds the super-admin role.
func IsSuperAdmin(c *gin.Context) bool {
	for _, role := range GetUserRoles(c) {
		if role == "super-admin" {
			return true
		}
	}
	return false
}
