package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/models"
	ez_uuid "github.com/goalsplit/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// currentUser returns the user the request is made for. It is set by the
// identity middleware for all routes of this API version.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(string(models.ContextUser)).(models.User)
}
