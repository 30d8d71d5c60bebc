package handler

import (
	"net/http"

	"boardsvc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalHandler serves trust-boundary queries from sibling services. The
// shared-secret middleware authenticates the caller; no board membership
// is required of it.
type InternalHandler struct {
	access *service.AccessChecker
}

func NewInternalHandler(access *service.AccessChecker) *InternalHandler {
	return &InternalHandler{access: access}
}

// GetPermission returns an arbitrary user's role on a board
func (h *InternalHandler) GetPermission(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing userId"})
		return
	}

	role, err := h.access.GetUserRole(c.Request.Context(), boardID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve role"})
		return
	}

	c.JSON(http.StatusOK, RoleResponse{
		BoardID: boardID.String(),
		UserID:  userID.String(),
		Role:    string(role),
	})
}
