package handler

import (
	"net/http"

	"boardsvc/internal/middleware"
	"boardsvc/internal/model"
	"boardsvc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	memberService *service.MemberService
	access        *service.AccessChecker
}

func NewMemberHandler(memberService *service.MemberService, access *service.AccessChecker) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		access:        access,
	}
}

type ShareBoardRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=viewer editor"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer editor"`
}

type MemberResponse struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	IsOwner bool   `json:"is_owner"`
}

type RoleResponse struct {
	BoardID string `json:"board_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

func memberResponse(board *model.Board, member *model.BoardMember) MemberResponse {
	return MemberResponse{
		UserID:  member.UserID.String(),
		Role:    string(member.Role),
		IsOwner: member.UserID == board.OwnerID,
	}
}

// ShareBoard adds a member or upgrades an existing member's role (owner only)
func (h *MemberHandler) ShareBoard(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req ShareBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	targetUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	role, ok := model.AssignableRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if err := h.memberService.ShareBoard(c.Request.Context(), boardID, authenticatedUserID, targetUserID, role); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Board shared successfully",
		"member": MemberResponse{
			UserID:  targetUserID.String(),
			Role:    string(role),
			IsOwner: false,
		},
	})
}

// GetMembers lists the board's membership records (any member)
func (h *MemberHandler) GetMembers(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	members, err := h.memberService.GetMembers(c.Request.Context(), boardID, authenticatedUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]MemberResponse, len(members))
	for i, m := range members {
		response[i] = MemberResponse{
			UserID:  m.UserID.String(),
			Role:    string(m.Role),
			IsOwner: m.Role == model.RoleOwner,
		}
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRole changes an existing member's role (owner only)
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	memberUserID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	role, ok := model.AssignableRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if err := h.memberService.UpdateMemberRole(c.Request.Context(), boardID, authenticatedUserID, memberUserID, role); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member role updated successfully"})
}

// Remove deletes a member from the board (owner only)
func (h *MemberHandler) Remove(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	memberUserID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), boardID, authenticatedUserID, memberUserID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// GetMyRole returns the caller's own role on the board. A caller with no
// membership gets an empty role, not an error.
func (h *MemberHandler) GetMyRole(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	role, err := h.access.GetUserRole(c.Request.Context(), boardID, authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve role"})
		return
	}

	c.JSON(http.StatusOK, RoleResponse{
		BoardID: boardID.String(),
		UserID:  authenticatedUserID.String(),
		Role:    string(role),
	})
}
