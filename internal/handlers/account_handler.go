package handlers

import (
	"net/http"

	"fairway_backend/internal/logger"
	"fairway_backend/internal/services"
	"fairway_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewAccountHandler(base *BaseHandler, userService services.UserService) *AccountHandler {
	return &AccountHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// GetAccount returns the caller's profile with their reviews.
// GET /account
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	account, err := h.userService.GetAccount(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}

// UpdateAccount applies a partial update to the caller's profile.
// PUT /account
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, err := h.userService.UpdateAccount(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Account updated", "userID", userID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}
