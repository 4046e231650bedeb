package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/middleware"
)

// GetMeHandler godoc
// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
func (ctrl *Controller) GetMeHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := ctrl.userSvc.Get(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUserHandler godoc
// @Summary Update profile fields of the authenticated account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserUpdateRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/update [put]
func (ctrl *Controller) UpdateUserHandler(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.userSvc.Update(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeactivateUserHandler godoc
// @Summary Deactivate the authenticated account
// @Description The account can be reopened by logging in with q=open.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /users/delete [delete]
func (ctrl *Controller) DeactivateUserHandler(c *gin.Context) {
	if err := ctrl.userSvc.Deactivate(middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "The account has been deactivated."})
}

// ChangePasswordHandler godoc
// @Summary Change the password of the authenticated account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/change-password [put]
func (ctrl *Controller) ChangePasswordHandler(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := ctrl.userSvc.ChangePassword(middleware.CurrentUser(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "The password has been changed."})
}

// ListStudentsHandler godoc
// @Summary List all student accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Router /users/students [get]
func (ctrl *Controller) ListStudentsHandler(c *gin.Context) {
	resp, err := ctrl.userSvc.ListStudents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
