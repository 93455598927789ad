package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

// AdminController handles login and staff directory management
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login authenticates a console user
// @Summary Log in
// @Description Authenticates by email and password, returning a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account disabled"
// @Router /auth/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, admin, err := c.adminService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Admin logged in")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetProfile returns the authenticated admin's own record
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Router /auth/profile [get]
func (c *AdminController) GetProfile(ctx *gin.Context) {
	adminID, exists := ctx.Get("adminID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.GetByID(ctx, adminID.(int64))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// CreateAdmin registers a console user / staff directory entry
// @Summary Create an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin}
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admin data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// ListAdmins retrieves the staff directory
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Admin}
// @Router /admins [get]
func (c *AdminController) ListAdmins(ctx *gin.Context) {
	admins, err := c.adminService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admins,
		Timestamp: time.Now(),
	})
}

// UpdateAdmin edits a staff entry
// @Summary Update an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Updated admin information"
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admin data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// DeleteAdmin removes a staff entry
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Admin deleted",
		Timestamp: time.Now(),
	})
}
