package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// ResourceController handles learning resource uploads and listing
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// CreateResource uploads a resource with one or more files
// @Summary Create a learning resource
// @Description Uploads files[] with resource metadata. The resource type is derived from the dominant file category.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param subject formData string true "Subject"
// @Param class formData string true "Class"
// @Param teacher formData string true "Teacher"
// @Param accessLevel formData string true "Access level (student/teacher/admin)"
// @Param files formData file true "Files to attach"
// @Success 201 {object} dto.APIResponse{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "No files attached"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart form").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		uploads = form.File["files[]"]
	}

	uploadedBy, _ := ctx.Get("adminID")
	adminID, _ := uploadedBy.(int64)

	resource, err := c.resourceService.Create(ctx, &req, uploads, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// GetResourceByID retrieves one resource with its files
// @Summary Get resource details
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource}
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.resourceService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// ListResources retrieves a filtered page of resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Subject filter"
// @Param class query string false "Class filter"
// @Param accessLevel query string false "Access level filter"
// @Param type query string false "Derived type filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse}
// @Router /resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	var req dto.ResourceFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.resourceService.List(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// DeleteResource removes a resource and its stored files
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Resource deleted",
		Timestamp: time.Now(),
	})
}

// RecordDownload bumps a resource download counter
// @Summary Record a download
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse
// @Router /resources/{id}/download [post]
func (c *ResourceController) RecordDownload(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.RecordDownload(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Download recorded",
		Timestamp: time.Now(),
	})
}
