package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// CouncilController handles student council assignments
type CouncilController struct {
	councilService *services.CouncilService
}

// NewCouncilController creates a new CouncilController
func NewCouncilController(councilService *services.CouncilService) *CouncilController {
	return &CouncilController{
		councilService: councilService,
	}
}

// CreateCouncilMember assigns a student to a council position
// @Summary Assign a council position
// @Description Multipart form assignment. Class-scoped positions must declare a form/stream matching the student's own.
// @Tags council
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param studentId formData int true "Student ID"
// @Param position formData string true "Position key"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param photo formData file false "Member photo"
// @Success 201 {object} dto.APIResponse{data=models.CouncilMember}
// @Failure 400 {object} dto.ErrorResponse "Unknown position or class mismatch"
// @Router /council [post]
func (c *CouncilController) CreateCouncilMember(ctx *gin.Context) {
	var req dto.CreateCouncilMemberRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid council member data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photo, _ := ctx.FormFile("photo")

	member, err := c.councilService.Create(ctx, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// GetCouncilMemberByID retrieves one council member
// @Summary Get council member details
// @Tags council
// @Produce json
// @Security BearerAuth
// @Param id path int true "Council member ID"
// @Success 200 {object} dto.APIResponse{data=models.CouncilMember}
// @Failure 404 {object} dto.ErrorResponse "Council member not found"
// @Router /council/{id} [get]
func (c *CouncilController) GetCouncilMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.councilService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// ListCouncilMembers retrieves the council, optionally filtered
// @Summary List council members
// @Tags council
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department filter"
// @Param status query string false "Status filter"
// @Param form query string false "Form filter"
// @Success 200 {object} dto.APIResponse{data=[]models.CouncilMember}
// @Router /council [get]
func (c *CouncilController) ListCouncilMembers(ctx *gin.Context) {
	filter := repositories.CouncilFilter{
		Department: ctx.Query("department"),
		Status:     ctx.Query("status"),
		Form:       models.Form(ctx.Query("form")),
	}

	members, err := c.councilService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      members,
		Timestamp: time.Now(),
	})
}

// UpdateCouncilMember edits an assignment
// @Summary Update a council member
// @Tags council
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Council member ID"
// @Success 200 {object} dto.APIResponse{data=models.CouncilMember}
// @Failure 404 {object} dto.ErrorResponse "Council member not found"
// @Router /council/{id} [put]
func (c *CouncilController) UpdateCouncilMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCouncilMemberRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid council member data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photo, _ := ctx.FormFile("photo")

	member, err := c.councilService.Update(ctx, id, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// DeleteCouncilMember removes an assignment
// @Summary Delete a council member
// @Tags council
// @Produce json
// @Security BearerAuth
// @Param id path int true "Council member ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Council member not found"
// @Router /council/{id} [delete]
func (c *CouncilController) DeleteCouncilMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.councilService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Council member deleted",
		Timestamp: time.Now(),
	})
}

// ListPositions returns the static position catalogue
// @Summary List council positions
// @Tags council
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PositionInfo}
// @Router /council/positions [get]
func (c *CouncilController) ListPositions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.councilService.Positions(),
		Timestamp: time.Now(),
	})
}
