package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// StudentController handles student roster and lifecycle operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateStudent registers a new student
// @Summary Register a student
// @Description Adds a student to the roster with a unique admission number
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Admission number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves one student
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// ListStudents retrieves a filtered page of the roster
// @Summary List students
// @Description Lists students with optional form/stream/status filters and guardian search
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param form query string false "Form filter"
// @Param stream query string false "Stream filter"
// @Param status query string false "Status filter"
// @Param search query string false "Name, admission number or guardian search"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var req dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, pagination, err := c.studentService.List(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PaginatedResponse{Items: students, Pagination: pagination},
		Timestamp: time.Now(),
	})
}

// UpdateStudent edits a student record
// @Summary Update a student
// @Description Updates a student. The admission number cannot be changed.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes one student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Student deleted",
		Timestamp: time.Now(),
	})
}

// BulkDeleteStudents removes a batch of students, settling per id
// @Summary Bulk delete students
// @Description Deletes a batch of students. Failures are reported per id and do not abort the batch.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "Student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkResult}
// @Router /students/bulk-delete [post]
func (c *StudentController) BulkDeleteStudents(ctx *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result := c.studentService.BulkDelete(ctx, req.IDs)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ApplyLifecycle runs a bulk promote or graduate over one form
// @Summary Promote or graduate a form
// @Description Promotes every student in a form to the next form, or marks the form as graduated. Promoting the final form is rejected.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PromotionRequest true "Form and action"
// @Success 200 {object} dto.APIResponse{data=dto.PromotionResponse}
// @Failure 400 {object} dto.ErrorResponse "Terminal form or unknown action"
// @Router /students [patch]
func (c *StudentController) ApplyLifecycle(ctx *gin.Context) {
	var req dto.PromotionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid promotion request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.studentService.ApplyLifecycle(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// RepeatStudent moves a graduated student back into an active class
// @Summary Repeat a graduated student
// @Description Reinstates a graduated student as Active in the given form
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.RepeatRequest true "Target form"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Student is not graduated"
// @Router /students/{id}/repeat [patch]
func (c *StudentController) RepeatStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RepeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid repeat request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Repeat(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetPromotionHistory returns a student's lifecycle audit trail
// @Summary Get promotion history
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.PromotionRecord}
// @Router /students/{id}/promotions [get]
func (c *StudentController) GetPromotionHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.studentService.PromotionHistory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// ExportStudents streams the filtered roster as a CSV download
// @Summary Export students as CSV
// @Tags students
// @Produce text/csv
// @Security BearerAuth
// @Param form query string false "Form filter"
// @Param stream query string false "Stream filter"
// @Param status query string false "Status filter"
// @Success 200 {string} string "CSV file"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	var req dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="students.csv"`)

	if err := c.studentService.ExportCSV(ctx, &req, ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
