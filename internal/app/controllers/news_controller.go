package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// NewsController handles school news and events
type NewsController struct {
	newsService *services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService *services.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// CreateNewsItem creates a news item or event
// @Summary Create a news item
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsItemRequest true "News item data"
// @Success 201 {object} dto.APIResponse{data=models.NewsItem}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /news [post]
func (c *NewsController) CreateNewsItem(ctx *gin.Context) {
	var req dto.CreateNewsItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news item data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	createdBy, _ := ctx.Get("adminID")
	adminID, _ := createdBy.(int64)

	item, err := c.newsService.Create(ctx, &req, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      item,
		Timestamp: time.Now(),
	})
}

// GetNewsItemByID retrieves one news item
// @Summary Get news item details
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Success 200 {object} dto.APIResponse{data=models.NewsItem}
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNewsItemByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.newsService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      item,
		Timestamp: time.Now(),
	})
}

// ListNewsItems retrieves news items, optionally filtered
// @Summary List news items
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter (news or event)"
// @Param published query bool false "Published filter"
// @Success 200 {object} dto.APIResponse{data=[]models.NewsItem}
// @Router /news [get]
func (c *NewsController) ListNewsItems(ctx *gin.Context) {
	filter := repositories.NewsFilter{
		Category: ctx.Query("category"),
	}
	if raw := ctx.Query("published"); raw != "" {
		if published, err := strconv.ParseBool(raw); err == nil {
			filter.Published = &published
		}
	}

	items, err := c.newsService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// UpdateNewsItem edits a news item
// @Summary Update a news item
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Param request body dto.UpdateNewsItemRequest true "News item data"
// @Success 200 {object} dto.APIResponse{data=models.NewsItem}
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [put]
func (c *NewsController) UpdateNewsItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNewsItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news item data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.newsService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      item,
		Timestamp: time.Now(),
	})
}

// DeleteNewsItem removes a news item
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNewsItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "News item deleted",
		Timestamp: time.Now(),
	})
}
