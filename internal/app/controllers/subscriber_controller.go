package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// SubscriberController handles newsletter subscriptions
type SubscriberController struct {
	subscriberService *services.SubscriberService
}

// NewSubscriberController creates a new SubscriberController
func NewSubscriberController(subscriberService *services.SubscriberService) *SubscriberController {
	return &SubscriberController{
		subscriberService: subscriberService,
	}
}

// Subscribe adds an email to the newsletter list
// @Summary Subscribe
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Email address"
// @Success 201 {object} dto.APIResponse{data=models.Subscriber}
// @Failure 409 {object} dto.ErrorResponse "Already subscribed"
// @Router /subscribers [post]
func (c *SubscriberController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subscriber, err := c.subscriberService.Subscribe(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subscriber,
		Timestamp: time.Now(),
	})
}

// ListSubscribers returns the subscriber list
// @Summary List subscribers
// @Tags subscribers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subscriber}
// @Router /subscribers [get]
func (c *SubscriberController) ListSubscribers(ctx *gin.Context) {
	subscribers, err := c.subscriberService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subscribers,
		Timestamp: time.Now(),
	})
}

// Unsubscribe removes an email from the list
// @Summary Unsubscribe
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Email address"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Subscriber not found"
// @Router /subscribers/unsubscribe [post]
func (c *SubscriberController) Unsubscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.subscriberService.Unsubscribe(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Unsubscribed",
		Timestamp: time.Now(),
	})
}
