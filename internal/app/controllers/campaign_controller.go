package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/middleware"
)

// CampaignController handles email campaign operations
type CampaignController struct {
	campaignService *services.CampaignService
}

// NewCampaignController creates a new CampaignController
func NewCampaignController(campaignService *services.CampaignService) *CampaignController {
	return &CampaignController{
		campaignService: campaignService,
	}
}

// CreateCampaign drafts a campaign with a materialized recipient list
// @Summary Create a campaign
// @Description Drafts a campaign. The recipient list is resolved from the group immediately and stored with the draft.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign content and audience"
// @Success 201 {object} dto.APIResponse{data=models.EmailCampaign}
// @Failure 400 {object} dto.ErrorResponse "Empty recipient list"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid campaign data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	createdBy, _ := ctx.Get("adminID")
	adminID, _ := createdBy.(int64)

	campaign, err := c.campaignService.Create(ctx, &req, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// GetCampaignByID retrieves one campaign
// @Summary Get campaign details
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=models.EmailCampaign}
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [get]
func (c *CampaignController) GetCampaignByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.campaignService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// ListCampaigns retrieves all campaigns, newest first
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EmailCampaign}
// @Router /campaigns [get]
func (c *CampaignController) ListCampaigns(ctx *gin.Context) {
	campaigns, err := c.campaignService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaigns,
		Timestamp: time.Now(),
	})
}

// UpdateCampaign edits a draft campaign
// @Summary Update a campaign
// @Description Edits a draft. Published campaigns cannot be changed.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Updated campaign content"
// @Success 200 {object} dto.APIResponse{data=models.EmailCampaign}
// @Failure 409 {object} dto.ErrorResponse "Campaign already published"
// @Router /campaigns/{id} [put]
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid campaign data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	campaign, err := c.campaignService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campaign,
		Timestamp: time.Now(),
	})
}

// DeleteCampaign removes a campaign
// @Summary Delete a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [delete]
func (c *CampaignController) DeleteCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.campaignService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Campaign deleted",
		Timestamp: time.Now(),
	})
}

// PublishCampaign sends a draft to its recipient list
// @Summary Publish a campaign
// @Description Sends the campaign to its materialized recipients and records the delivery counters
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.SendReport}
// @Failure 409 {object} dto.ErrorResponse "Campaign already published"
// @Router /campaigns/{id}/publish [patch]
func (c *CampaignController) PublishCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.campaignService.Publish(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// Broadcast sends a one-shot message to all newsletter subscribers
// @Summary Broadcast to subscribers
// @Description One-shot bulk send to the subscriber list. No campaign record is created.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BroadcastRequest true "Message"
// @Success 200 {object} dto.APIResponse{data=dto.SendReport}
// @Failure 400 {object} dto.ErrorResponse "No subscribers"
// @Router /campaigns/broadcast [post]
func (c *CampaignController) Broadcast(ctx *gin.Context) {
	var req dto.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid broadcast data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.campaignService.Broadcast(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ListRecipientGroups returns the selectable audience segments
// @Summary List recipient groups
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RecipientGroupInfo}
// @Router /campaigns/groups [get]
func (c *CampaignController) ListRecipientGroups(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      services.RecipientGroups(),
		Timestamp: time.Now(),
	})
}

// PreviewRecipients resolves a group against the current rosters
// @Summary Preview resolved recipients
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param group path string true "Recipient group key"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /campaigns/groups/{group}/recipients [get]
func (c *CampaignController) PreviewRecipients(ctx *gin.Context) {
	group := models.RecipientGroup(ctx.Param("group"))

	recipients, err := c.campaignService.PreviewRecipients(ctx, group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      recipients,
		Timestamp: time.Now(),
	})
}
