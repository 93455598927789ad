package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers
// call this instead of hand-rolling status codes.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	detail := func(code dto.ErrorCode, fallback string) *dto.ErrorDetail {
		if message != "" {
			return dto.NewErrorDetail(code, message)
		}
		return dto.NewErrorDetail(code, fallback)
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Student not found")})
	case errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Admin not found")})
	case errors.Is(err, apperrors.ErrCampaignNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Campaign not found")})
	case errors.Is(err, apperrors.ErrLearningResourceNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Learning resource not found")})
	case errors.Is(err, apperrors.ErrCouncilMemberNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Council member not found")})
	case errors.Is(err, apperrors.ErrNewsItemNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "News item not found")})
	case errors.Is(err, apperrors.ErrSubscriberNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Subscriber not found")})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{Error: detail(dto.ErrorCodeResourceNotFound, "Resource not found")})

	case errors.Is(err, apperrors.ErrAdmissionNoExists):
		c.JSON(409, dto.APIResponse{Error: detail(dto.ErrorCodeResourceAlreadyExists, "Admission number already exists")})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{Error: detail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")})
	case errors.Is(err, apperrors.ErrAlreadySubscribed):
		c.JSON(409, dto.APIResponse{Error: detail(dto.ErrorCodeResourceAlreadyExists, "Email already subscribed")})
	case errors.Is(err, apperrors.ErrCampaignAlreadyPublished):
		c.JSON(409, dto.APIResponse{Error: detail(dto.ErrorCodeResourceInvalid, "Campaign already published")})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{Error: detail(dto.ErrorCodeResourceAlreadyExists, "Conflict")})

	case errors.Is(err, apperrors.ErrTerminalForm):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "The final form cannot be promoted; graduate it instead")})
	case errors.Is(err, apperrors.ErrUnknownForm):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Unknown form")})
	case errors.Is(err, apperrors.ErrUnknownPromotionAction):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Unknown promotion action")})
	case errors.Is(err, apperrors.ErrStudentNotGraduated):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Student is not graduated")})
	case errors.Is(err, apperrors.ErrUnknownPosition):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Unknown council position")})
	case errors.Is(err, apperrors.ErrClassMismatch):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Position class does not match the student's class")})
	case errors.Is(err, apperrors.ErrNoRecipients):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Recipient list is empty")})
	case errors.Is(err, apperrors.ErrEventDateMissing):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Events require an event date")})
	case errors.Is(err, apperrors.ErrNoFilesAttached):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "At least one file must be attached")})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeValidationFailed, "Validation failed")})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{Error: detail(dto.ErrorCodeInvalidRequest, "Bad request")})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{Error: detail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{Error: detail(dto.ErrorCodeExpiredToken, "Token expired")})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{Error: detail(dto.ErrorCodeInvalidToken, "Invalid token")})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(403, dto.APIResponse{Error: detail(dto.ErrorCodeForbidden, "Account disabled")})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{Error: detail(dto.ErrorCodeForbidden, "Permission denied")})

	default:
		c.JSON(500, dto.APIResponse{Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")})
	}
}
