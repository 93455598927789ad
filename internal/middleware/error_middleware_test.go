package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"council member not found", apperrors.ErrCouncilMemberNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"duplicate admission number", apperrors.ErrAdmissionNoExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"already subscribed", apperrors.ErrAlreadySubscribed, 409, dto.ErrorCodeResourceAlreadyExists},
		{"campaign already published", apperrors.ErrCampaignAlreadyPublished, 409, dto.ErrorCodeResourceInvalid},
		{"terminal form", apperrors.ErrTerminalForm, 400, dto.ErrorCodeValidationFailed},
		{"class mismatch", apperrors.ErrClassMismatch, 400, dto.ErrorCodeValidationFailed},
		{"no recipients", apperrors.ErrNoRecipients, 400, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"disabled account", apperrors.ErrAccountDisabled, 403, dto.ErrorCodeForbidden},
		{"unknown error", assert.AnError, 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorWrappedCustomMessage(t *testing.T) {
	err := apperrors.NewValidationError("admission number must look like ADM1042")

	status, body := handleError(t, err)

	assert.Equal(t, 400, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "admission number must look like ADM1042", body.Error.Message)
}
