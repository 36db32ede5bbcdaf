package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHandleAPIError_BadRequest(t *testing.T) {
	w := performWithError(t, apperrors.NewBadRequestError("Course title cannot be empty"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Course title cannot be empty", detail.Message)
}

func TestHandleAPIError_NotFound(t *testing.T) {
	w := performWithError(t, apperrors.NewTrainerNotFoundError(7))

	assert.Equal(t, http.StatusNotFound, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, detail.Code)
	assert.Equal(t, "Trainer not found with ID: 7", detail.Message)
}

func TestHandleAPIError_CourseNotFound(t *testing.T) {
	w := performWithError(t, apperrors.NewCourseNotFoundError(13))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "13")
}

func TestHandleAPIError_Conflict(t *testing.T) {
	w := performWithError(t, apperrors.NewConflictError("Trainer already exists"))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleAPIError_UnknownErrorIsOpaque(t *testing.T) {
	w := performWithError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
	// internal details never leak to clients
	assert.Equal(t, "Internal server error", detail.Message)
}
