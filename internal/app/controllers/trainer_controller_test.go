package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/pkg/apperrors"
)

// stubTrainerService records the arguments the controller passes down and
// returns canned results.
type stubTrainerService struct {
	trainers  map[int64]*models.Trainer
	lastSaved *models.Trainer
}

func newStubTrainerService() *stubTrainerService {
	return &stubTrainerService{trainers: make(map[int64]*models.Trainer)}
}

func (s *stubTrainerService) GetAllTrainers(ctx context.Context) ([]dto.TrainerRecord, error) {
	records := make([]dto.TrainerRecord, 0, len(s.trainers))
	for _, t := range s.trainers {
		records = append(records, dto.TrainerRecord{ID: t.ID, FullName: t.FullName})
	}
	return records, nil
}

func (s *stubTrainerService) GetTrainerByID(ctx context.Context, id int64) (*dto.TrainerRecord, error) {
	t, ok := s.trainers[id]
	if !ok {
		return nil, apperrors.NewTrainerNotFoundError(id)
	}
	return &dto.TrainerRecord{ID: t.ID, FullName: t.FullName}, nil
}

func (s *stubTrainerService) CreateTrainer(ctx context.Context, trainer *models.Trainer) (*dto.TrainerRecord, error) {
	s.lastSaved = trainer
	trainer.ID = 1
	s.trainers[trainer.ID] = trainer
	return &dto.TrainerRecord{ID: trainer.ID, FullName: trainer.FullName}, nil
}

func (s *stubTrainerService) UpdateTrainer(ctx context.Context, id int64, trainer *models.Trainer) (*dto.TrainerRecord, error) {
	if _, ok := s.trainers[id]; !ok {
		return nil, apperrors.NewTrainerNotFoundError(id)
	}
	trainer.ID = id
	s.trainers[id] = trainer
	s.lastSaved = trainer
	return &dto.TrainerRecord{ID: id, FullName: trainer.FullName}, nil
}

func (s *stubTrainerService) DeleteTrainerByID(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.trainers[id]; !ok {
		return false, nil
	}
	delete(s.trainers, id)
	return true, nil
}

func newTrainerRouter(service *stubTrainerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTrainerController(service, mappers.NewTrainerMapper())

	router := gin.New()
	trainers := router.Group("/api/v1/trainers")
	{
		trainers.GET("", controller.GetAllTrainers)
		trainers.GET("/:id", controller.GetTrainerByID)
		trainers.POST("", controller.CreateTrainer)
		trainers.PUT("/:id", controller.UpdateTrainer)
		trainers.DELETE("/:id", controller.DeleteTrainer)
	}
	return router
}

func TestCreateTrainer_IgnoresClientAssignedID(t *testing.T) {
	service := newStubTrainerService()
	router := newTrainerRouter(service)

	body := `{"id": 55, "fullName": "John Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	// the incoming identifier never reaches the service
	require.NotNil(t, service.lastSaved)
	assert.Equal(t, "John Doe", service.lastSaved.FullName)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
}

func TestGetTrainerByID_InvalidID(t *testing.T) {
	router := newTrainerRouter(newStubTrainerService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestGetTrainerByID_NotFound(t *testing.T) {
	router := newTrainerRouter(newStubTrainerService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Trainer not found with ID: 42")
}

func TestDeleteTrainer_PresentThenAbsent(t *testing.T) {
	service := newStubTrainerService()
	service.trainers[3] = &models.Trainer{ID: 3, FullName: "Jane Smith"}
	router := newTrainerRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trainers/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/trainers/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Trainer not found with ID: 3")
}

func TestGetAllTrainers_EmptyListBody(t *testing.T) {
	router := newTrainerRouter(newStubTrainerService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
