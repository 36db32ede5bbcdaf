package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/app/services"
	"github.com/sparta/academy/internal/middleware"
)

// TrainerController handles trainer-related endpoints
type TrainerController struct {
	trainerService services.TrainerService
	trainerMapper  *mappers.TrainerMapper
}

// NewTrainerController creates a new TrainerController
func NewTrainerController(trainerService services.TrainerService, trainerMapper *mappers.TrainerMapper) *TrainerController {
	return &TrainerController{
		trainerService: trainerService,
		trainerMapper:  trainerMapper,
	}
}

// GetAllTrainers retrieves all trainers
// @Summary Get all trainers
// @Description Retrieves a list of all trainers
// @Tags trainers
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TrainerRecord} "Trainers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers [get]
func (c *TrainerController) GetAllTrainers(ctx *gin.Context) {
	trainers, err := c.trainerService.GetAllTrainers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trainers))
}

// GetTrainerByID retrieves a trainer by ID
// @Summary Get trainer by ID
// @Description Retrieves a specific trainer by its ID
// @Tags trainers
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} dto.APIResponse{data=dto.TrainerRecord} "Trainer retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid trainer ID"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [get]
func (c *TrainerController) GetTrainerByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	trainer, err := c.trainerService.GetTrainerByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trainer))
}

// CreateTrainer handles trainer creation
// @Summary Create a new trainer
// @Description Creates a new trainer with the provided information
// @Tags trainers
// @Accept json
// @Produce json
// @Param request body dto.TrainerRecord true "Trainer information"
// @Success 201 {object} dto.APIResponse{data=dto.TrainerRecord} "Trainer created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers [post]
func (c *TrainerController) CreateTrainer(ctx *gin.Context) {
	var record dto.TrainerRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid trainer data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Identifiers are server-assigned on creation
	record.ID = 0

	created, err := c.trainerService.CreateTrainer(ctx, c.trainerMapper.ToEntity(&record))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateTrainer updates an existing trainer
// @Summary Update a trainer
// @Description Overwrites an existing trainer with the provided information
// @Tags trainers
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Param request body dto.TrainerRecord true "Updated trainer information"
// @Success 200 {object} dto.APIResponse{data=dto.TrainerRecord} "Trainer updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [put]
func (c *TrainerController) UpdateTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	var record dto.TrainerRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid trainer data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.trainerService.UpdateTrainer(ctx, id, c.trainerMapper.ToEntity(&record))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteTrainer deletes a trainer
// @Summary Delete a trainer
// @Description Deletes an existing trainer by its ID
// @Tags trainers
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 204 "Trainer deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid trainer ID"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 409 {object} dto.ErrorResponse "Trainer still has assigned courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [delete]
func (c *TrainerController) DeleteTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	deleted, err := c.trainerService.DeleteTrainerByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Deleting an absent trainer is not a service error, but the API
	// reports it as not found.
	if !deleted {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Trainer not found with ID: "+strconv.FormatInt(id, 10))
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, writing a 400 response on failure
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(message)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
