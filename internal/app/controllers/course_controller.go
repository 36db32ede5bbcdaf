package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/app/services"
	"github.com/sparta/academy/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService services.CourseService
	courseMapper  *mappers.CourseMapper
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, courseMapper *mappers.CourseMapper) *CourseController {
	return &CourseController{
		courseService: courseService,
		courseMapper:  courseMapper,
	}
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseRecord} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseRecord} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course ID must be a valid number")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course referencing an existing trainer
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRecord true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseRecord} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var record dto.CourseRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Identifiers are server-assigned on creation
	record.ID = 0

	created, err := c.courseService.CreateCourse(ctx, c.courseMapper.ToEntity(&record))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Overwrites title, description, enroll date and trainer of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CourseRecord true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseRecord} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Course or trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course ID must be a valid number")
	if !ok {
		return
	}

	var record dto.CourseRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.courseService.UpdateCourse(ctx, id, c.courseMapper.ToEntity(&record))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes an existing course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 204 "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course ID must be a valid number")
	if !ok {
		return
	}

	deleted, err := c.courseService.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !deleted {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found with ID: "+strconv.FormatInt(id, 10))
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCoursesByTrainer lists all courses owned by a trainer
// @Summary List a trainer's courses
// @Description Retrieves all courses belonging to a specific trainer
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseRecord} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid trainer ID"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id}/courses [get]
func (c *CourseController) GetCoursesByTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByTrainerID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetUpcomingCoursesByTrainer lists a trainer's courses enrolling after a date
// @Summary List a trainer's upcoming courses
// @Description Retrieves a trainer's courses with an enroll date after the given date (defaults to today)
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Param after query string false "Cut-off date (2006-01-02)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseRecord} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id}/courses/upcoming [get]
func (c *CourseController) GetUpcomingCoursesByTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	var after models.Date
	if afterStr := ctx.Query("after"); afterStr != "" {
		parsed, err := models.ParseDate(afterStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid after parameter")
			errorDetail = errorDetail.WithDetails("Date must use format " + models.DateLayout)
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		after = parsed
	}

	courses, err := c.courseService.GetUpcomingCoursesByTrainerID(ctx, id, after)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// CountCoursesByTrainer counts a trainer's courses
// @Summary Count a trainer's courses
// @Description Returns how many courses a trainer owns
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseCountResponse} "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid trainer ID"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id}/courses/count [get]
func (c *CourseController) CountCoursesByTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Trainer ID must be a valid number")
	if !ok {
		return
	}

	count, err := c.courseService.CountCoursesByTrainerID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseCountResponse{TrainerID: id, Count: count}))
}

// SearchCourses searches courses by title or description substring
// @Summary Search courses
// @Description Retrieves courses whose title or description contains the given substring
// @Tags courses
// @Accept json
// @Produce json
// @Param title query string false "Title substring"
// @Param description query string false "Description substring"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseRecord} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing search parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	title := ctx.Query("title")
	description := ctx.Query("description")

	var (
		courses []dto.CourseRecord
		err     error
	)
	switch {
	case title != "":
		courses, err = c.courseService.SearchCoursesByTitle(ctx, title)
	case description != "":
		courses, err = c.courseService.SearchCoursesByDescription(ctx, description)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Either title or description query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// CheckCourseTitle reports whether a course title is already taken
// @Summary Check course title availability
// @Description Reports whether a course with the given title exists, ignoring case
// @Tags courses
// @Accept json
// @Produce json
// @Param title query string true "Course title"
// @Success 200 {object} dto.APIResponse{data=dto.TitleTakenResponse} "Check performed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing title parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/title-taken [get]
func (c *CourseController) CheckCourseTitle(ctx *gin.Context) {
	title := ctx.Query("title")

	taken, err := c.courseService.IsTitleTaken(ctx, title)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TitleTakenResponse{Title: title, Taken: taken}))
}
