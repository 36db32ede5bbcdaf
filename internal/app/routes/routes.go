package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sparta/academy/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	trainerController *controllers.TrainerController,
	courseController *controllers.CourseController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Trainer routes
	trainers := v1.Group("/trainers")
	{
		trainers.GET("", trainerController.GetAllTrainers)
		trainers.GET("/:id", trainerController.GetTrainerByID)
		trainers.POST("", trainerController.CreateTrainer)
		trainers.PUT("/:id", trainerController.UpdateTrainer)
		trainers.DELETE("/:id", trainerController.DeleteTrainer)

		// Reverse lookup of a trainer's courses goes through the course
		// service; the trainer entity never enumerates its courses.
		trainers.GET("/:id/courses", courseController.GetCoursesByTrainer)
		trainers.GET("/:id/courses/upcoming", courseController.GetUpcomingCoursesByTrainer)
		trainers.GET("/:id/courses/count", courseController.CountCoursesByTrainer)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/title-taken", courseController.CheckCourseTitle)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}
