package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub/controllers"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)

	studentsController := controllers.NewStudentsController(db)
	app.Get("/api/students", studentsController.List)
	app.Get("/api/students/:id", studentsController.Get)
	app.Put("/api/students/:id", studentsController.Update)
	app.Delete("/api/students/:id", studentsController.Delete)

	coursesController := controllers.NewCoursesController(db)
	app.Get("/api/courses", coursesController.List)
	app.Post("/api/courses", coursesController.Create)
	app.Put("/api/courses/:id", coursesController.Update)
	app.Delete("/api/courses/:id", coursesController.Delete)

	assignmentsController := controllers.NewAssignmentsController(db)
	app.Get("/api/assignments", assignmentsController.List)
	app.Post("/api/assignments", assignmentsController.Create)
	app.Put("/api/assignments/:id", assignmentsController.Update)
	app.Delete("/api/assignments/:id", assignmentsController.Delete)
}
