package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub/models"
	"studenthub/store"
	"studenthub/utils"
)

type AssignmentsController struct {
	assignments *store.Gateway[models.Assignment]
}

func NewAssignmentsController(db *gorm.DB) *AssignmentsController {
	return &AssignmentsController{
		assignments: store.NewGateway[models.Assignment](db, store.Descriptor{OrderBy: "due_date"}),
	}
}

func (ac *AssignmentsController) List(c *fiber.Ctx) error {
	rows, err := ac.assignments.List()
	if err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Error fetching assignments")
	}
	return c.JSON(rows)
}

func (ac *AssignmentsController) Create(c *fiber.Ctx) error {
	var input struct {
		CourseName  string `json:"courseName"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	assignment := models.Assignment{
		CourseName:  input.CourseName,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	}
	if err := ac.assignments.Create(&assignment); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database error on assignment creation")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Assignment added successfully",
		"insertId": assignment.ID,
	})
}

func (ac *AssignmentsController) Update(c *fiber.Ctx) error {
	var input struct {
		CourseName  string `json:"courseName"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	fields := map[string]any{
		"course_name": input.CourseName,
		"title":       input.Title,
		"description": input.Description,
		"due_date":    input.DueDate,
	}
	if err := ac.assignments.Update(c.Params("id"), fields); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database update failed")
	}
	return utils.Message(c, fiber.StatusOK, "Assignment updated successfully")
}

func (ac *AssignmentsController) Delete(c *fiber.Ctx) error {
	if err := ac.assignments.Delete(c.Params("id")); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database delete failed")
	}
	return utils.Message(c, fiber.StatusOK, "Assignment deleted successfully")
}
