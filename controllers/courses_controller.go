package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub/models"
	"studenthub/store"
	"studenthub/utils"
)

type CoursesController struct {
	courses *store.Gateway[models.Course]
}

func NewCoursesController(db *gorm.DB) *CoursesController {
	return &CoursesController{
		courses: store.NewGateway[models.Course](db, store.Descriptor{OrderBy: "name"}),
	}
}

func (cc *CoursesController) List(c *fiber.Ctx) error {
	rows, err := cc.courses.List()
	if err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Error fetching courses")
	}
	return c.JSON(rows)
}

func (cc *CoursesController) Create(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	course := models.Course{Name: input.Name, Description: input.Description}
	if err := cc.courses.Create(&course); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return utils.Message(c, fiber.StatusBadRequest, "Course name already exists")
		}
		return utils.Message(c, fiber.StatusInternalServerError, "Database error on course creation")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Course added successfully",
		"insertId": course.ID,
	})
}

func (cc *CoursesController) Update(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	fields := map[string]any{"name": input.Name, "description": input.Description}
	if err := cc.courses.Update(c.Params("id"), fields); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database update failed")
	}
	return utils.Message(c, fiber.StatusOK, "Course updated successfully")
}

func (cc *CoursesController) Delete(c *fiber.Ctx) error {
	if err := cc.courses.Delete(c.Params("id")); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database delete failed")
	}
	return utils.Message(c, fiber.StatusOK, "Course deleted successfully")
}
