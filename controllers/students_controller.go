package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub/models"
	"studenthub/store"
	"studenthub/utils"
)

type StudentsController struct {
	students *store.Gateway[models.Student]
}

func NewStudentsController(db *gorm.DB) *StudentsController {
	return &StudentsController{
		students: store.NewGateway[models.Student](db, store.Descriptor{}),
	}
}

func (sc *StudentsController) List(c *fiber.Ctx) error {
	rows, err := sc.students.List()
	if err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Error fetching students")
	}
	return c.JSON(rows)
}

func (sc *StudentsController) Get(c *fiber.Ctx) error {
	student, err := sc.students.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.Message(c, fiber.StatusInternalServerError, "Error fetching student")
	}
	return c.JSON(student)
}

// Update writes the course field, and attendance with it only when the
// request carries one. There is no existence check: an unknown id is
// reported as success.
func (sc *StudentsController) Update(c *fiber.Ctx) error {
	var input struct {
		Course     string `json:"course"`
		Attendance *int   `json:"attendance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	fields := map[string]any{"course": input.Course}
	if input.Attendance != nil {
		fields["attendance"] = *input.Attendance
	}

	if err := sc.students.Update(c.Params("id"), fields); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database update failed")
	}
	return utils.Message(c, fiber.StatusOK, "Student updated successfully")
}

func (sc *StudentsController) Delete(c *fiber.Ctx) error {
	if err := sc.students.Delete(c.Params("id")); err != nil {
		return utils.Message(c, fiber.StatusInternalServerError, "Database delete failed")
	}
	return utils.Message(c, fiber.StatusOK, "Student deleted successfully")
}
