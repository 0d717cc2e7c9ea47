package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub/store"
	"studenthub/utils"
)

type AuthController struct {
	Accounts *store.Accounts
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Accounts: store.NewAccounts(db)}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Username        string   `json:"username"`
		Email           string   `json:"email"`
		Password        string   `json:"password"`
		Role            string   `json:"role"`
		SelectedCourses []string `json:"selectedCourses"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Role == "admin" {
		if _, err := ac.Accounts.RegisterAdmin(input.Username, input.Email, input.Password); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return utils.Message(c, fiber.StatusBadRequest, "Email already exists")
			}
			return utils.Message(c, fiber.StatusInternalServerError, "Database error")
		}
		return utils.Message(c, fiber.StatusCreated, "Admin Registration Successful")
	}

	student, err := ac.Accounts.RegisterStudent(input.Username, input.Email, input.Password, input.SelectedCourses)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return utils.Message(c, fiber.StatusBadRequest, "Email already exists")
		}
		return utils.Message(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student Registration Successful",
		"id":      student.ID,
		"role":    "student",
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		UsernameOrEmail string `json:"usernameOrEmail"`
		Password        string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	result, err := ac.Accounts.Authenticate(input.UsernameOrEmail, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return utils.Message(c, fiber.StatusUnauthorized, "Invalid Credentials")
		}
		return utils.Message(c, fiber.StatusInternalServerError, "DB error")
	}

	// The matched row is keyed "student" for both roles; the frontend
	// reads it under that name.
	return c.JSON(fiber.Map{
		"message":  "Login Successful",
		"username": result.Username,
		"role":     result.Role,
		"student":  result.Record,
	})
}
