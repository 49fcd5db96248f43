package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/store"
)

// CreateUserRequest payload
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, 100).Error("Name must be at least 2 characters"),
		),
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email.Error("Email must be a valid email address"),
		),
		validation.Field(
			&r.Age,
			validation.Min(0).Error("Age must be at least 0"),
			validation.Max(150).Error("Age must not exceed 150"),
		),
	)
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	user, err := s.users.Create(c.UserContext(), &store.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(OK(user))
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	users, err := s.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(OK(users))
}
