package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

// RegisterRequest payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, 100).Error("Name must be at least 2 characters"),
		),
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email.Error("Email must be valid"),
		),
		validation.Field(
			&r.Password,
			validation.Required,
			validation.Length(6, 0).Error("Password must be at least 6 characters"),
		),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email.Error("Email must be valid"),
		),
		validation.Field(
			&r.Password,
			validation.Required.Error("Password is required"),
		),
	)
}

// MeResponse is the identity behind a verified token.
type MeResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	result, err := s.auther.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(OK(result))
}

func (s *Server) login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	result, err := s.auther.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(OK(result))
}

func (s *Server) me(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return auth.ErrMissingAuth
	}

	id, err := claims.AccountID()
	if err != nil {
		// token verified but carries an unusable identifier
		return auth.ErrTokenInvalid
	}

	account, err := s.auther.ResolveIdentity(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(OK(MeResponse{ID: account.ID, Email: account.Email}))
}
