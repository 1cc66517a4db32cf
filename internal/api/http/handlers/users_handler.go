package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tweetapp/tweet-service/internal/api/dto"
	"github.com/tweetapp/tweet-service/internal/auth"
	"github.com/tweetapp/tweet-service/internal/service"
	apperrors "github.com/tweetapp/tweet-service/pkg/util/errorutil"
)

// UsersHandler exposes the account endpoints.
type UsersHandler struct {
	users  *service.UserService
	tokens *auth.TokenManager
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, tokens *auth.TokenManager) *UsersHandler {
	return &UsersHandler{users: userService, tokens: tokens}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Register(c.UserContext(), service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		DateOfBirth:     req.DateOfBirth,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user)},
	})
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("Incorrect Username or Password")
		}
		return err
	}

	token, exp, err := h.tokens.GenerateToken(user.Email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.users.Logout(c.UserContext(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// ResetPassword handles POST /auth/password/reset. Unauthenticated,
// gated only on the email existing.
func (h *UsersHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := h.users.ResetPassword(c.UserContext(), req.Email, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return apperrors.NewNotFound("email", fiber.Map{"email": req.Email})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"password_updated": true}})
}

// ChangePassword handles POST /auth/password/change for the
// authenticated user, gated on the old password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := h.users.ChangePassword(c.UserContext(), user, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return apperrors.NewUnauthorized("wrong password")
		}
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"password_updated": true}})
}

// List handles GET /users, enumerating accounts for the
// tweets-of-a-user picker.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": out}})
}
