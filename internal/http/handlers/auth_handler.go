package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, u, err := h.Auth.Login(email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"token": token, "user": u})
}

// GET /api/v1/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PUT /api/v1/me
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	name, okName := validate.Name(req.Name)
	email, okEmail := validate.Email(req.Email)
	if !okName || !okEmail {
		return jsonError(c, fiber.StatusBadRequest, "invalid name or email")
	}

	u := currentUser(c)
	updated, err := h.Auth.UpdateProfile(u.ID, name, email)
	if err != nil {
		applog.Error(c, "auth.profile.update.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not update profile")
	}
	applog.Audit(c, "auth.profile.update", map[string]any{"user": u.ID})
	return c.JSON(updated)
}
