package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

type AssistantHandler struct {
	Assistant *services.AssistantService
}

type assistantRequest struct {
	Message string `json:"message"`
}

// POST /api/v1/assistant
func (h *AssistantHandler) Message(c *fiber.Ctx) error {
	var req assistantRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return jsonError(c, fiber.StatusBadRequest, "empty message")
	}
	return c.JSON(fiber.Map{"reply": h.Assistant.Reply(msg)})
}
