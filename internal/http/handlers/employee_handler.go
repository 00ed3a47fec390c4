package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/validate"
)

type EmployeeHandler struct {
	Employees *repos.EmployeeRepo
}

// GET /api/v1/admin/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.Employees.List()
	if err != nil {
		applog.Error(c, "employees.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load employees")
	}
	return c.JSON(fiber.Map{"employees": employees})
}

// POST /api/v1/admin/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var e domain.Employee
	if err := c.BodyParser(&e); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	name, okName := validate.Name(e.Name)
	email, okEmail := validate.Email(e.Email)
	if !okName || !okEmail {
		return jsonError(c, fiber.StatusBadRequest, "invalid name or email")
	}
	e.ID = uuid.NewString()
	e.Name, e.Email = name, email
	if e.Status == "" {
		e.Status = "ACTIVE"
	}
	e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := h.Employees.Create(&e); err != nil {
		applog.Error(c, "employees.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not create employee")
	}
	applog.Audit(c, "employees.create", map[string]any{"employee": e.ID})
	return c.Status(fiber.StatusCreated).JSON(e)
}

// PUT /api/v1/admin/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var e domain.Employee
	if err := c.BodyParser(&e); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	e.ID = c.Params("id")
	if _, ok := validate.Name(e.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}
	if err := h.Employees.Update(&e); err != nil {
		applog.Error(c, "employees.update.fail", err, map[string]any{"employee": e.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not update employee")
	}
	applog.Audit(c, "employees.update", map[string]any{"employee": e.ID})
	return c.JSON(e)
}

// DELETE /api/v1/admin/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Employees.Delete(id); err != nil {
		applog.Error(c, "employees.delete.fail", err, map[string]any{"employee": id})
		return jsonError(c, fiber.StatusBadRequest, "could not delete employee")
	}
	applog.Audit(c, "employees.delete", map[string]any{"employee": id})
	return c.SendStatus(fiber.StatusNoContent)
}
