package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
)

// EmployeesHandler exposes employee CRUD endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// ListRegular handles GET /api/employees/regular.
func (h *EmployeesHandler) ListRegular(c *fiber.Ctx) error {
	return h.list(c, domain.EmployeeTypeRegular)
}

// ListContractual handles GET /api/employees/contractual.
func (h *EmployeesHandler) ListContractual(c *fiber.Ctx) error {
	return h.list(c, domain.EmployeeTypeContractual)
}

func (h *EmployeesHandler) list(c *fiber.Ctx, variant domain.EmployeeType) error {
	employees, err := h.employees.List(c.UserContext(), variant)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponses(employees)})
}

// ListAll handles GET /api/employees/.
func (h *EmployeesHandler) ListAll(c *fiber.Ctx) error {
	employees, err := h.employees.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponses(employees)})
}

// Get handles GET /api/employees/:id. The lookup spans both collections.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	employee, err := h.employees.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Create handles POST /api/employees/.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.employees.Create(c.UserContext(),
		domain.EmployeeType(req.TypeOfEmployee), createInput(req.Employee))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Update handles PUT /api/employees/:id with partial-update semantics.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.employees.Update(c.UserContext(),
		domain.EmployeeType(req.TypeOfEmployee), c.Params("id"), updateInput(req.Employee))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Delete handles DELETE /api/employees/:id?type_of_employee=...
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	variant := c.Query("type_of_employee")
	if err := h.employees.Delete(c.UserContext(), domain.EmployeeType(variant), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func createInput(payload dto.EmployeePayload) service.CreateEmployeeInput {
	input := service.CreateEmployeeInput{
		NumberOfLeaves:  payload.NumberOfLeaves,
		Benefits:        payload.Benefits,
		ContractEndDate: payload.ContractEndDate,
		Project:         payload.Project,
	}
	if payload.FirstName != nil {
		input.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		input.LastName = *payload.LastName
	}
	if payload.Email != nil {
		input.Email = *payload.Email
	}
	return input
}

func updateInput(payload dto.EmployeePayload) service.UpdateEmployeeInput {
	return service.UpdateEmployeeInput{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		NumberOfLeaves:  payload.NumberOfLeaves,
		Benefits:        payload.Benefits,
		ContractEndDate: payload.ContractEndDate,
		Project:         payload.Project,
	}
}
