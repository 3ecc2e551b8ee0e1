package handlers

import (
	"errors"

	"github.com/fittrackhq/fittrack-backend/internal/dto"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/fittrackhq/fittrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RoutineHandler struct {
	routineService *services.RoutineService
}

func NewRoutineHandler(routineService *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// GetRoutines handles GET /api/routines?userId= - full nested equipment and
// steps, steps sorted by order.
func (h *RoutineHandler) GetRoutines(c *fiber.Ctx) error {
	routines, err := h.routineService.ListByUser(c.Query("userId"))
	if err != nil {
		return err
	}

	responses := make([]dto.RoutineResponse, len(routines))
	for i := range routines {
		responses[i] = routineResponse(&routines[i])
	}
	return c.JSON(responses)
}

// CreateRoutine handles POST /api/routines - routine plus children in one
// transaction. Echoes the request body; generated child ids are only visible
// on a subsequent fetch.
func (h *RoutineHandler) CreateRoutine(c *fiber.Ctx) error {
	var req dto.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if _, err := h.routineService.Create(&req); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// UpdateRoutine handles PUT /api/routines/:id - patches scalars and fully
// replaces the step and equipment sets with whatever the body supplies.
func (h *RoutineHandler) UpdateRoutine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	var req dto.UpdateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if _, err := h.routineService.Replace(uint(id), &req); err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return c.JSON(req)
}

// DeleteRoutine handles DELETE /api/routines/:id.
func (h *RoutineHandler) DeleteRoutine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.routineService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return c.JSON(fiber.Map{"message": "Routine deleted"})
}

func routineResponse(r *models.WorkoutRoutine) dto.RoutineResponse {
	equipment := make([]dto.EquipmentResponse, len(r.Equipment))
	for i, item := range r.Equipment {
		equipment[i] = dto.EquipmentResponse{Name: item.Name}
	}

	steps := make([]dto.StepResponse, len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = dto.StepResponse{
			ID:       step.ID,
			Exercise: step.Exercise,
			Reps:     step.Reps,
			Sets:     step.Sets,
			Weight:   step.Weight,
			Order:    step.Order,
		}
	}

	return dto.RoutineResponse{
		ID:        r.ID,
		Name:      r.Name,
		Note:      r.Note,
		Category:  r.Category,
		Equipment: equipment,
		Steps:     steps,
	}
}
