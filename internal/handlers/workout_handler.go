package handlers

import (
	"errors"

	"github.com/fittrackhq/fittrack-backend/internal/dto"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/fittrackhq/fittrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WorkoutHandler struct {
	workoutService *services.WorkoutService
}

func NewWorkoutHandler(workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// GetWorkouts handles GET /api/workouts?userId= - lists the user's workouts
// with a nested routine summary where one is linked.
func (h *WorkoutHandler) GetWorkouts(c *fiber.Ctx) error {
	workouts, err := h.workoutService.ListByUser(c.Query("userId"))
	if err != nil {
		return err
	}

	responses := make([]dto.WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = workoutResponse(&workouts[i])
	}
	return c.JSON(responses)
}

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	var req dto.CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	workout, err := h.workoutService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format. Expected format: YYYY-MM-DD",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(workoutResponse(workout))
}

// UpdateWorkout handles PUT /api/workouts/:id - patch-if-present on every
// field. Responds 201 on success, which existing clients depend on.
func (h *WorkoutHandler) UpdateWorkout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	var req dto.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	workout, err := h.workoutService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Workout not found",
			})
		}
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format. Expected format: YYYY-MM-DD",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(workoutResponse(workout))
}

// DeleteWorkout handles DELETE /api/delete-workout/:id.
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.workoutService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Workout not found!",
			})
		}
		return err
	}

	return c.JSON(fiber.Map{"message": "Workout deleted successfully!"})
}

func workoutResponse(w *models.Workout) dto.WorkoutResponse {
	resp := dto.WorkoutResponse{
		ID:         w.ID,
		UserID:     w.UserID,
		Name:       w.Name,
		Note:       w.Note,
		TimeLength: w.TimeLength,
		Distance:   w.Distance,
		URL:        w.URL,
		Date:       w.Date.Format(services.DateLayout),
		Intensity:  w.Intensity,
		RoutineID:  w.RoutineID,
	}
	if w.Routine != nil {
		resp.Routine = &dto.RoutineSummary{
			ID:       w.Routine.ID,
			Name:     w.Routine.Name,
			Category: w.Routine.Category,
		}
	}
	return resp
}
