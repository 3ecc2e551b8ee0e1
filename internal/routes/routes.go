package routes

import (
	"github.com/fittrackhq/fittrack-backend/internal/config"
	"github.com/fittrackhq/fittrack-backend/internal/handlers"
	"github.com/fittrackhq/fittrack-backend/internal/middleware"
	"github.com/fittrackhq/fittrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	workoutHandler *handlers.WorkoutHandler,
	routineHandler *handlers.RoutineHandler,
	healthHandler *handlers.HealthHandler,
	jwks *services.JWKSClient,
) {
	// Token exchange is always public.
	app.Post("/authorize", authHandler.Authorize)

	api := app.Group("/api")

	// Health before the auth gate so probes never need a token.
	api.Get("/health", healthHandler.Check)

	if cfg.AuthEnforce {
		api.Use(middleware.BearerProtected(jwks))
	}

	api.Get("/workouts", workoutHandler.GetWorkouts)
	api.Post("/workouts", workoutHandler.CreateWorkout)
	api.Put("/workouts/:id", workoutHandler.UpdateWorkout)
	api.Delete("/delete-workout/:id", workoutHandler.DeleteWorkout)

	api.Get("/routines", routineHandler.GetRoutines)
	api.Post("/routines", routineHandler.CreateRoutine)
	api.Put("/routines/:id", routineHandler.UpdateRoutine)
	api.Delete("/routines/:id", routineHandler.DeleteRoutine)
}
