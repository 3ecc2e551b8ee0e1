package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack-backend/internal/database"
	"github.com/fittrackhq/fittrack-backend/internal/dto"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"gorm.io/gorm"
)

// DateLayout is the only accepted wire format for workout dates.
const DateLayout = "2006-01-02"

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidDate     = errors.New("invalid date format")
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// ListByUser returns the user's workouts ordered by id ascending, with the
// linked routine preloaded for the summary serializer.
func (s *WorkoutService) ListByUser(userID string) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Scopes(database.OwnedBy(userID)).
		Preload("Routine").
		Order("id ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// Create inserts a workout. An empty date defaults to today; anything else
// must parse as YYYY-MM-DD.
func (s *WorkoutService) Create(req *dto.CreateWorkoutRequest) (*models.Workout, error) {
	// Default to today's UTC date so the stored value and its YYYY-MM-DD
	// rendering agree regardless of the server's zone.
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		parsed, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	workout := models.Workout{
		UserID:     req.UserID,
		Name:       req.Name,
		Note:       req.Note,
		TimeLength: req.TimeLength,
		Distance:   req.Distance,
		URL:        req.URL,
		Date:       date,
		Intensity:  req.Intensity,
		RoutineID:  req.RoutineID,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return &workout, nil
}

// Update patches the fields present in req onto an existing workout. Omitted
// fields keep their stored values.
func (s *WorkoutService) Update(id uint, req *dto.UpdateWorkoutRequest) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to load workout: %w", err)
	}

	if req.Date != nil {
		parsed, err := time.Parse(DateLayout, *req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		workout.Date = parsed
	}
	if req.UserID != nil {
		workout.UserID = *req.UserID
	}
	if req.Name != nil {
		workout.Name = *req.Name
	}
	if req.Note != nil {
		workout.Note = *req.Note
	}
	if req.TimeLength != nil {
		workout.TimeLength = *req.TimeLength
	}
	if req.Distance != nil {
		workout.Distance = *req.Distance
	}
	if req.URL != nil {
		workout.URL = *req.URL
	}
	if req.Intensity != nil {
		workout.Intensity = *req.Intensity
	}
	if req.RoutineID != nil {
		workout.RoutineID = req.RoutineID
	}

	if err := s.db.Save(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return &workout, nil
}

func (s *WorkoutService) Delete(id uint) error {
	result := s.db.Delete(&models.Workout{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
