package services

import (
	"errors"
	"fmt"

	"github.com/fittrackhq/fittrack-backend/internal/database"
	"github.com/fittrackhq/fittrack-backend/internal/dto"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"gorm.io/gorm"
)

var ErrRoutineNotFound = errors.New("routine not found")

type RoutineService struct {
	db *gorm.DB
}

func NewRoutineService(db *gorm.DB) *RoutineService {
	return &RoutineService{db: db}
}

// ListByUser returns the user's routines ordered by id, each with equipment
// and steps preloaded, steps sorted by their order column.
func (s *RoutineService) ListByUser(userID string) ([]models.WorkoutRoutine, error) {
	var routines []models.WorkoutRoutine
	err := s.db.Scopes(database.OwnedBy(userID)).
		Preload("Equipment").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Order("id ASC").
		Find(&routines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	return routines, nil
}

// Create inserts a routine together with its initial equipment and steps in
// one transaction.
func (s *RoutineService) Create(req *dto.CreateRoutineRequest) (*models.WorkoutRoutine, error) {
	routine := models.WorkoutRoutine{
		UserID:    req.UserID,
		Name:      req.Name,
		Category:  req.Category,
		Note:      req.Note,
		Equipment: equipmentFromRequest(req.Equipment),
		Steps:     stepsFromRequest(req.Steps),
	}

	if err := s.db.Create(&routine).Error; err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}
	return &routine, nil
}

// Replace patches the routine's scalar fields and swaps its entire child set
// for the one supplied. Omitted equipment or steps lists mean "replace with
// nothing" — this is a destructive replace, not a merge.
func (s *RoutineService) Replace(id uint, req *dto.UpdateRoutineRequest) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	if err := s.db.First(&routine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("failed to load routine: %w", err)
	}

	if req.Name != nil {
		routine.Name = *req.Name
	}
	if req.Category != nil {
		routine.Category = *req.Category
	}
	if req.Note != nil {
		routine.Note = *req.Note
	}

	newEquipment := equipmentFromRequest(req.Equipment)
	newSteps := stepsFromRequest(req.Steps)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&routine).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.Equipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.RoutineStep{}).Error; err != nil {
			return err
		}
		for i := range newEquipment {
			newEquipment[i].RoutineID = routine.ID
		}
		if len(newEquipment) > 0 {
			if err := tx.Create(&newEquipment).Error; err != nil {
				return err
			}
		}
		for i := range newSteps {
			newSteps[i].RoutineID = routine.ID
		}
		if len(newSteps) > 0 {
			if err := tx.Create(&newSteps).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace routine: %w", err)
	}

	routine.Equipment = newEquipment
	routine.Steps = newSteps
	return &routine, nil
}

// Delete removes a routine and its owned children. Workouts pointing at the
// routine are unlinked (routine_id set to NULL) rather than deleted.
func (s *RoutineService) Delete(id uint) error {
	var routine models.WorkoutRoutine
	if err := s.db.First(&routine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoutineNotFound
		}
		return fmt.Errorf("failed to load routine: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Workout{}).
			Where("routine_id = ?", routine.ID).
			Update("routine_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.Equipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.RoutineStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&routine).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}
	return nil
}

func equipmentFromRequest(items []dto.EquipmentRequest) []models.Equipment {
	equipment := make([]models.Equipment, 0, len(items))
	for _, item := range items {
		equipment = append(equipment, models.Equipment{Name: item.Name})
	}
	return equipment
}

func stepsFromRequest(items []dto.StepRequest) []models.RoutineStep {
	steps := make([]models.RoutineStep, 0, len(items))
	for _, item := range items {
		steps = append(steps, models.RoutineStep{
			Exercise: item.Exercise,
			Reps:     item.Reps,
			Sets:     item.Sets,
			Weight:   item.Weight,
			Order:    item.Order,
		})
	}
	return steps
}
