package models

import "time"

// Workout is a single logged session. RoutineID is nullable: a workout may be
// free-form or linked to a routine. Deleting a workout never cascades.
type Workout struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     string          `gorm:"size:36;not null;index" json:"user_id"`
	Name       string          `gorm:"size:255" json:"name"`
	Note       string          `gorm:"type:text" json:"note"`
	TimeLength float64         `json:"time_length"`
	Distance   float64         `json:"distance"`
	URL        string          `gorm:"type:text" json:"url"`
	Date       time.Time       `gorm:"type:date" json:"-"`
	Intensity  string          `gorm:"size:50" json:"intensity"`
	RoutineID  *uint           `gorm:"index" json:"routine_id"`
	Routine    *WorkoutRoutine `gorm:"foreignKey:RoutineID" json:"-"`
}
