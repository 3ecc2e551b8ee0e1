package dto

type CreateWorkoutRequest struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Note       string  `json:"note"`
	TimeLength float64 `json:"time_length"`
	Distance   float64 `json:"distance"`
	URL        string  `json:"url"`
	Date       string  `json:"date"`
	Intensity  string  `json:"intensity"`
	RoutineID  *uint   `json:"routine_id"`
}

// UpdateWorkoutRequest carries patch-if-present semantics: nil means "keep
// the stored value". An explicit JSON null is indistinguishable from an
// omitted key and is also treated as absent.
type UpdateWorkoutRequest struct {
	UserID     *string  `json:"user_id"`
	Name       *string  `json:"name"`
	Note       *string  `json:"note"`
	TimeLength *float64 `json:"time_length"`
	Distance   *float64 `json:"distance"`
	URL        *string  `json:"url"`
	Date       *string  `json:"date"`
	Intensity  *string  `json:"intensity"`
	RoutineID  *uint    `json:"routine_id"`
}

type RoutineSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type WorkoutResponse struct {
	ID         uint            `json:"id"`
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	Note       string          `json:"note"`
	TimeLength float64         `json:"time_length"`
	Distance   float64         `json:"distance"`
	URL        string          `json:"url"`
	Date       string          `json:"date"`
	Intensity  string          `json:"intensity"`
	RoutineID  *uint           `json:"routine_id"`
	Routine    *RoutineSummary `json:"routine"`
}
