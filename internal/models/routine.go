package models

// WorkoutRoutine is a reusable exercise template owned by a user. Steps and
// Equipment are owned children: routine deletion removes them, and routine
// updates replace them wholesale rather than diffing.
type WorkoutRoutine struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    string        `gorm:"size:36;not null;index" json:"user_id"`
	Name      string        `gorm:"size:255" json:"name"`
	Category  string        `gorm:"size:100" json:"category"`
	Note      string        `gorm:"type:text" json:"note"`
	Steps     []RoutineStep `gorm:"foreignKey:RoutineID" json:"steps"`
	Equipment []Equipment   `gorm:"foreignKey:RoutineID" json:"equipment"`
}

// RoutineStep is one exercise entry within a routine. Order is a sort key
// only; it is not required to be unique or contiguous.
type RoutineStep struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RoutineID uint   `gorm:"not null;index" json:"-"`
	Exercise  string `gorm:"size:255;not null" json:"exercise"`
	Reps      int    `json:"reps"`
	Sets      int    `json:"sets"`
	// Weight is free text so clients can express units and ranges ("20kg", "BW").
	Weight string `gorm:"size:100" json:"weight"`
	Order  int    `gorm:"column:step_order" json:"order"`
}

// Equipment is a named item required by a routine.
type Equipment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RoutineID uint   `gorm:"not null;index" json:"-"`
	Name      string `gorm:"size:255" json:"name"`
}
