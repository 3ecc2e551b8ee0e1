package dto

type EquipmentRequest struct {
	Name string `json:"name"`
}

type StepRequest struct {
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
	Weight   string `json:"weight"`
	Order    int    `json:"order"`
}

type CreateRoutineRequest struct {
	UserID    string             `json:"user_id"`
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Note      string             `json:"note"`
	Equipment []EquipmentRequest `json:"equipment"`
	Steps     []StepRequest      `json:"steps"`
}

// UpdateRoutineRequest patches scalar fields if present, while Equipment and
// Steps always replace the stored children: an omitted list means "replace
// with nothing", not "keep".
type UpdateRoutineRequest struct {
	Name      *string            `json:"name"`
	Category  *string            `json:"category"`
	Note      *string            `json:"note"`
	Equipment []EquipmentRequest `json:"equipment"`
	Steps     []StepRequest      `json:"steps"`
}

type EquipmentResponse struct {
	Name string `json:"name"`
}

type StepResponse struct {
	ID       uint   `json:"id"`
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
	Weight   string `json:"weight"`
	Order    int    `json:"order"`
}

type RoutineResponse struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	Note      string              `json:"note"`
	Category  string              `json:"category"`
	Equipment []EquipmentResponse `json:"equipment"`
	Steps     []StepResponse      `json:"steps"`
}
