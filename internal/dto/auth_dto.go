package dto

type AuthorizeResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
