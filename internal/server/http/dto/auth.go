package dto

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports the outcome of a login attempt.
type LoginResponse struct {
	Status  string `json:"status"`
	UserID  int64  `json:"user_id,omitempty"`
	Message string `json:"message,omitempty"`
}
