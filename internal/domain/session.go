package domain

import "time"

const (
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

// TestSession representa un intento del cuestionario de un usuario.
// Acumula respuestas inmutables y, al completarse, exactamente un TestResult.
type TestSession struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
