package domain

import "time"

// Answer es una respuesta Likert (1-5) a una pregunta del banco.
// Se persiste una sola vez por pregunta y sesion; nunca se actualiza.
type Answer struct {
	SessionID  string    `json:"session_id"`
	QuestionID string    `json:"question_id"`
	Score      int       `json:"score"`
	AnsweredAt time.Time `json:"answered_at"`
}
