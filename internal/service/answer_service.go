package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
	"bigfive-api/internal/email"
	"bigfive-api/internal/repository"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionCompleted  = errors.New("session already completed")
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrAnswerNotSaved    = errors.New("answer not saved")
	ErrIncompleteSession = errors.New("session incomplete")
)

const (
	answerSaveAttempts = 3
	answerSaveDelay    = 300 * time.Millisecond
)

// AnswerService coordina la captura de respuestas y el cierre de una sesion.
type AnswerService struct {
	logger      *zap.Logger
	sessions    repository.SessionRepository
	answers     repository.AnswerRepository
	results     repository.ResultRepository
	users       repository.UserRepository
	emailSender email.Sender

	// inyectable en tests para no dormir de verdad
	sleep func(time.Duration)
}

func NewAnswerService(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	answers repository.AnswerRepository,
	results repository.ResultRepository,
	users repository.UserRepository,
	emailSender email.Sender,
) *AnswerService {
	return &AnswerService{
		logger:      logger,
		sessions:    sessions,
		answers:     answers,
		results:     results,
		users:       users,
		emailSender: emailSender,
		sleep:       time.Sleep,
	}
}

// SubmitAnswer valida y persiste una respuesta con reintentos acotados.
// Si los reintentos se agotan la respuesta NO queda guardada y el caller no
// debe avanzar a la siguiente pregunta.
func (s *AnswerService) SubmitAnswer(ctx context.Context, sessionID, questionID string, score int) error {
	if _, ok := bigfive.QuestionByID(questionID); !ok {
		return fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, questionID)
	}
	if score < bigfive.MinAnswer || score > bigfive.MaxAnswer {
		return fmt.Errorf("%w: score %d out of range", ErrInvalidAnswer, score)
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status == domain.SessionStatusCompleted {
		return ErrSessionCompleted
	}

	answer := domain.Answer{
		SessionID:  sessionID,
		QuestionID: questionID,
		Score:      score,
		AnsweredAt: time.Now().UTC(),
	}
	return s.saveWithRetry(ctx, answer)
}

func (s *AnswerService) saveWithRetry(ctx context.Context, answer domain.Answer) error {
	var lastErr error
	for attempt := 1; attempt <= answerSaveAttempts; attempt++ {
		lastErr = s.answers.Create(ctx, answer)
		if lastErr == nil {
			return nil
		}
		s.logger.Warn("answer save failed",
			zap.Error(lastErr),
			zap.String("session_id", answer.SessionID),
			zap.String("question_id", answer.QuestionID),
			zap.Int("attempt", attempt),
		)
		if attempt < answerSaveAttempts {
			s.sleep(answerSaveDelay)
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrAnswerNotSaved, answerSaveAttempts, lastErr)
}

// MissingQuestions devuelve los IDs del banco sin respuesta persistida.
// Es el insumo del loop de reconciliacion del cliente.
func (s *AnswerService) MissingQuestions(ctx context.Context, sessionID string) ([]string, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return nil, err
	}
	answers, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return bigfive.MissingQuestionIDs(answers), nil
}

// AnswerInput es una respuesta enviada en el batch de reconciliacion.
type AnswerInput struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// CompleteSession cierra la sesion: reconcilia respuestas faltantes si el
// cliente las reenvio, exige completitud, calcula el resultado con el motor
// compartido y persiste el snapshot. La clasificacion jamas se deriva de un
// estado parcial.
func (s *AnswerService) CompleteSession(ctx context.Context, sessionID string, resubmitted []AnswerInput) (domain.TestResult, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return domain.TestResult{}, err
	}
	if session.Status == domain.SessionStatusCompleted {
		return domain.TestResult{}, ErrSessionCompleted
	}

	answers, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return domain.TestResult{}, fmt.Errorf("list answers: %w", err)
	}

	missing := bigfive.MissingQuestionIDs(answers)
	if len(missing) > 0 && len(resubmitted) > 0 {
		answers, err = s.reconcile(ctx, sessionID, missing, resubmitted)
		if err != nil {
			return domain.TestResult{}, err
		}
		missing = bigfive.MissingQuestionIDs(answers)
	}
	if len(missing) > 0 {
		s.logger.Warn("session completion rejected: incomplete answer set",
			zap.String("session_id", sessionID),
			zap.Int("answered", len(answers)),
			zap.Int("missing", len(missing)),
		)
		return domain.TestResult{}, fmt.Errorf("%w: %d questions unanswered", ErrIncompleteSession, len(missing))
	}

	scores, err := bigfive.Score(answers)
	if err != nil {
		return domain.TestResult{}, fmt.Errorf("score session %s: %w", sessionID, err)
	}

	now := time.Now().UTC()
	result := domain.TestResult{
		SessionID:       sessionID,
		TraitScores:     scores.TraitMap(),
		FacetScores:     scores.FacetMap(),
		Classifications: scores.Classify(),
		CalculatedAt:    now,
	}
	if err := s.results.Upsert(ctx, result); err != nil {
		return domain.TestResult{}, fmt.Errorf("persist result: %w", err)
	}
	if err := s.sessions.MarkCompleted(ctx, sessionID, now); err != nil {
		return domain.TestResult{}, fmt.Errorf("mark session completed: %w", err)
	}

	// Aviso por correo asincrono y best-effort, como el analisis del chat.
	go s.notifyResultsReady(session.UserID, sessionID, now)

	return result, nil
}

// reconcile persiste solo las respuestas reenviadas que efectivamente
// faltaban. Reenvios de preguntas ya guardadas se ignoran: las respuestas
// son inmutables.
func (s *AnswerService) reconcile(ctx context.Context, sessionID string, missing []string, resubmitted []AnswerInput) ([]domain.Answer, error) {
	missingSet := make(map[string]struct{}, len(missing))
	for _, id := range missing {
		missingSet[id] = struct{}{}
	}

	saved := 0
	for _, in := range resubmitted {
		if _, ok := missingSet[in.QuestionID]; !ok {
			continue
		}
		if _, ok := bigfive.QuestionByID(in.QuestionID); !ok {
			return nil, fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, in.QuestionID)
		}
		if in.Score < bigfive.MinAnswer || in.Score > bigfive.MaxAnswer {
			return nil, fmt.Errorf("%w: question %q score %d out of range", ErrInvalidAnswer, in.QuestionID, in.Score)
		}
		answer := domain.Answer{
			SessionID:  sessionID,
			QuestionID: in.QuestionID,
			Score:      in.Score,
			AnsweredAt: time.Now().UTC(),
		}
		if err := s.saveWithRetry(ctx, answer); err != nil {
			return nil, err
		}
		saved++
	}
	s.logger.Info("reconciled missing answers",
		zap.String("session_id", sessionID),
		zap.Int("missing", len(missing)),
		zap.Int("saved", saved),
	)

	answers, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers after reconcile: %w", err)
	}
	return answers, nil
}

func (s *AnswerService) notifyResultsReady(userID, sessionID string, calculatedAt time.Time) {
	if s.emailSender == nil || s.users == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("results email skipped: user lookup failed", zap.Error(err), zap.String("user_id", userID))
		return
	}
	if err := s.emailSender.SendResultsReady(ctx, user.Email, sessionID, calculatedAt); err != nil {
		s.logger.Warn("results email failed", zap.Error(err), zap.String("session_id", sessionID))
	}
}

func (s *AnswerService) getSession(ctx context.Context, sessionID string) (domain.TestSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.TestSession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return session, nil
}
