package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
	"bigfive-api/internal/repository"
)

var (
	ErrNoAnswers             = errors.New("no persisted answers for session")
	ErrRecalculationInFlight = errors.New("recalculation already in flight for session")
)

// RecalculationService rederiva el resultado de una sesion desde sus
// respuestas persistidas, sin confiar en ningun calculo hecho en el cliente.
// Es el camino autoritativo y tambien la via de migracion de registros
// historicos hacia el esquema de bandas vigente.
type RecalculationService struct {
	logger  *zap.Logger
	answers repository.AnswerRepository
	results repository.ResultRepository
	locker  SessionLocker
}

func NewRecalculationService(
	logger *zap.Logger,
	answers repository.AnswerRepository,
	results repository.ResultRepository,
	locker SessionLocker,
) *RecalculationService {
	if locker == nil {
		locker = NewMemorySessionLocker()
	}
	return &RecalculationService{
		logger:  logger,
		answers: answers,
		results: results,
		locker:  locker,
	}
}

// RecalculationOutcome describe el resultado del recalculo. Complete en
// false significa que las sumas son best-effort y el caller debe mostrar la
// advertencia de sesion incompleta antes de tratar las bandas como finales.
type RecalculationOutcome struct {
	Result      domain.TestResult `json:"result"`
	AnswerCount int               `json:"answer_count"`
	Complete    bool              `json:"complete"`
	Skipped     int               `json:"skipped"`
}

// Recalculate recomputa y reemplaza por completo el snapshot persistido.
// Idempotente: dos invocaciones sobre las mismas respuestas producen el
// mismo resultado. Sesiones distintas pueden recalcularse en paralelo; la
// misma sesion se serializa via lock.
func (s *RecalculationService) Recalculate(ctx context.Context, sessionID string) (RecalculationOutcome, error) {
	acquired, err := s.locker.Acquire(ctx, sessionID)
	if err != nil {
		return RecalculationOutcome{}, fmt.Errorf("acquire recalc lock: %w", err)
	}
	if !acquired {
		return RecalculationOutcome{}, ErrRecalculationInFlight
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), sessionID); err != nil {
			s.logger.Warn("release recalc lock failed", zap.Error(err), zap.String("session_id", sessionID))
		}
	}()

	answers, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return RecalculationOutcome{}, fmt.Errorf("list answers: %w", err)
	}
	if len(answers) == 0 {
		return RecalculationOutcome{}, fmt.Errorf("%w: %s", ErrNoAnswers, sessionID)
	}

	// Registros historicos pueden referenciar preguntas de versiones viejas
	// del banco: aqui se tolera y se deja constancia, a diferencia del
	// camino interactivo que corta con error.
	scores, skipped := bigfive.ScoreLenient(answers)
	if skipped > 0 {
		s.logger.Warn("recalculation skipped invalid answers",
			zap.String("session_id", sessionID),
			zap.Int("skipped", skipped),
		)
	}

	complete := len(answers)-skipped == bigfive.QuestionCount
	if !complete {
		s.logger.Warn("recalculation over incomplete answer set",
			zap.String("session_id", sessionID),
			zap.Int("answered", len(answers)),
			zap.Int("expected", bigfive.QuestionCount),
		)
	}

	result := domain.TestResult{
		SessionID:       sessionID,
		TraitScores:     scores.TraitMap(),
		FacetScores:     scores.FacetMap(),
		Classifications: scores.Classify(),
		CalculatedAt:    time.Now().UTC(),
	}
	if err := s.results.Upsert(ctx, result); err != nil {
		return RecalculationOutcome{}, fmt.Errorf("persist recalculated result: %w", err)
	}

	s.logger.Info("session recalculated",
		zap.String("session_id", sessionID),
		zap.Int("answers", len(answers)),
		zap.Bool("complete", complete),
	)

	return RecalculationOutcome{
		Result:      result,
		AnswerCount: len(answers),
		Complete:    complete,
		Skipped:     skipped,
	}, nil
}
