package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
	"bigfive-api/internal/llm"
	"bigfive-api/internal/repository"
	"bigfive-api/internal/service"
)

// TestHandler mantiene dependencias para endpoints del cuestionario.
type TestHandler struct {
	logger       *zap.Logger
	sessions     repository.SessionRepository
	results      repository.ResultRepository
	answerSvc    *service.AnswerService
	recalcSvc    *service.RecalculationService
	narrativeSvc *service.NarrativeService
}

func NewTestHandler(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	results repository.ResultRepository,
	answerSvc *service.AnswerService,
	recalcSvc *service.RecalculationService,
	narrativeSvc *service.NarrativeService,
) *TestHandler {
	return &TestHandler{
		logger:       logger,
		sessions:     sessions,
		results:      results,
		answerSvc:    answerSvc,
		recalcSvc:    recalcSvc,
		narrativeSvc: narrativeSvc,
	}
}

// ListQuestions maneja GET /questions. El banco es estatico; el keying no se
// expone al cliente para no sesgar las respuestas.
func (h *TestHandler) ListQuestions(c *gin.Context) {
	type questionView struct {
		ID    string `json:"id"`
		Trait string `json:"trait"`
		Facet string `json:"facet"`
		Text  string `json:"text"`
	}
	questions := bigfive.Questions()
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{
			ID:    q.ID,
			Trait: string(q.Trait),
			Facet: string(q.Facet),
			Text:  q.Text,
		})
	}
	c.JSON(http.StatusOK, gin.H{"questions": views, "total": len(views)})
}

// CreateSession maneja POST /sessions.
func (h *TestHandler) CreateSession(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return
	}

	session := domain.TestSession{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		Status:    domain.SessionStatusInProgress,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.sessions.Create(c.Request.Context(), session); err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// SubmitAnswer maneja POST /sessions/:id/answers.
func (h *TestHandler) SubmitAnswer(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Score      int    `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.answerSvc.SubmitAnswer(c.Request.Context(), session.ID, req.QuestionID, req.Score)
	switch {
	case errors.Is(err, service.ErrInvalidAnswer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "session already completed"})
	case errors.Is(err, service.ErrAnswerNotSaved):
		// Reintentable: el cliente no debe avanzar de pregunta.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "answer not saved, retry"})
	case err != nil:
		h.logger.Error("submit answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save answer"})
	default:
		c.JSON(http.StatusCreated, gin.H{"saved": true})
	}
}

// MissingQuestions maneja GET /sessions/:id/missing.
func (h *TestHandler) MissingQuestions(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	missing, err := h.answerSvc.MissingQuestions(c.Request.Context(), session.ID)
	if err != nil {
		h.logger.Error("missing questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list missing questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"missing":  missing,
		"answered": bigfive.QuestionCount - len(missing),
		"total":    bigfive.QuestionCount,
	})
}

// CompleteSession maneja POST /sessions/:id/complete. Acepta opcionalmente
// el batch de respuestas faltantes para reconciliar antes de calcular.
func (h *TestHandler) CompleteSession(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	var req struct {
		Answers []service.AnswerInput `json:"answers"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	result, err := h.answerSvc.CompleteSession(c.Request.Context(), session.ID, req.Answers)
	switch {
	case errors.Is(err, service.ErrIncompleteSession):
		missing, merr := h.answerSvc.MissingQuestions(c.Request.Context(), session.ID)
		if merr != nil {
			missing = nil
		}
		c.JSON(http.StatusConflict, gin.H{"error": "session incomplete", "missing": missing})
	case errors.Is(err, service.ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "session already completed"})
	case errors.Is(err, service.ErrInvalidAnswer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAnswerNotSaved):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not persist answers, retry"})
	case err != nil:
		h.logger.Error("complete session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete session"})
	default:
		c.JSON(http.StatusOK, gin.H{"result": result, "report": presentResult(result)})
	}
}

// GetResult maneja GET /sessions/:id/result.
func (h *TestHandler) GetResult(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	result, err := h.results.GetBySession(c.Request.Context(), session.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not calculated yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "report": presentResult(result)})
}

// Recalculate maneja POST /sessions/:id/recalculate.
func (h *TestHandler) Recalculate(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	outcome, err := h.recalcSvc.Recalculate(c.Request.Context(), session.ID)
	switch {
	case errors.Is(err, service.ErrNoAnswers):
		c.JSON(http.StatusNotFound, gin.H{"error": "no answers for session"})
	case errors.Is(err, service.ErrRecalculationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "recalculation already running"})
	case err != nil:
		h.logger.Error("recalculation failed", zap.Error(err), zap.String("session_id", session.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not recalculate"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"outcome": outcome,
			"report":  presentResult(outcome.Result),
		})
	}
}

// GenerateNarrative maneja POST /sessions/:id/narrative. Los fallos del
// gateway se distinguen: 429 limite de tasa, 402 creditos agotados.
func (h *TestHandler) GenerateNarrative(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	claims, _ := GetAuthClaims(c)

	text, err := h.narrativeSvc.Generate(c.Request.Context(), session.ID, claims.UserID)
	switch {
	case errors.Is(err, service.ErrResultNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": "result not calculated yet"})
	case errors.Is(err, service.ErrNarrativeInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "analysis already in progress"})
	case errors.Is(err, service.ErrNarrativeRateLimited), errors.Is(err, llm.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many analysis requests, try again in a few minutes"})
	case errors.Is(err, llm.ErrQuotaExceeded):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "analysis credits exhausted"})
	case err != nil:
		h.logger.Error("narrative generation failed", zap.Error(err), zap.String("session_id", session.ID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate analysis, retry"})
	default:
		c.JSON(http.StatusOK, gin.H{"analysis": text})
	}
}

// NarrativeStatus maneja GET /sessions/:id/narrative.
func (h *TestHandler) NarrativeStatus(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	state, text := h.narrativeSvc.Status(session.ID)
	resp := gin.H{"state": state}
	if text != "" {
		resp["analysis"] = text
	}
	c.JSON(http.StatusOK, resp)
}

// ownedSession resuelve la sesion del path y verifica que pertenezca al
// usuario autenticado. Escribe la respuesta de error cuando devuelve false.
func (h *TestHandler) ownedSession(c *gin.Context) (domain.TestSession, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth"})
		return domain.TestSession{}, false
	}

	session, err := h.sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return domain.TestSession{}, false
	}
	if session.UserID != claims.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return domain.TestSession{}, false
	}
	return session, true
}
