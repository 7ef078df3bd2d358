package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
	"bigfive-api/internal/llm"
	"bigfive-api/internal/repository"
)

// NarrativeState es el estado explicito de la generacion de analisis de una
// sesion. Reemplaza al tipico flag booleano "ya genere": las transiciones
// ocurren solo por eventos explicitos y el estado fallido es reintentable.
type NarrativeState string

const (
	NarrativeIdle      NarrativeState = "idle"
	NarrativeInFlight  NarrativeState = "in_flight"
	NarrativeSucceeded NarrativeState = "succeeded"
	NarrativeFailed    NarrativeState = "failed"
)

var (
	ErrNarrativeInFlight    = errors.New("narrative generation already in flight")
	ErrNarrativeRateLimited = errors.New("narrative generation rate limited")
	ErrResultNotReady       = errors.New("result not calculated yet")
)

const narrativeTimeout = 60 * time.Second

type narrativeEntry struct {
	state  NarrativeState
	text   string
	reason string
}

// NarrativeService genera el analisis en lenguaje natural de un resultado.
// A lo sumo una generacion en vuelo por sesion; el texto exitoso queda
// cacheado y se sirve sin volver al gateway.
type NarrativeService struct {
	logger    *zap.Logger
	llmClient llm.LLMClient
	results   repository.ResultRepository
	limiter   NarrativeRateLimiter
	timeout   time.Duration

	mu      sync.Mutex
	entries map[string]*narrativeEntry
}

func NewNarrativeService(
	logger *zap.Logger,
	llmClient llm.LLMClient,
	results repository.ResultRepository,
	limiter NarrativeRateLimiter,
) *NarrativeService {
	if limiter == nil {
		limiter = NewNarrativeRateLimiter(10*time.Minute, 5)
	}
	return &NarrativeService{
		logger:    logger,
		llmClient: llmClient,
		results:   results,
		limiter:   limiter,
		timeout:   narrativeTimeout,
		entries:   make(map[string]*narrativeEntry),
	}
}

// Status devuelve el estado actual y, si existe, el texto cacheado.
func (s *NarrativeService) Status(sessionID string) (NarrativeState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok {
		return NarrativeIdle, ""
	}
	return entry.state, entry.text
}

// Generate produce el analisis para una sesion con resultado calculado.
// Idempotente sobre exito: una segunda llamada devuelve el texto cacheado.
// Errores del gateway 429/402 se propagan como sentinelas distinguibles.
func (s *NarrativeService) Generate(ctx context.Context, sessionID, userID string) (string, error) {
	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	if ok {
		switch entry.state {
		case NarrativeSucceeded:
			text := entry.text
			s.mu.Unlock()
			return text, nil
		case NarrativeInFlight:
			s.mu.Unlock()
			return "", ErrNarrativeInFlight
		}
	}
	if !s.limiter.Allow(userID) {
		s.mu.Unlock()
		return "", ErrNarrativeRateLimited
	}
	s.entries[sessionID] = &narrativeEntry{state: NarrativeInFlight}
	s.mu.Unlock()

	text, err := s.generate(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.entries[sessionID] = &narrativeEntry{state: NarrativeFailed, reason: err.Error()}
		return "", err
	}
	s.entries[sessionID] = &narrativeEntry{state: NarrativeSucceeded, text: text}
	return text, nil
}

func (s *NarrativeService) generate(ctx context.Context, sessionID string) (string, error) {
	result, err := s.results.GetBySession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrResultNotReady, sessionID)
	}

	prompt := buildNarrativePrompt(result)

	// Timeout duro: si el gateway no responde se sale del estado en vuelo
	// con un error reintentable en vez de colgar al cliente.
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llmClient.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Warn("narrative generation failed", zap.Error(err), zap.String("session_id", sessionID))
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// buildNarrativePrompt arma el prompt con puntajes crudos y bandas
// recalculadas desde esos puntajes, nunca desde etiquetas persistidas.
func buildNarrativePrompt(result domain.TestResult) string {
	classifications := bigfive.RecomputeClassifications(result.TraitScores, result.FacetScores)

	var b strings.Builder
	b.WriteString("Eres un psicologo experto. Redacta un analisis de personalidad claro y empatico ")
	b.WriteString("a partir de estos resultados del modelo Big Five. No inventes datos ni diagnostiques.\n\n")

	traits := make([]string, 0, len(result.TraitScores))
	for trait := range result.TraitScores {
		traits = append(traits, trait)
	}
	sort.Strings(traits)
	for _, trait := range traits {
		b.WriteString(fmt.Sprintf("%s: %d (%s)\n", trait, result.TraitScores[trait], classifications.Traits[trait]))
		facets := make([]string, 0, len(result.FacetScores[trait]))
		for facet := range result.FacetScores[trait] {
			facets = append(facets, facet)
		}
		sort.Strings(facets)
		for _, facet := range facets {
			b.WriteString(fmt.Sprintf("  %s %s: %d (%s)\n",
				facet,
				bigfive.FacetName(bigfive.Facet(facet)),
				result.FacetScores[trait][facet],
				classifications.Facets[trait][facet],
			))
		}
	}
	return b.String()
}
