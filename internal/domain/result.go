package domain

import "time"

// TestResult es el snapshot calculado de una sesion completa.
// Las claves de los mapas son siempre las canonicas (en ingles, minusculas);
// la localizacion de nombres ocurre solo en la capa de presentacion.
//
// Classifications se persiste como snapshot denormalizado para consumidores
// de exportacion, pero el camino de lectura SIEMPRE recalcula las bandas a
// partir de los puntajes crudos (registros historicos pueden haber sido
// escritos bajo un esquema de bandas anterior).
type TestResult struct {
	SessionID       string                    `json:"session_id"`
	TraitScores     map[string]int            `json:"trait_scores"`
	FacetScores     map[string]map[string]int `json:"facet_scores"`
	Classifications Classifications           `json:"classifications"`
	CalculatedAt    time.Time                 `json:"calculated_at"`
}

// Classifications agrupa las bandas por rasgo y por faceta.
type Classifications struct {
	Traits map[string]string            `json:"traits"`
	Facets map[string]map[string]string `json:"facets"`
}
