package handlers

import (
	"threatlens/internal/config"
	"threatlens/internal/domain/services"
	"threatlens/internal/infrastructure/cache"
	"threatlens/internal/search"
	"threatlens/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health     *HealthHandler
	Analysis   *AnalysisHandler
	Techniques *TechniquesHandler
	Actors     *ActorsHandler
	Search     *SearchHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analyzer    *services.Analyzer
	Extractor   *services.IndicatorExtractor
	Mapper      *services.TechniqueMapper
	Attribution *services.AttributionEngine
	Index       *search.CatalogIndex
	Cache       *cache.RedisCache
	Config      *config.Config
	Logger      *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(deps.Cache, deps.Logger),
		Analysis:   NewAnalysisHandler(deps.Analyzer, deps.Extractor, deps.Mapper, deps.Attribution, deps.Config.Analysis.MaxTextLength, deps.Logger),
		Techniques: NewTechniquesHandler(deps.Mapper, deps.Logger),
		Actors:     NewActorsHandler(deps.Attribution, deps.Logger),
		Search:     NewSearchHandler(deps.Index, deps.Config.Analysis.SearchLimit, deps.Logger),
	}
}
