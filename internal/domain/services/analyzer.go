package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"threatlens/internal/domain/models"
	"threatlens/internal/infrastructure/cache"
	"threatlens/pkg/logger"
)

// Analyzer sequences the full pipeline: indicator extraction, technique
// mapping, and attribution. The pipeline itself is pure; the optional
// redis cache only short-circuits recomputation for repeated texts.
type Analyzer struct {
	extractor   *IndicatorExtractor
	mapper      *TechniqueMapper
	attribution *AttributionEngine
	cache       *cache.RedisCache
	resultTTL   time.Duration
	logger      *logger.Logger
}

// NewAnalyzer wires the pipeline stages together. cache may be nil.
func NewAnalyzer(
	extractor *IndicatorExtractor,
	mapper *TechniqueMapper,
	attribution *AttributionEngine,
	resultCache *cache.RedisCache,
	resultTTL time.Duration,
	log *logger.Logger,
) *Analyzer {
	return &Analyzer{
		extractor:   extractor,
		mapper:      mapper,
		attribution: attribution,
		cache:       resultCache,
		resultTTL:   resultTTL,
		logger:      log.WithComponent("analyzer"),
	}
}

// Analyze runs the full pipeline over the report text. The pipeline
// outputs are fully determined by the text and the embedded catalogs;
// the report ID, timestamp and processing time are request metadata.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.AnalysisReport, error) {
	start := time.Now()

	textHash := hashText(text)
	if a.cache != nil {
		var cached models.AnalysisReport
		err := a.cache.GetCachedAnalysis(ctx, textHash, &cached)
		if err == nil {
			a.logger.Debug().Str("text_hash", textHash).Msg("analysis cache hit")
			return &cached, nil
		}
		if !cache.IsCacheMiss(err) {
			a.logger.Warn().Err(err).Msg("analysis cache lookup failed")
		}
	}

	indicators := a.extractor.Extract(text)
	techniques := a.mapper.MapTechniques(text)
	summary := a.mapper.TacticSummary(techniques)
	chain := a.mapper.AttackChain(techniques)
	attribution := a.attribution.Attribute(text, indicators, techniques)

	report := &models.AnalysisReport{
		ID:             uuid.New(),
		TextLength:     len(text),
		Indicators:     indicators,
		Techniques:     techniques,
		TacticSummary:  summary,
		AttackChain:    chain,
		Attribution:    attribution,
		ProcessingTime: time.Since(start),
		AnalyzedAt:     time.Now().UTC(),
	}

	if a.cache != nil {
		if err := a.cache.CacheAnalysis(ctx, textHash, report, a.resultTTL); err != nil {
			a.logger.Warn().Err(err).Msg("failed to cache analysis result")
		}
	}

	a.logger.Info().
		Str("analysis_id", report.ID.String()).
		Int("text_length", report.TextLength).
		Int("indicators", indicators.TotalCount).
		Int("techniques", len(techniques)).
		Int("attribution_candidates", len(attribution)).
		Msg("analysis complete")

	return report, nil
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
