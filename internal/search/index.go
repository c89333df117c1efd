// Package search provides full-text lookup over the embedded technique
// and actor catalogs, backed by an in-memory bleve index built at startup.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"threatlens/internal/domain/models"
	"threatlens/pkg/logger"
)

// catalogDocument is the flattened form indexed for both entry kinds.
type catalogDocument struct {
	Kind        string `json:"kind"` // "technique" or "actor"
	EntryID     string `json:"entry_id"`
	Name        string `json:"name"`
	Tactic      string `json:"tactic,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"` // all searchable terms concatenated
}

// Hit is a scored catalog search result.
type Hit struct {
	Kind    string  `json:"kind"`
	EntryID string  `json:"entry_id"`
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
}

// CatalogIndex wraps a memory-only bleve index over the catalogs.
type CatalogIndex struct {
	index  bleve.Index
	logger *logger.Logger
}

// NewCatalogIndex indexes both catalogs and returns the searchable index.
func NewCatalogIndex(techniques []models.Technique, actors []models.ActorProfile, log *logger.Logger) (*CatalogIndex, error) {
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	textFieldMapping := bleve.NewTextFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("kind", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("entry_id", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("tactic", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("origin", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("description", textFieldMapping)
	docMapping.AddFieldMappingsAt("text", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("catalog", docMapping)

	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog index: %w", err)
	}

	ci := &CatalogIndex{
		index:  index,
		logger: log.WithComponent("catalog-index"),
	}
	if err := ci.indexCatalogs(techniques, actors); err != nil {
		index.Close()
		return nil, err
	}
	return ci, nil
}

func (ci *CatalogIndex) indexCatalogs(techniques []models.Technique, actors []models.ActorProfile) error {
	batch := ci.index.NewBatch()

	for _, t := range techniques {
		doc := catalogDocument{
			Kind:        "technique",
			EntryID:     t.ID,
			Name:        t.Name,
			Tactic:      t.Tactic,
			Description: t.Description,
			Text: strings.Join(append([]string{t.Name, t.Tactic, t.Description},
				t.Keywords...), " "),
		}
		if err := batch.Index("technique:"+t.ID, doc); err != nil {
			return fmt.Errorf("failed to batch technique %s: %w", t.ID, err)
		}
	}

	for _, a := range actors {
		terms := []string{a.Name, a.Origin, a.Sponsor, a.Motivation}
		terms = append(terms, a.Aliases...)
		terms = append(terms, a.Tools...)
		terms = append(terms, a.Targets...)
		terms = append(terms, a.TTPs...)
		doc := catalogDocument{
			Kind:    "actor",
			EntryID: a.Name,
			Name:    a.Name,
			Origin:  a.Origin,
			Text:    strings.Join(terms, " "),
		}
		if err := batch.Index("actor:"+a.Name, doc); err != nil {
			return fmt.Errorf("failed to batch actor %s: %w", a.Name, err)
		}
	}

	if err := ci.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to index catalogs: %w", err)
	}

	ci.logger.Info().
		Int("techniques", len(techniques)).
		Int("actors", len(actors)).
		Msg("catalog index built")
	return nil
}

// Search runs a match query over the indexed catalogs.
func (ci *CatalogIndex) Search(queryStr string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 10
	}

	query := bleve.NewMatchQuery(queryStr)
	searchRequest := bleve.NewSearchRequest(query)
	searchRequest.Fields = []string{"kind", "entry_id", "name"}
	searchRequest.Size = limit

	searchResults, err := ci.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	hits := make([]Hit, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		h := Hit{Score: hit.Score}
		if v, ok := hit.Fields["kind"].(string); ok {
			h.Kind = v
		}
		if v, ok := hit.Fields["entry_id"].(string); ok {
			h.EntryID = v
		}
		if v, ok := hit.Fields["name"].(string); ok {
			h.Name = v
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// Close releases the index.
func (ci *CatalogIndex) Close() error {
	return ci.index.Close()
}
