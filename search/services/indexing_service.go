package services

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// Indexer is the slice of indexing behavior the entity controllers need.
// Indexing failures are logged, never surfaced to API callers: the database
// write already succeeded and the index can be rebuilt.
type Indexer interface {
	IndexDocument(id string, document interface{})
	DeleteDocument(id string)
}

// IndexingService maintains one bleve index holding tenant and apartment
// documents, distinguished by a "type" field.
type IndexingService struct {
	index  bleve.Index
	logger *zap.Logger
}

func NewIndexingService(logger *zap.Logger, indexPath string) (*IndexingService, error) {
	idx, err := bleve.Open(indexPath)
	if err != nil {
		mapping := bleve.NewIndexMapping()
		idx, err = bleve.New(indexPath, mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", indexPath, err)
		}
	}

	return &IndexingService{index: idx, logger: logger}, nil
}

func (s *IndexingService) IndexDocument(id string, document interface{}) {
	if err := s.index.Index(id, document); err != nil {
		s.logger.Error("Failed to index document", zap.String("id", id), zap.Error(err))
	}
}

func (s *IndexingService) DeleteDocument(id string) {
	if err := s.index.Delete(id); err != nil {
		s.logger.Error("Failed to delete document from index", zap.String("id", id), zap.Error(err))
	}
}

// Search runs a match query across all indexed fields and returns the stored
// fields of each hit.
func (s *IndexingService) Search(queryString string, size int) ([]map[string]interface{}, error) {
	query := bleve.NewMatchQuery(queryString)
	request := bleve.NewSearchRequestOptions(query, size, 0, false)
	request.Fields = []string{"*"}

	result, err := s.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]map[string]interface{}, 0, len(result.Hits))
	for _, hit := range result.Hits {
		doc := make(map[string]interface{}, len(hit.Fields)+2)
		for k, v := range hit.Fields {
			doc[k] = v
		}
		doc["_id"] = hit.ID
		doc["_score"] = hit.Score
		hits = append(hits, doc)
	}
	return hits, nil
}

// Close releases the underlying index files.
func (s *IndexingService) Close() error {
	return s.index.Close()
}
