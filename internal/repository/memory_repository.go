package repository

import (
	"context"
	"sync"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// MemoryAnalysisRepository keeps analysis results in memory. Results are
// value objects; copies are stored and returned so callers can never mutate
// repository state.
type MemoryAnalysisRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.ImageAnalysisResult
	byURL   map[string][]string
	maxSize int
	order   []string
}

// NewMemoryAnalysisRepository creates an in-memory analysis repository that
// retains at most maxSize results, evicting the oldest first.
func NewMemoryAnalysisRepository(maxSize int) *MemoryAnalysisRepository {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &MemoryAnalysisRepository{
		byID:    make(map[string]models.ImageAnalysisResult),
		byURL:   make(map[string][]string),
		maxSize: maxSize,
	}
}

// SaveAnalysisResult stores an analysis result
func (r *MemoryAnalysisRepository) SaveAnalysisResult(ctx context.Context, result *models.ImageAnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.byID[result.ID] = *result
	r.byURL[result.ImageURL] = append(r.byURL[result.ImageURL], result.ID)

	for len(r.order) > r.maxSize {
		oldest := r.order[0]
		r.order = r.order[1:]
		if evicted, ok := r.byID[oldest]; ok {
			delete(r.byID, oldest)
			r.byURL[evicted.ImageURL] = removeID(r.byURL[evicted.ImageURL], oldest)
			if len(r.byURL[evicted.ImageURL]) == 0 {
				delete(r.byURL, evicted.ImageURL)
			}
		}
	}
	return nil
}

// GetAnalysisResult retrieves a stored analysis result by id
func (r *MemoryAnalysisRepository) GetAnalysisResult(ctx context.Context, id string) (*models.ImageAnalysisResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.byID[id]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return &result, nil
}

// GetAnalysisHistory retrieves analysis history for a specific image URL
func (r *MemoryAnalysisRepository) GetAnalysisHistory(ctx context.Context, imageURL string) ([]*models.ImageAnalysisResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byURL[imageURL]
	history := make([]*models.ImageAnalysisResult, 0, len(ids))
	for _, id := range ids {
		if result, ok := r.byID[id]; ok {
			copied := result
			history = append(history, &copied)
		}
	}
	return history, nil
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
