package repo

import (
	"context"
	"sync"

	"vibecraft/internal/domain"
)

// BlueprintRepositoryMemory keeps the library in process memory.
type BlueprintRepositoryMemory struct {
	mu    sync.RWMutex
	items []domain.Blueprint
}

// NewBlueprintMemoryRepository creates an empty in-memory library.
func NewBlueprintMemoryRepository() *BlueprintRepositoryMemory {
	return &BlueprintRepositoryMemory{}
}

func (r *BlueprintRepositoryMemory) Append(ctx context.Context, bp domain.Blueprint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if indexOf(r.items, bp.ID) >= 0 {
		return domain.ErrDuplicateBlueprint
	}
	r.items = append([]domain.Blueprint{bp.Clone()}, r.items...)
	return nil
}

func (r *BlueprintRepositoryMemory) List(ctx context.Context, limit int) ([]domain.Blueprint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(head(r.items, limit)), nil
}

func (r *BlueprintRepositoryMemory) Get(ctx context.Context, id string) (*domain.Blueprint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := indexOf(r.items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	bp := r.items[idx].Clone()
	return &bp, nil
}

func (r *BlueprintRepositoryMemory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := indexOf(r.items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
	return nil
}

func indexOf(items []domain.Blueprint, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func head(items []domain.Blueprint, limit int) []domain.Blueprint {
	if limit > 0 && limit < len(items) {
		return items[:limit]
	}
	return items
}

func cloneAll(items []domain.Blueprint) []domain.Blueprint {
	out := make([]domain.Blueprint, len(items))
	for i, bp := range items {
		out[i] = bp.Clone()
	}
	return out
}

var _ domain.BlueprintRepository = (*BlueprintRepositoryMemory)(nil)
