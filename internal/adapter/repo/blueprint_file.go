package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"vibecraft/internal/domain"
	"vibecraft/internal/storage"
)

// DefaultLibraryKey names the document holding the whole library.
const DefaultLibraryKey = "vibecraft_library.json"

// BlueprintRepositoryFile stores the library as one JSON array, newest first,
// under a single FileStore key.
type BlueprintRepositoryFile struct {
	mu     sync.Mutex
	store  *storage.FileStore
	key    string
	logger zerolog.Logger
}

// NewBlueprintFileRepository creates a file-backed library. An empty key uses
// DefaultLibraryKey.
func NewBlueprintFileRepository(store *storage.FileStore, key string, logger zerolog.Logger) *BlueprintRepositoryFile {
	if key == "" {
		key = DefaultLibraryKey
	}
	return &BlueprintRepositoryFile{store: store, key: key, logger: logger}
}

func (r *BlueprintRepositoryFile) Append(ctx context.Context, bp domain.Blueprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(items, bp.ID) >= 0 {
		return domain.ErrDuplicateBlueprint
	}
	return r.save(ctx, append([]domain.Blueprint{bp}, items...))
}

func (r *BlueprintRepositoryFile) List(ctx context.Context, limit int) ([]domain.Blueprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return head(items, limit), nil
}

func (r *BlueprintRepositoryFile) Get(ctx context.Context, id string) (*domain.Blueprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return &items[idx], nil
}

func (r *BlueprintRepositoryFile) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	return r.save(ctx, append(items[:idx:idx], items[idx+1:]...))
}

// load reads the library. A missing or undecodable document is an empty
// library.
func (r *BlueprintRepositoryFile) load(ctx context.Context) ([]domain.Blueprint, error) {
	data, err := r.store.Read(ctx, r.key)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []domain.Blueprint
	if err := json.Unmarshal(data, &items); err != nil {
		r.logger.Warn().Err(err).Str("key", r.key).Msg("library document unreadable, treating as empty")
		return nil, nil
	}
	return items, nil
}

func (r *BlueprintRepositoryFile) save(ctx context.Context, items []domain.Blueprint) error {
	if items == nil {
		items = []domain.Blueprint{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	if _, err := r.store.Write(ctx, r.key, data); err != nil {
		return err
	}
	return nil
}

var _ domain.BlueprintRepository = (*BlueprintRepositoryFile)(nil)
