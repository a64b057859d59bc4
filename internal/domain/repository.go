package domain

import "context"

// BlueprintRepository persists generated blueprints as an append-only list,
// most recent first.
type BlueprintRepository interface {
	// Append stores bp ahead of every existing entry.
	Append(ctx context.Context, bp Blueprint) error
	// List returns up to limit blueprints, newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]Blueprint, error)
	// Get returns ErrNotFound when id is unknown.
	Get(ctx context.Context, id string) (*Blueprint, error)
	// Delete returns ErrNotFound when id is unknown.
	Delete(ctx context.Context, id string) error
}
