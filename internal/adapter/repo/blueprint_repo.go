package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vibecraft/internal/domain"
	"vibecraft/internal/infra"
	"vibecraft/internal/sqlinline"
)

// BlueprintRepositoryPG implements domain.BlueprintRepository on PostgreSQL.
type BlueprintRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewBlueprintRepository creates a new blueprint repository backed by PostgreSQL.
func NewBlueprintRepository(sql infra.SQLExecutor) *BlueprintRepositoryPG {
	return &BlueprintRepositoryPG{sql: sql}
}

// Append inserts a blueprint; ordering comes from created_at.
func (r *BlueprintRepositoryPG) Append(ctx context.Context, bp domain.Blueprint) error {
	choices, err := json.Marshal(bp.Choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}
	extras, err := json.Marshal(bp.Extras)
	if err != nil {
		return fmt.Errorf("encode extras: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertBlueprint,
		bp.ID,
		string(bp.Choices.Goal),
		choices,
		bp.V1,
		bp.V2,
		bp.V3,
		extras,
		bp.Timestamp,
	)
	var id string
	if err := row.Scan(&id); err != nil {
		if infra.IsNoRows(err) {
			return domain.ErrDuplicateBlueprint
		}
		return fmt.Errorf("insert blueprint: %w", err)
	}
	return nil
}

// List returns the newest blueprints first.
func (r *BlueprintRepositoryPG) List(ctx context.Context, limit int) ([]domain.Blueprint, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListBlueprints, lim)
	if err != nil {
		return nil, fmt.Errorf("list blueprints: %w", err)
	}
	defer rows.Close()

	var items []domain.Blueprint
	for rows.Next() {
		bp, err := scanBlueprint(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blueprints: %w", err)
	}
	return items, nil
}

// Get fetches a blueprint by id.
func (r *BlueprintRepositoryPG) Get(ctx context.Context, id string) (*domain.Blueprint, error) {
	bp, err := scanBlueprint(r.sql.QueryRow(ctx, sqlinline.QSelectBlueprint, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &bp, nil
}

// Delete removes a blueprint by id.
func (r *BlueprintRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteBlueprint, id)
	if err != nil {
		return fmt.Errorf("delete blueprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlueprint(row scanner) (domain.Blueprint, error) {
	var (
		bp        domain.Blueprint
		choices   []byte
		extras    []byte
		createdAt time.Time
	)
	if err := row.Scan(&bp.ID, &choices, &bp.V1, &bp.V2, &bp.V3, &extras, &createdAt); err != nil {
		return domain.Blueprint{}, err
	}
	if err := json.Unmarshal(choices, &bp.Choices); err != nil {
		return domain.Blueprint{}, fmt.Errorf("decode choices of %s: %w", bp.ID, err)
	}
	if err := json.Unmarshal(extras, &bp.Extras); err != nil {
		return domain.Blueprint{}, fmt.Errorf("decode extras of %s: %w", bp.ID, err)
	}
	bp.Timestamp = createdAt.UTC()
	return bp, nil
}

var _ domain.BlueprintRepository = (*BlueprintRepositoryPG)(nil)
