// Package service composes the question router, the prompt generator and a
// library backend into the operations exposed by the API and the CLI.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"vibecraft/internal/domain"
	"vibecraft/internal/infra"
	"vibecraft/internal/promptgen"
	"vibecraft/internal/questions"
	"vibecraft/pkg/zip"
)

// appendAttempts bounds retries when a freshly generated id is already taken.
const appendAttempts = 3

// BlueprintService is safe for concurrent use when its repository is.
type BlueprintService struct {
	repo    domain.BlueprintRepository
	gen     *promptgen.Generator
	metrics *infra.Metrics
	logger  zerolog.Logger
}

// NewBlueprintService wires the service. A nil generator uses the default
// clock and id source; nil metrics disables counting.
func NewBlueprintService(repo domain.BlueprintRepository, gen *promptgen.Generator, metrics *infra.Metrics, logger zerolog.Logger) *BlueprintService {
	if gen == nil {
		gen = promptgen.NewGenerator()
	}
	return &BlueprintService{repo: repo, gen: gen, metrics: metrics, logger: logger}
}

// Questions returns the follow-up questions for the current choices.
func (s *BlueprintService) Questions(c domain.Choices) []domain.Question {
	qs := questions.Compute(c)
	if s.metrics != nil {
		s.metrics.QuestionsComputed.Inc()
	}
	return qs
}

// Generate builds a blueprint from c and appends it to the library.
func (s *BlueprintService) Generate(ctx context.Context, c domain.Choices) (domain.Blueprint, error) {
	if c.Goal == domain.GoalUnset {
		return domain.Blueprint{}, domain.ErrGoalRequired
	}
	if !c.Goal.Valid() {
		return domain.Blueprint{}, fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidChoices, c.Goal)
	}

	var err error
	for attempt := 1; attempt <= appendAttempts; attempt++ {
		bp := s.gen.Generate(c)
		err = s.repo.Append(ctx, bp)
		if errors.Is(err, domain.ErrDuplicateBlueprint) {
			s.logger.Warn().Str("blueprint_id", bp.ID).Int("attempt", attempt).Msg("blueprint id collision, regenerating")
			continue
		}
		s.metrics.ObserveLibrary("append", err)
		if err != nil {
			return domain.Blueprint{}, fmt.Errorf("save blueprint: %w", err)
		}
		if s.metrics != nil {
			s.metrics.BlueprintsGenerated.WithLabelValues(string(bp.Choices.Goal)).Inc()
		}
		s.logger.Info().
			Str("blueprint_id", bp.ID).
			Str("goal", string(bp.Choices.Goal)).
			Str("category", bp.Choices.Category).
			Int("moods", len(bp.Choices.Moods)).
			Msg("blueprint generated")
		return bp, nil
	}
	s.metrics.ObserveLibrary("append", err)
	return domain.Blueprint{}, fmt.Errorf("save blueprint: %w", err)
}

// Library lists saved blueprints, newest first. limit <= 0 lists everything.
func (s *BlueprintService) Library(ctx context.Context, limit int) ([]domain.Blueprint, error) {
	items, err := s.repo.List(ctx, limit)
	s.metrics.ObserveLibrary("list", err)
	if err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	if items == nil {
		items = []domain.Blueprint{}
	}
	return items, nil
}

// Get returns one blueprint or domain.ErrNotFound.
func (s *BlueprintService) Get(ctx context.Context, id string) (*domain.Blueprint, error) {
	bp, err := s.repo.Get(ctx, id)
	s.metrics.ObserveLibrary("get", ignoreNotFound(err))
	if err != nil {
		return nil, fmt.Errorf("get blueprint %s: %w", id, err)
	}
	return bp, nil
}

// Delete removes one blueprint or returns domain.ErrNotFound.
func (s *BlueprintService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveLibrary("delete", ignoreNotFound(err))
	if err != nil {
		return fmt.Errorf("delete blueprint %s: %w", id, err)
	}
	s.logger.Info().Str("blueprint_id", id).Msg("blueprint deleted")
	return nil
}

// Export packs the whole library into a zip archive holding <id>.json and
// <id>.txt per blueprint.
func (s *BlueprintService) Export(ctx context.Context) ([]byte, error) {
	items, err := s.repo.List(ctx, 0)
	s.metrics.ObserveLibrary("export", err)
	if err != nil {
		return nil, fmt.Errorf("export library: %w", err)
	}
	entries := make([]zip.Entry, 0, 2*len(items))
	for _, bp := range items {
		doc, err := json.MarshalIndent(bp, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode blueprint %s: %w", bp.ID, err)
		}
		entries = append(entries,
			zip.Entry{Filename: bp.ID + ".json", Modified: bp.Timestamp, Data: doc},
			zip.Entry{Filename: bp.ID + ".txt", Modified: bp.Timestamp, Data: []byte(PlainText(bp))},
		)
	}
	return zip.Archive(entries)
}

// PlainText renders a blueprint as a human readable sheet.
func PlainText(bp domain.Blueprint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", bp.Extras.BlueprintRef)
	fmt.Fprintf(&sb, "Generated: %s\n", bp.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&sb, "Goal: %s\n", bp.Choices.Goal)
	if bp.Choices.Category != "" {
		fmt.Fprintf(&sb, "Category: %s\n", bp.Choices.Category)
	}
	if len(bp.Choices.Moods) > 0 {
		fmt.Fprintf(&sb, "Moods: %s\n", strings.Join(bp.Choices.Moods, ", "))
	}
	for i, v := range bp.Variants() {
		fmt.Fprintf(&sb, "\nVariant %d:\n%s\n", i+1, v)
	}
	fmt.Fprintf(&sb, "\nNegative prompt: %s\n", bp.Extras.NegativePrompt)
	fmt.Fprintf(&sb, "Aspect ratio: %s\n", bp.Extras.AspectRatio)
	fmt.Fprintf(&sb, "Render config: %s\n", bp.Extras.RenderConfig)
	return sb.String()
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
