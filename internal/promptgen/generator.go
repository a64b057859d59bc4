// Package promptgen turns a finished choice structure into a blueprint: three
// prompt variants plus derived metadata. Generation is a pure string template
// over the choices; only the id and timestamp depend on ambient state.
package promptgen

import (
	"math/rand/v2"
	"strings"
	"time"

	"vibecraft/internal/domain"
)

const (
	// NegativePrompt is attached to every blueprint regardless of goal.
	NegativePrompt = "low-fidelity, distorted anatomy, messy composition, redundant artifacts"

	renderConfigVideo   = "ProRes 422"
	renderConfigDefault = "RAW Data"
	blueprintRefPrefix  = "VB-"

	idLength   = 6
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// VariantCount is the number of prompt variants per blueprint.
const VariantCount = 3

// Generator builds blueprints. The zero value is not usable; construct with
// NewGenerator.
type Generator struct {
	now   func() time.Time
	newID func() string
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithIDSource overrides the blueprint id source.
func WithIDSource(newID func() string) Option {
	return func(g *Generator) {
		if newID != nil {
			g.newID = newID
		}
	}
}

// NewGenerator returns a generator using the wall clock and a short random id.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now, newID: randomID}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate builds a blueprint with the default generator.
func Generate(c domain.Choices) domain.Blueprint {
	return defaultGenerator.Generate(c)
}

// Generate renders the three variants for c and derives the extras. It never
// fails: missing details fall back to fixed wording and an unset or unknown
// goal yields empty variants.
func (g *Generator) Generate(c domain.Choices) domain.Blueprint {
	id := g.newID()
	snapshot := c.Clone()

	var variants [VariantCount]string
	if r, ok := rules[snapshot.Goal]; ok {
		for i := range variants {
			variants[i] = r(snapshot, i)
		}
	}

	return domain.Blueprint{
		ID:        id,
		Timestamp: g.now().UTC().Truncate(time.Millisecond),
		Choices:   snapshot,
		V1:        variants[0],
		V2:        variants[1],
		V3:        variants[2],
		Extras:    Extras(snapshot, id),
	}
}

// Extras derives the metadata attached to a blueprint with the given id.
func Extras(c domain.Choices, id string) domain.BlueprintExtras {
	return domain.BlueprintExtras{
		NegativePrompt: NegativePrompt,
		AspectRatio:    AspectRatio(c),
		BlueprintRef:   blueprintRefPrefix + id,
		RenderConfig:   renderConfig(c.Goal),
	}
}

// AspectRatio is 16:9 for video regardless of lens, otherwise follows the
// image lens rule.
func AspectRatio(c domain.Choices) string {
	if c.Goal == domain.GoalVideo {
		return "16:9"
	}
	return imageAspectRatio(c)
}

func renderConfig(goal domain.Goal) string {
	if goal == domain.GoalVideo {
		return renderConfigVideo
	}
	return renderConfigDefault
}

func randomID() string {
	var sb strings.Builder
	sb.Grow(idLength)
	for i := 0; i < idLength; i++ {
		sb.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return sb.String()
}
