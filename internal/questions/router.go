// Package questions routes the drafting step: given the choices made so far it
// decides which follow-up questions the wizard should show.
package questions

import "vibecraft/internal/domain"

// Question identifiers emitted by the router. They double as keys in
// Choices.Details.
const (
	IDPacing        = "pacing"
	IDFogDensity    = "fog_density"
	IDMaterial      = "material"
	IDLightingSetup = "lighting_setup"
	IDLens          = "lens"
	IDUserLevel     = "user_level"
	IDCoreLoop      = "core_loop"
	IDSubject       = "subject"
)

var pacing = domain.Question{
	ID:    IDPacing,
	Label: "How should the pacing feel?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "fast", Label: "Rapid & Energetic", Description: "Quick cuts, high motion"},
		{Value: "slow", Label: "Slow & Deliberate", Description: "Lingering shots, calm flow"},
		{Value: "erratic", Label: "Erratic & Dynamic", Description: "Unpredictable transitions"},
	},
}

var fogDensity = domain.Question{
	ID:    IDFogDensity,
	Label: "Level of environmental haze?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "none", Label: "Clear"},
		{Value: "light", Label: "Thin Fog"},
		{Value: "heavy", Label: "Dense Atmosphere"},
	},
}

var material = domain.Question{
	ID:    IDMaterial,
	Label: "Dominant material texture?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "matte", Label: "Matte Plastic"},
		{Value: "brushed", Label: "Brushed Aluminum"},
		{Value: "glass", Label: "Crystal Glass"},
		{Value: "ceramic", Label: "Polished Ceramic"},
	},
}

var lightingSetup = domain.Question{
	ID:    IDLightingSetup,
	Label: "Studio lighting setup?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "rim", Label: "Rim Lighting"},
		{Value: "softbox", Label: "Top Softbox"},
		{Value: "neon", Label: "Dual Neon Tubes"},
	},
}

var lens = domain.Question{
	ID:    IDLens,
	Label: "Preferred lens focal length?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "35mm", Label: "35mm Storytelling"},
		{Value: "85mm", Label: "85mm Classic Portrait"},
		{Value: "200mm", Label: "200mm Telephoto Compression"},
	},
}

var userLevel = domain.Question{
	ID:    IDUserLevel,
	Label: "Who is the target user?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "pro", Label: "Industry Professionals"},
		{Value: "beginner", Label: "Absolute Beginners"},
		{Value: "hobbyist", Label: "Enthusiastic Hobbyists"},
	},
}

var coreLoop = domain.Question{
	ID:    IDCoreLoop,
	Label: "What is the primary action?",
	Type:  domain.QuestionSingle,
	Options: []domain.QuestionOption{
		{Value: "collect", Label: "Gather & Build"},
		{Value: "combat", Label: "Tactical Combat"},
		{Value: "explore", Label: "Narrative Discovery"},
		{Value: "solve", Label: "Complex Deduction"},
	},
}

var subject = domain.Question{
	ID:          IDSubject,
	Label:       "What is the main subject or core concept?",
	Type:        domain.QuestionText,
	Placeholder: "e.g. A lone wanderer in a desert, A premium minimalist coffee machine...",
}

// rule contributes the questions for one goal.
type rule func(c domain.Choices) []domain.Question

var goalRules = map[domain.Goal]rule{
	domain.GoalVideo: videoQuestions,
	domain.GoalImage: imageQuestions,
	domain.GoalTool:  toolQuestions,
	domain.GoalGame:  gameQuestions,
}

func videoQuestions(c domain.Choices) []domain.Question {
	out := []domain.Question{pacing}
	if c.HasMood("noir") {
		out = append(out, fogDensity)
	}
	return out
}

func imageQuestions(c domain.Choices) []domain.Question {
	switch c.Category {
	case "product":
		return []domain.Question{material, lightingSetup}
	case "portrait":
		return []domain.Question{lens}
	}
	return nil
}

func toolQuestions(domain.Choices) []domain.Question {
	return []domain.Question{userLevel}
}

func gameQuestions(domain.Choices) []domain.Question {
	return []domain.Question{coreLoop}
}

// Compute returns the ordered follow-up questions for c: the goal specific
// questions first, then the universal subject question. It never mutates c
// and every returned question is a fresh copy.
func Compute(c domain.Choices) []domain.Question {
	var picked []domain.Question
	if r, ok := goalRules[c.Goal]; ok {
		picked = r(c)
	}
	picked = append(picked, subject)

	out := make([]domain.Question, 0, len(picked))
	seen := make(map[string]struct{}, len(picked))
	for _, q := range picked {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		out = append(out, q.Clone())
	}
	return out
}

// Lookup returns the static definition of a question by id, regardless of
// whether the router would currently emit it.
func Lookup(id string) (domain.Question, bool) {
	for _, q := range all {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return domain.Question{}, false
}

var all = []domain.Question{pacing, fogDensity, material, lightingSetup, lens, userLevel, coreLoop, subject}

// All returns every question the router can emit, in rule order.
func All() []domain.Question {
	out := make([]domain.Question, len(all))
	for i, q := range all {
		out[i] = q.Clone()
	}
	return out
}
