package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Goal selects which routing and generation ruleset applies.
type Goal string

const (
	GoalUnset Goal = ""
	GoalVideo Goal = "video"
	GoalImage Goal = "image"
	GoalGame  Goal = "game"
	GoalTool  Goal = "tool"
)

// Goals lists the closed set of goals in display order.
var Goals = []Goal{GoalVideo, GoalImage, GoalGame, GoalTool}

// Valid reports whether g is one of the four known goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalVideo, GoalImage, GoalGame, GoalTool:
		return true
	}
	return false
}

// MarshalJSON encodes an unset goal as null.
func (g Goal) MarshalJSON() ([]byte, error) {
	if g == GoalUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(g))
}

// UnmarshalJSON accepts null or a string.
func (g *Goal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = GoalUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	*g = Goal(s)
	return nil
}

const (
	// MaxMoods caps the number of selected moods.
	MaxMoods = 4
	// DefaultIntent is applied to a fresh choice structure.
	DefaultIntent = "cinematic"
	// DefaultSliderValue is the resting position of every slider.
	DefaultSliderValue = 50
)

// Slider names as used by WithSlider and the CLI.
const (
	SliderComplexity = "complexity"
	SliderSharpness  = "sharpness"
	SliderEnergy     = "energy"
	SliderStyle      = "style"
	SliderBoldness   = "boldness"
)

// Sliders holds the five wording dials, each expected in [0,100].
type Sliders struct {
	Complexity int `json:"complexity"`
	Sharpness  int `json:"sharpness"`
	Energy     int `json:"energy"`
	Style      int `json:"style"`
	Boldness   int `json:"boldness"`
}

// DefaultSliders returns every dial at its resting position.
func DefaultSliders() Sliders {
	return Sliders{
		Complexity: DefaultSliderValue,
		Sharpness:  DefaultSliderValue,
		Energy:     DefaultSliderValue,
		Style:      DefaultSliderValue,
		Boldness:   DefaultSliderValue,
	}
}

// Get returns the value of the named slider.
func (s Sliders) Get(name string) (int, bool) {
	switch name {
	case SliderComplexity:
		return s.Complexity, true
	case SliderSharpness:
		return s.Sharpness, true
	case SliderEnergy:
		return s.Energy, true
	case SliderStyle:
		return s.Style, true
	case SliderBoldness:
		return s.Boldness, true
	}
	return 0, false
}

// Each calls fn for every slider in display order.
func (s Sliders) Each(fn func(name string, value int)) {
	fn(SliderComplexity, s.Complexity)
	fn(SliderSharpness, s.Sharpness)
	fn(SliderEnergy, s.Energy)
	fn(SliderStyle, s.Style)
	fn(SliderBoldness, s.Boldness)
}

// Choices is the structure the wizard accumulates and hands to the router and
// the generator.
type Choices struct {
	Goal     Goal              `json:"goal"`
	Moods    []string          `json:"moods"`
	Intent   string            `json:"intent"`
	Category string            `json:"category"`
	Details  map[string]string `json:"details"`
	Sliders  Sliders           `json:"sliders"`
}

// NewChoices returns the initial structure shown when the wizard starts.
func NewChoices() Choices {
	return Choices{
		Moods:   []string{},
		Intent:  DefaultIntent,
		Details: map[string]string{},
		Sliders: DefaultSliders(),
	}
}

// Clone returns a deep copy.
func (c Choices) Clone() Choices {
	out := c
	out.Moods = append([]string{}, c.Moods...)
	out.Details = make(map[string]string, len(c.Details))
	for k, v := range c.Details {
		out.Details[k] = v
	}
	return out
}

// Detail returns the answer for a question id, or "" when unanswered.
func (c Choices) Detail(id string) string {
	if c.Details == nil {
		return ""
	}
	return c.Details[id]
}

// HasMood reports whether mood is selected.
func (c Choices) HasMood(mood string) bool {
	for _, m := range c.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Mood returns the mood at position i, or "" when fewer are selected.
func (c Choices) Mood(i int) string {
	if i < 0 || i >= len(c.Moods) {
		return ""
	}
	return c.Moods[i]
}

// WithGoal selects a goal. Categories are goal specific so the category is
// cleared.
func (c Choices) WithGoal(goal Goal) Choices {
	out := c.Clone()
	out.Goal = goal
	out.Category = ""
	return out
}

// ToggleMood deselects mood when present, otherwise selects it unless
// MaxMoods are already chosen.
func (c Choices) ToggleMood(mood string) Choices {
	out := c.Clone()
	if c.HasMood(mood) {
		kept := out.Moods[:0]
		for _, m := range out.Moods {
			if m != mood {
				kept = append(kept, m)
			}
		}
		out.Moods = kept
		return out
	}
	if len(out.Moods) < MaxMoods {
		out.Moods = append(out.Moods, mood)
	}
	return out
}

func (c Choices) WithIntent(intent string) Choices {
	out := c.Clone()
	out.Intent = intent
	return out
}

func (c Choices) WithCategory(category string) Choices {
	out := c.Clone()
	out.Category = category
	return out
}

// WithDetail records the answer to a question.
func (c Choices) WithDetail(id, value string) Choices {
	out := c.Clone()
	out.Details[id] = value
	return out
}

// WithSlider sets the named slider. Unknown names return the input unchanged
// and false.
func (c Choices) WithSlider(name string, value int) (Choices, bool) {
	out := c.Clone()
	switch name {
	case SliderComplexity:
		out.Sliders.Complexity = value
	case SliderSharpness:
		out.Sliders.Sharpness = value
	case SliderEnergy:
		out.Sliders.Energy = value
	case SliderStyle:
		out.Sliders.Style = value
	case SliderBoldness:
		out.Sliders.Boldness = value
	default:
		return c, false
	}
	return out, true
}
