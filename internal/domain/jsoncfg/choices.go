// Package jsoncfg holds the JSON request shapes accepted at the edges and
// converts them into domain values.
package jsoncfg

import (
	"fmt"
	"sort"
	"strings"

	"vibecraft/internal/domain"
)

// ChoicesJSON is the wire form of a choice structure. Missing fields take the
// same defaults as a fresh wizard session.
type ChoicesJSON struct {
	Goal     domain.Goal       `json:"goal"`
	Moods    []string          `json:"moods"`
	Intent   string            `json:"intent"`
	Category string            `json:"category"`
	Details  map[string]string `json:"details"`
	Sliders  map[string]int    `json:"sliders"`
}

// Normalize trims identifiers and fills defaults.
func (c *ChoicesJSON) Normalize() {
	if c == nil {
		return
	}
	c.Goal = domain.Goal(strings.ToLower(strings.TrimSpace(string(c.Goal))))
	c.Intent = strings.ToLower(strings.TrimSpace(c.Intent))
	if c.Intent == "" {
		c.Intent = domain.DefaultIntent
	}
	c.Category = strings.ToLower(strings.TrimSpace(c.Category))
	moods := make([]string, 0, len(c.Moods))
	for _, m := range c.Moods {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			moods = append(moods, m)
		}
	}
	c.Moods = moods
	details := make(map[string]string, len(c.Details))
	for k, v := range c.Details {
		if k = strings.TrimSpace(k); k != "" {
			details[k] = strings.TrimSpace(v)
		}
	}
	c.Details = details
}

// Validate checks the structure. When requireGoal is set an unset goal is
// rejected with domain.ErrGoalRequired; every other problem wraps
// domain.ErrInvalidChoices.
func (c ChoicesJSON) Validate(requireGoal bool) error {
	if c.Goal == domain.GoalUnset {
		if requireGoal {
			return domain.ErrGoalRequired
		}
	} else if !c.Goal.Valid() {
		return invalid("goal must be one of video, image, game, tool")
	}
	if c.Intent != "" && !domain.IsIntent(c.Intent) {
		return invalid("unknown intent %q", c.Intent)
	}
	if len(c.Moods) > domain.MaxMoods {
		return invalid("at most %d moods may be selected", domain.MaxMoods)
	}
	seen := make(map[string]struct{}, len(c.Moods))
	for _, m := range c.Moods {
		if _, dup := seen[m]; dup {
			return invalid("mood %q selected twice", m)
		}
		seen[m] = struct{}{}
	}
	if c.Category != "" {
		if c.Goal == domain.GoalUnset {
			return invalid("category requires a goal")
		}
		if !domain.IsCategory(c.Goal, c.Category) {
			return invalid("category %q does not belong to goal %s", c.Category, c.Goal)
		}
	}
	probe := domain.DefaultSliders()
	for _, name := range sortedKeys(c.Sliders) {
		v := c.Sliders[name]
		if _, ok := probe.Get(name); !ok {
			return invalid("unknown slider %q", name)
		}
		if v < 0 || v > 100 {
			return invalid("slider %s must be between 0 and 100", name)
		}
	}
	return nil
}

// Choices converts the request into a domain value. Call Normalize and
// Validate first.
func (c ChoicesJSON) Choices() domain.Choices {
	out := domain.NewChoices()
	out.Goal = c.Goal
	out.Category = c.Category
	if c.Intent != "" {
		out.Intent = c.Intent
	}
	for _, m := range c.Moods {
		out = out.ToggleMood(m)
	}
	for k, v := range c.Details {
		out.Details[k] = v
	}
	for name, v := range c.Sliders {
		out, _ = out.WithSlider(name, v)
	}
	return out
}

// FromChoices is the inverse of Choices.
func FromChoices(c domain.Choices) ChoicesJSON {
	out := ChoicesJSON{
		Goal:     c.Goal,
		Moods:    append([]string{}, c.Moods...),
		Intent:   c.Intent,
		Category: c.Category,
		Details:  make(map[string]string, len(c.Details)),
		Sliders:  make(map[string]int, 5),
	}
	for k, v := range c.Details {
		out.Details[k] = v
	}
	c.Sliders.Each(func(name string, value int) {
		out.Sliders[name] = value
	})
	return out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidChoices, fmt.Sprintf(format, args...))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
