package domain

import (
	"encoding/json"
	"testing"
)

func TestNewChoicesDefaults(t *testing.T) {
	c := NewChoices()
	if c.Goal != GoalUnset {
		t.Fatalf("Goal = %q, want unset", c.Goal)
	}
	if c.Intent != DefaultIntent {
		t.Fatalf("Intent = %q, want %q", c.Intent, DefaultIntent)
	}
	c.Sliders.Each(func(name string, value int) {
		if value != DefaultSliderValue {
			t.Fatalf("slider %s = %d, want %d", name, value, DefaultSliderValue)
		}
	})
}

func TestToggleMoodCapsAndRemoves(t *testing.T) {
	c := NewChoices()
	for _, m := range []string{"noir", "cyberpunk", "vintage", "ethereal", "brutalist"} {
		c = c.ToggleMood(m)
	}
	if len(c.Moods) != MaxMoods {
		t.Fatalf("len(Moods) = %d, want %d", len(c.Moods), MaxMoods)
	}
	if c.HasMood("brutalist") {
		t.Fatalf("fifth mood should be ignored, got %v", c.Moods)
	}

	c = c.ToggleMood("cyberpunk")
	want := []string{"noir", "vintage", "ethereal"}
	if len(c.Moods) != len(want) {
		t.Fatalf("Moods = %v, want %v", c.Moods, want)
	}
	for i := range want {
		if c.Moods[i] != want[i] {
			t.Fatalf("Moods = %v, want %v", c.Moods, want)
		}
	}
}

func TestMutatorsDoNotAliasReceiver(t *testing.T) {
	base := NewChoices().WithGoal(GoalImage).WithDetail("lens", "35mm").ToggleMood("noir")

	_ = base.WithDetail("lens", "200mm")
	_ = base.ToggleMood("noir")
	if _, ok := base.WithSlider(SliderStyle, 99); !ok {
		t.Fatalf("WithSlider(style) reported unknown slider")
	}

	if base.Detail("lens") != "35mm" {
		t.Fatalf("Details mutated through copy: %v", base.Details)
	}
	if !base.HasMood("noir") {
		t.Fatalf("Moods mutated through copy: %v", base.Moods)
	}
	if base.Sliders.Style != DefaultSliderValue {
		t.Fatalf("Sliders mutated through copy: %+v", base.Sliders)
	}
}

func TestWithGoalClearsCategory(t *testing.T) {
	c := NewChoices().WithGoal(GoalImage).WithCategory("portrait").WithGoal(GoalVideo)
	if c.Category != "" {
		t.Fatalf("Category = %q, want empty", c.Category)
	}
}

func TestWithSliderUnknown(t *testing.T) {
	c := NewChoices()
	if _, ok := c.WithSlider("warmth", 10); ok {
		t.Fatalf("WithSlider(warmth) should report unknown slider")
	}
}

func TestGoalJSON(t *testing.T) {
	raw, err := json.Marshal(NewChoices())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Unmarshal generic: %v", err)
	}
	if v, ok := generic["goal"]; !ok || v != nil {
		t.Fatalf("unset goal should encode as null, got %#v", v)
	}

	var c Choices
	if err := json.Unmarshal([]byte(`{"goal":"video","moods":["noir"]}`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.Goal != GoalVideo {
		t.Fatalf("Goal = %q, want video", c.Goal)
	}
	if err := json.Unmarshal([]byte(`{"goal":null}`), &c); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if c.Goal != GoalUnset {
		t.Fatalf("Goal = %q, want unset", c.Goal)
	}
	if err := json.Unmarshal([]byte(`{"goal":7}`), &c); err == nil {
		t.Fatalf("numeric goal should fail to decode")
	}
}
