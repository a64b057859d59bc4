package questions

import (
	"reflect"
	"testing"

	"vibecraft/internal/domain"
)

func ids(qs []domain.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		choices domain.Choices
		want    []string
	}{
		{
			name:    "goal unset",
			choices: domain.NewChoices(),
			want:    []string{IDSubject},
		},
		{
			name:    "unknown goal",
			choices: domain.NewChoices().WithGoal("podcast"),
			want:    []string{IDSubject},
		},
		{
			name:    "video without noir",
			choices: domain.NewChoices().WithGoal(domain.GoalVideo).ToggleMood("cyberpunk"),
			want:    []string{IDPacing, IDSubject},
		},
		{
			name:    "video with noir",
			choices: domain.NewChoices().WithGoal(domain.GoalVideo).ToggleMood("ethereal").ToggleMood("noir"),
			want:    []string{IDPacing, IDFogDensity, IDSubject},
		},
		{
			name:    "image product",
			choices: domain.NewChoices().WithGoal(domain.GoalImage).WithCategory("product"),
			want:    []string{IDMaterial, IDLightingSetup, IDSubject},
		},
		{
			name:    "image portrait",
			choices: domain.NewChoices().WithGoal(domain.GoalImage).WithCategory("portrait"),
			want:    []string{IDLens, IDSubject},
		},
		{
			name:    "image without category",
			choices: domain.NewChoices().WithGoal(domain.GoalImage),
			want:    []string{IDSubject},
		},
		{
			name:    "image architecture",
			choices: domain.NewChoices().WithGoal(domain.GoalImage).WithCategory("architecture"),
			want:    []string{IDSubject},
		},
		{
			name:    "tool",
			choices: domain.NewChoices().WithGoal(domain.GoalTool).WithCategory("fintech"),
			want:    []string{IDUserLevel, IDSubject},
		},
		{
			name:    "game with noir does not ask for fog",
			choices: domain.NewChoices().WithGoal(domain.GoalGame).ToggleMood("noir"),
			want:    []string{IDCoreLoop, IDSubject},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Compute(tc.choices))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Compute() ids = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeLensOptions(t *testing.T) {
	qs := Compute(domain.NewChoices().WithGoal(domain.GoalImage).WithCategory("portrait"))
	if qs[0].Type != domain.QuestionSingle {
		t.Fatalf("lens type = %q, want single", qs[0].Type)
	}
	var values []string
	for _, opt := range qs[0].Options {
		values = append(values, opt.Value)
	}
	want := []string{"35mm", "85mm", "200mm"}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("lens options = %v, want %v", values, want)
	}
}

func TestComputeSubjectIsText(t *testing.T) {
	qs := Compute(domain.NewChoices())
	if qs[0].Type != domain.QuestionText || qs[0].Placeholder == "" {
		t.Fatalf("subject question = %+v, want text with placeholder", qs[0])
	}
	if len(qs[0].Options) != 0 {
		t.Fatalf("subject question should have no options")
	}
}

func TestComputeIsIdempotentAndIsolated(t *testing.T) {
	c := domain.NewChoices().WithGoal(domain.GoalVideo).ToggleMood("noir")
	snapshot := c.Clone()

	first := Compute(c)
	first[0].Label = "changed"
	first[0].Options[0].Label = "changed"

	second := Compute(c)
	if second[0].Label == "changed" || second[0].Options[0].Label == "changed" {
		t.Fatalf("Compute() returned shared question state")
	}
	if !reflect.DeepEqual(c, snapshot) {
		t.Fatalf("Compute() mutated its input: %+v", c)
	}
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("Compute() not idempotent: %v vs %v", ids(first), ids(second))
	}
}

func TestComputeNoDuplicateIDs(t *testing.T) {
	for _, goal := range append([]domain.Goal{domain.GoalUnset}, domain.Goals...) {
		for _, cat := range []string{"", "product", "portrait"} {
			c := domain.NewChoices().WithGoal(goal).WithCategory(cat).ToggleMood("noir")
			seen := map[string]bool{}
			for _, id := range ids(Compute(c)) {
				if seen[id] {
					t.Fatalf("duplicate id %q for goal=%q category=%q", id, goal, cat)
				}
				seen[id] = true
			}
		}
	}
}

func TestLookup(t *testing.T) {
	q, ok := Lookup(IDFogDensity)
	if !ok || !q.HasOption("heavy") {
		t.Fatalf("Lookup(fog_density) = %+v, %v", q, ok)
	}
	if _, ok := Lookup("mystery"); ok {
		t.Fatalf("Lookup(mystery) should fail")
	}
	if len(All()) != 8 {
		t.Fatalf("All() returned %d questions, want 8", len(All()))
	}
}
