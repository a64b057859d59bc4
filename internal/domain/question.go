package domain

// QuestionType distinguishes enumerated from free-form questions.
type QuestionType string

const (
	QuestionSingle QuestionType = "single"
	QuestionText   QuestionType = "text"
)

// QuestionOption is one selectable answer of a single-choice question.
type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Question is a descriptive follow-up prompt shown in the drafting step. It
// carries no validation state.
type Question struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Type        QuestionType     `json:"type"`
	Options     []QuestionOption `json:"options,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
}

// Clone returns a copy whose options slice is not shared.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]QuestionOption(nil), q.Options...)
	}
	return out
}

// HasOption reports whether value is one of the question's options.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
