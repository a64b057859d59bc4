package handlers

import (
	"net/http"

	"vibecraft/internal/domain"
	"vibecraft/internal/domain/jsoncfg"
	"vibecraft/internal/i18n"
	"vibecraft/internal/middleware"
)

type questionsResponse struct {
	Locale    string            `json:"locale"`
	Direction string            `json:"direction"`
	Questions []domain.Question `json:"questions"`
}

// Questions returns the follow-up questions for a partial choice structure.
func (a *App) Questions(w http.ResponseWriter, r *http.Request) {
	var req jsoncfg.ChoicesJSON
	if !a.decode(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(false); err != nil {
		a.fail(w, r, err)
		return
	}

	locale := middleware.LocaleFromContext(r.Context())
	qs := a.Blueprints.Questions(req.Choices())
	a.json(w, http.StatusOK, questionsResponse{
		Locale:    locale,
		Direction: i18n.Direction(locale),
		Questions: i18n.LocalizeQuestions(locale, qs),
	})
}
