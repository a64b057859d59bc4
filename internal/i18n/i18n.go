// Package i18n maps question and catalog identifiers to display text. It only
// touches what the wizard shows; generated prompt text is always English.
package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vibecraft/internal/domain"
)

const (
	LocaleEN = "en"
	LocaleTR = "tr"
	LocaleAR = "ar"

	// DefaultLocale is used when nothing better matches.
	DefaultLocale = LocaleEN
)

// Supported lists the display locales in matcher preference order.
var Supported = []string{LocaleEN, LocaleTR, LocaleAR}

var (
	supportedTags = []language.Tag{language.English, language.Turkish, language.Arabic}
	matcher       = language.NewMatcher(supportedTags)
)

// IsSupported reports whether locale is one of Supported.
func IsSupported(locale string) bool {
	for _, l := range Supported {
		if l == locale {
			return true
		}
	}
	return false
}

// Match resolves an Accept-Language style header or a bare tag ("tr-TR") to a
// supported locale. The empty string is returned when nothing matches.
func Match(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return Supported[idx]
}

// Direction is the text direction the UI should use for locale.
func Direction(locale string) string {
	if locale == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// Text returns the translation for key, or fallback when none exists.
func Text(locale, key, fallback string) string {
	if v, ok := messages[locale][key]; ok && v != "" {
		return v
	}
	return fallback
}

// Humanize turns an identifier such as "high-fashion" into a title-cased label
// using the casing rules of locale.
func Humanize(locale, value string) string {
	tag := language.English
	if t, err := language.Parse(locale); err == nil {
		tag = t
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(value)
	return cases.Title(tag).String(words)
}

// LocalizeQuestions returns copies of qs with labels, option text and
// placeholders translated to locale. Untranslated text keeps its default.
func LocalizeQuestions(locale string, qs []domain.Question) []domain.Question {
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		lq := q.Clone()
		prefix := "q." + q.ID
		lq.Label = Text(locale, prefix, q.Label)
		if q.Placeholder != "" {
			lq.Placeholder = Text(locale, prefix+".placeholder", q.Placeholder)
		}
		for j, opt := range lq.Options {
			key := prefix + "." + opt.Value
			lq.Options[j].Label = Text(locale, key, opt.Label)
			if opt.Description != "" {
				lq.Options[j].Description = Text(locale, key+".desc", opt.Description)
			}
		}
		out[i] = lq
	}
	return out
}

// GoalEntry is a goal together with its localized categories.
type GoalEntry struct {
	Value      string                `json:"value"`
	Label      string                `json:"label"`
	Categories []domain.CatalogEntry `json:"categories"`
}

// Catalog is the localized set of wizard options.
type Catalog struct {
	Locale    string                `json:"locale"`
	Direction string                `json:"direction"`
	Goals     []GoalEntry           `json:"goals"`
	Moods     []domain.CatalogEntry `json:"moods"`
	Intents   []domain.CatalogEntry `json:"intents"`
}

// LocalizeCatalog builds the option catalog for locale.
func LocalizeCatalog(locale string) Catalog {
	if !IsSupported(locale) {
		locale = DefaultLocale
	}
	cat := Catalog{
		Locale:    locale,
		Direction: Direction(locale),
		Moods:     localizeEntries(locale, "mood.", domain.Moods),
		Intents:   localizeEntries(locale, "intent.", domain.Intents),
	}
	for _, goal := range domain.Goals {
		g := string(goal)
		cat.Goals = append(cat.Goals, GoalEntry{
			Value:      g,
			Label:      Text(locale, "goal."+g, Humanize(locale, g)),
			Categories: localizeEntries(locale, "cat."+g+".", domain.GoalCategories[goal]),
		})
	}
	return cat
}

func localizeEntries(locale, prefix string, entries []domain.CatalogEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(entries))
	for i, e := range entries {
		label := e.Label
		if label == "" {
			label = Humanize(locale, e.Value)
		}
		out[i] = domain.CatalogEntry{
			Value:       e.Value,
			Label:       Text(locale, prefix+e.Value, label),
			Description: e.Description,
		}
		if e.Description != "" {
			out[i].Description = Text(locale, prefix+e.Value+".desc", e.Description)
		}
	}
	return out
}
