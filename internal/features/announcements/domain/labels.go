package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	labelNo        = "No Dismissals Allowed"
	labelSession   = "Session Only Dismissal"
	labelPermanent = "Permanent Dismissal Allowed"
)

var supportedLanguages = []language.Tag{language.English, language.Spanish}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	message.SetString(language.Spanish, labelNo, "No se permite descartar")
	message.SetString(language.Spanish, labelSession, "Descartar solo durante la sesión")
	message.SetString(language.Spanish, labelPermanent, "Se permite descartar permanentemente")
}

// Label is the human readable policy name in lang.
func (t DismissalType) Label(lang language.Tag) string {
	p := message.NewPrinter(lang)
	switch t {
	case DismissalNo:
		return p.Sprintf(labelNo)
	case DismissalSession:
		return p.Sprintf(labelSession)
	case DismissalPermanent:
		return p.Sprintf(labelPermanent)
	default:
		return fmt.Sprintf("DismissalType(%d)", int(t))
	}
}

// MatchLanguage picks the supported language for an Accept-Language header value.
// English is the fallback.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, index, _ := languageMatcher.Match(tags...)
	return supportedLanguages[index]
}
