package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CookieName stores the language picked by the visitor. It wins over the
// browser's Accept-Language.
const CookieName = "language"

var (
	supported = []language.Tag{language.English, language.Portuguese}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the languages the site is translated to, the default
// first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

func Default() language.Tag {
	return supported[0]
}

// ResolveTag picks the page language for r.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if cookie, err := r.Cookie(CookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
		tags, _, err := language.ParseAcceptLanguage(cookie.Value)
		if err != nil {
			return Default()
		}
		return Match(tags...)
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}
	return Default()
}

// Match returns the best supported language for the preferred tags, or
// the default when none is close enough.
func Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
