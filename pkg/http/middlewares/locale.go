package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tsuru/beta/pkg/i18n"
	"golang.org/x/text/language"
)

const languageKey = "language"

// Locale resolves the page language once per request.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, i18n.ResolveTag(c.Request))
		c.Next()
	}
}

func LanguageFrom(c *gin.Context) language.Tag {
	if v, ok := c.Get(languageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return i18n.ResolveTag(c.Request)
}
