package handlers

import (
	"net/http"

	"github.com/coneno/logger"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tsuru/beta/pkg/countries"
	"github.com/tsuru/beta/pkg/db"
	mw "github.com/tsuru/beta/pkg/http/middlewares"
	"github.com/tsuru/beta/pkg/i18n"
	"github.com/tsuru/beta/pkg/registration"
	"golang.org/x/text/message"
)

// withStore acquires a store for the duration of one request and hands
// it to handle. The store is released however handle returns.
func (h *HttpEndpoints) withStore(handle func(c *gin.Context, store db.Store)) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := h.dbPool.Acquire(c.Request.Context())
		if err != nil {
			logger.Error.Printf("[%s] cannot acquire db session: %v", mw.RequestIDFrom(c), err)
			c.String(http.StatusInternalServerError, "Internal server error.")
			return
		}
		defer store.Release()
		handle(c, store)
	}
}

type page struct {
	Language string
	Flashes  []string

	FacebookAppID  string
	GitHubClientID string

	Form   signupForm
	Errors map[string]string

	Registered bool
	Answered   bool
	Survey     *registration.SurveyForm
	Countries  []countries.Choice

	printer *message.Printer
}

// T translates key to the page language.
func (p page) T(key string) string {
	if p.printer == nil {
		return key
	}
	return p.printer.Sprintf(key)
}

func (h *HttpEndpoints) newPage(c *gin.Context) page {
	tag := mw.LanguageFrom(c)
	return page{
		Language: tag.String(),
		printer:  i18n.Printer(tag),
	}
}

func (h *HttpEndpoints) render(c *gin.Context, status int, name string, p page) {
	c.HTML(status, name, p)
}

func addFlash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		logger.Error.Printf("[%s] cannot save flash: %v", mw.RequestIDFrom(c), err)
	}
}

// popFlashes returns and clears the pending flash messages.
func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.Error.Printf("[%s] cannot clear flashes: %v", mw.RequestIDFrom(c), err)
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}
