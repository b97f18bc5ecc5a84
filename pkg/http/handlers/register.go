package handlers

import (
	"net/http"

	"github.com/coneno/logger"
	"github.com/gin-gonic/gin"
	"github.com/tsuru/beta/pkg/db"
	mw "github.com/tsuru/beta/pkg/http/middlewares"
	"github.com/tsuru/beta/pkg/i18n"
	"github.com/tsuru/beta/pkg/identity"
	"github.com/tsuru/beta/pkg/oauth"
)

const msgTokenRequired = "Token is required."

func (h *HttpEndpoints) AddRegisterAPI(rg *gin.RouterGroup) {
	g := rg.Group("/register")
	{
		g.GET("/facebook", h.withStore(h.facebookRegister)) // ?access_token=
		g.GET("/github", h.withStore(h.githubRegister))     // ?code=
		g.GET("/gplus",                                     // ?token=&token_type=
			mw.RequireQueryParams(msgTokenRequired, "token", "token_type"),
			h.withStore(h.gplusRegister),
		)
	}
}

func (h *HttpEndpoints) facebookRegister(c *gin.Context, store db.Store) {
	id, err := h.connectors.Facebook.Identity(c.Request.Context(), c.Query("access_token"))
	if err != nil {
		h.oauthFailed(c, err)
		return
	}
	h.registerIdentity(c, store, id, identity.Facebook, "")
}

func (h *HttpEndpoints) githubRegister(c *gin.Context, store db.Store) {
	id, err := h.connectors.GitHub.Identity(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.oauthFailed(c, err)
		return
	}
	h.registerIdentity(c, store, id, identity.GitHub, "")
}

func (h *HttpEndpoints) gplusRegister(c *gin.Context, store db.Store) {
	id, err := h.connectors.Google.Identity(c.Request.Context(), c.Query("token"), c.Query("token_type"))
	if err != nil {
		h.oauthFailed(c, err)
		return
	}
	h.registerIdentity(c, store, id, identity.Google, "/")
}

func (h *HttpEndpoints) registerIdentity(c *gin.Context, store db.Store, id identity.Identity, provider identity.Provider, redirectTo string) {
	res, err := h.registration.Register(c.Request.Context(), store, id.FirstName, id.LastName, id.Email, string(provider))
	if err != nil {
		logger.Error.Printf("[%s] %s registration of %s failed: %v", mw.RequestIDFrom(c), provider, id.Email, err)
		c.String(http.StatusInternalServerError, msgInternalError)
		return
	}
	h.renderRegistration(c, res, redirectTo)
}

// oauthFailed sends the visitor back to the signup page with a message
// explaining what went wrong with the provider.
func (h *HttpEndpoints) oauthFailed(c *gin.Context, err error) {
	logger.Error.Printf("[%s] oauth registration failed: %v", mw.RequestIDFrom(c), err)

	msg := i18n.MsgProviderFailed
	if f, ok := oauth.FailureOf(err); ok {
		msg = failureMessage(f)
	}
	addFlash(c, msg)
	c.Redirect(http.StatusFound, "/try")
}

func failureMessage(f *oauth.Failure) string {
	switch f.Provider {
	case identity.Facebook:
		return i18n.MsgFacebookFailed
	case identity.GitHub:
		if f.Kind == oauth.NoEmail {
			return i18n.MsgGitHubNoEmail
		}
		return i18n.MsgGitHubFailed
	case identity.Google:
		return i18n.MsgGoogleFailed
	default:
		return i18n.MsgProviderFailed
	}
}
