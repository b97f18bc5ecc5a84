package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddPagesAPI(rg *gin.RouterGroup) {
	rg.GET("/", h.index)
	rg.GET("/try", h.try)
	rg.GET("/about", h.staticPage("about.html"))
	rg.GET("/community", h.staticPage("community.html"))
	rg.GET("/tos", h.staticPage("tos.html"))
}

func (h *HttpEndpoints) index(c *gin.Context) {
	p := h.newPage(c)
	p.Flashes = popFlashes(c)
	h.render(c, http.StatusOK, "index.html", p)
}

func (h *HttpEndpoints) try(c *gin.Context) {
	h.renderTry(c, http.StatusOK, signupForm{}, nil)
}

func (h *HttpEndpoints) renderTry(c *gin.Context, status int, form signupForm, errs map[string]string) {
	p := h.newPage(c)
	p.Flashes = popFlashes(c)
	p.FacebookAppID = h.oauthConfig.FacebookAppID
	p.GitHubClientID = h.oauthConfig.GitHubClientID
	p.Form = form
	p.Errors = errs
	h.render(c, status, "try.html", p)
}

func (h *HttpEndpoints) staticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, name, h.newPage(c))
	}
}
