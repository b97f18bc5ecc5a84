package handlers

import (
	"errors"
	"net/http"

	"github.com/coneno/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tsuru/beta/pkg/db"
	mw "github.com/tsuru/beta/pkg/http/middlewares"
	"github.com/tsuru/beta/pkg/registration"
	"github.com/tsuru/beta/pkg/types"
)

const (
	msgInvalidEmail       = "Invalid email."
	msgSignatureMismatch  = "Signatures don't match. You're probably doing something nasty."
	msgInternalError      = "Internal server error."
	fieldErrorRequired    = "This field is required."
	fieldErrorInvalidMail = "Invalid email address."
)

type signupForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Identity  string `form:"identity"`
}

type surveyForm struct {
	Email        string `form:"email" binding:"required,email"`
	Signature    string `form:"signature"`
	Work         string `form:"work"`
	Country      string `form:"country"`
	Organization string `form:"organization"`
	Why          string `form:"why"`
}

func (h *HttpEndpoints) AddSignupAPI(rg *gin.RouterGroup) {
	rg.POST("/signup", h.withStore(h.signup))
	rg.POST("/survey", h.withStore(h.survey))
}

func (h *HttpEndpoints) signup(c *gin.Context, store db.Store) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderTry(c, http.StatusBadRequest, form, fieldErrors(err))
		return
	}

	res, err := h.registration.Register(c.Request.Context(), store, form.FirstName, form.LastName, form.Email, form.Identity)
	if err != nil {
		logger.Error.Printf("[%s] signup of %s failed: %v", mw.RequestIDFrom(c), form.Email, err)
		c.String(http.StatusInternalServerError, msgInternalError)
		return
	}
	h.renderRegistration(c, res, "")
}

// renderRegistration shows the outcome of a registration. An already
// registered user is sent to redirectTo instead when it is set.
func (h *HttpEndpoints) renderRegistration(c *gin.Context, res registration.Result, redirectTo string) {
	p := h.newPage(c)
	if res.Status == registration.AlreadyRegistered {
		if redirectTo != "" {
			c.Redirect(http.StatusFound, redirectTo)
			return
		}
		p.Registered = true
		h.render(c, http.StatusOK, "confirmation.html", p)
		return
	}
	p.Survey = res.Survey
	p.Countries = h.countries.Choices(mw.LanguageFrom(c))
	h.render(c, http.StatusOK, "confirmation.html", p)
}

func (h *HttpEndpoints) survey(c *gin.Context, store db.Store) {
	var form surveyForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, msgInvalidEmail)
		return
	}
	if !h.signer.Verify(form.Email, form.Signature) {
		logger.Warning.Printf("[%s] survey signature mismatch for %s", mw.RequestIDFrom(c), form.Email)
		c.String(http.StatusBadRequest, msgSignatureMismatch)
		return
	}

	_, err := store.AddSurveyResponse(c.Request.Context(), types.SurveyResponse{
		Email:        form.Email,
		Work:         form.Work,
		Country:      form.Country,
		Organization: form.Organization,
		Why:          form.Why,
	})
	if err != nil {
		logger.Error.Printf("[%s] survey of %s not saved: %v", mw.RequestIDFrom(c), form.Email, err)
		c.String(http.StatusInternalServerError, msgInternalError)
		return
	}

	p := h.newPage(c)
	p.Answered = true
	h.render(c, http.StatusCreated, "confirmation.html", p)
}

// fieldErrors maps the form fields that failed validation to a message.
func fieldErrors(err error) map[string]string {
	errs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["email"] = fieldErrorInvalidMail
		return errs
	}
	for _, fe := range verrs {
		field := formField(fe.StructField())
		switch fe.Tag() {
		case "email":
			errs[field] = fieldErrorInvalidMail
		default:
			errs[field] = fieldErrorRequired
		}
	}
	return errs
}

func formField(structField string) string {
	switch structField {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	default:
		return "email"
	}
}
