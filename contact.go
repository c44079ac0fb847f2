package folio

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	contactFlashKey  = "contact"
	contactSentFlash = "sent"

	requiredMessage = "This field is required."
)

// newValidator returns a validator that reports fields by their form name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateContact trims every field and returns the missing ones keyed by
// form name. A nil map means the form is complete.
func (a *App) validateContact(form *ContactForm) (map[string]string, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)

	err := a.validate.Struct(form)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = requiredMessage
	}
	return fields, nil
}

func (a *App) contactPage(c echo.Context) ContactPage {
	return ContactPage{
		AckDuration: a.Config.AckDuration,
		CSRFToken:   CsrfToken(c),
	}
}

func (a *App) handleContact(c echo.Context) error {
	page := a.contactPage(c)

	sess, err := session.Get(sessionName, c)
	if err == nil {
		if flashes := sess.Flashes(contactFlashKey); len(flashes) > 0 {
			page.Sent = flashes[0] == contactSentFlash
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return err
			}
		}
	}
	return Render(c, a.Views.Contact(page))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	ip := c.RealIP()
	if !a.limiter.Allow(ip) {
		a.submissions.WithLabelValues("limited").Inc()
		return c.String(http.StatusTooManyRequests, "Too many messages. Please try again in a minute.")
	}

	page := a.contactPage(c)
	if err := c.Bind(&page.Form); err != nil {
		a.limiter.Release(ip)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	fields, err := a.validateContact(&page.Form)
	if err != nil {
		a.limiter.Release(ip)
		return err
	}
	if fields != nil {
		a.limiter.Release(ip)
		a.submissions.WithLabelValues("invalid").Inc()
		page.Errors = fields
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Contact(page))
	}

	a.submissions.WithLabelValues("accepted").Inc()
	f := page.Form
	c.Logger().Infof("contact message from %q <%s> subject=%q length=%d",
		f.Name, f.Email, f.Subject, len(f.Message))

	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(contactSentFlash, contactFlashKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact/")
}
