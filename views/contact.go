package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

var contactFields = []struct {
	name, label, kind string
}{
	{"name", "Name", "text"},
	{"email", "Email", "email"},
	{"subject", "Subject", "text"},
	{"message", "Message", "textarea"},
}

// Contact renders the contact form. After a successful submission the page
// shows a transient acknowledgment and empty fields.
func (s *Site) Contact(page folio.ContactPage) templ.Component {
	values := map[string]string{
		"name":    page.Form.Name,
		"email":   page.Form.Email,
		"subject": page.Form.Subject,
		"message": page.Form.Message,
	}

	body := component(func(h *html) {
		h.raw(`<section class="page-intro"><h1 class="page-title">Get in Touch</h1>`)
		h.raw(`<p class="page-subtitle">Have a question or want to work together? Send me a message.</p></section>`)

		h.raw(`<section class="card contact">`)
		if page.Sent {
			h.raw(`<div class="alert alert-success alert-fade" role="status" style="--ack-duration: `,
				cssDuration(page.AckDuration), `">Thanks for reaching out! Your message has been received.</div>`)
		}
		h.raw(`<form class="contact-form" method="post" action="/contact/" novalidate>`)
		h.raw(`<input type="hidden" name="_csrf" value="`)
		h.text(page.CSRFToken)
		h.raw(`">`)
		for _, f := range contactFields {
			h.field(f.name, f.label, f.kind, values[f.name], page.Errors[f.name])
		}
		h.raw(`<button class="button" type="submit">Send Message</button></form></section>`)
	})
	return s.Layout(s.pageMeta("Contact", "", "contact"), NavContact, "", body)
}

func (h *html) field(name, label, kind, value, errMsg string) {
	cls := "field"
	if errMsg != "" {
		cls += " field-error"
	}
	h.raw(`<div class="`, cls, `"><label for="`, name, `">`, label, `</label>`)
	if kind == "textarea" {
		h.raw(`<textarea id="`, name, `" name="`, name, `" rows="6" required`)
		h.invalid(name, errMsg)
		h.raw(`>`)
		h.text(value)
		h.raw(`</textarea>`)
	} else {
		h.raw(`<input id="`, name, `" name="`, name, `" type="`, kind, `" required value="`)
		h.text(value)
		h.raw(`"`)
		h.invalid(name, errMsg)
		h.raw(`>`)
	}
	if errMsg != "" {
		h.raw(`<p class="error-text" id="`, name, `-error">`)
		h.text(errMsg)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

func (h *html) invalid(name, errMsg string) {
	if errMsg != "" {
		h.raw(` aria-invalid="true" aria-describedby="`, name, `-error"`)
	}
}
