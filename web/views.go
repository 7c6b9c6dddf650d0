package web

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/launchpadhq/contactform/internal"
)

// FormState is everything the views need to render the contact form for one
// response: current input values, per-field errors, the summary error list,
// the button state, and the pending success message.
type FormState struct {
	Values           internal.FormValues
	FieldErrors      map[internal.Field]string
	Summary          []string
	Button           internal.ButtonState
	Success          string
	SuccessHideAfter time.Duration
}

// fieldSpec drives per-field markup.
type fieldSpec struct {
	field       internal.Field
	label       string
	inputType   string
	placeholder string
	multiline   bool
}

var fieldSpecs = []fieldSpec{
	{field: internal.FieldName, label: "Name", inputType: "text", placeholder: "Your name"},
	{field: internal.FieldEmail, label: "Email", inputType: "email", placeholder: "you@example.com"},
	{field: internal.FieldSubject, label: "Subject", inputType: "text", placeholder: "What is this about?"},
	{field: internal.FieldMessage, label: "Message", multiline: true, placeholder: "Write your message…"},
}

// Page wraps the form in a full HTML document with the htmx runtime and the
// form styles. Used for the initial GET; all later interaction is partial.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.WriteString("<title>" + templ.EscapeString(title) + "</title>")
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@2.0.4\"></script>")
		b.WriteString("<style>" + pageStyles + "</style>")
		b.WriteString("</head><body><main class=\"container\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

// ContactForm renders the form element with its current state: the error
// summary, the four field groups, and the submit button. The form is its own
// htmx swap target, so a submit response simply re-renders it.
func ContactForm(state FormState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form id="contact-form" hx-post="/contact" hx-target="this" hx-swap="outerHTML" hx-disabled-elt="#submit-btn" novalidate>`)
		writeErrorSummary(&b, state.Summary)
		for _, spec := range fieldSpecs {
			writeFieldGroup(&b, spec, state.Values, state.FieldErrors[spec.field])
		}
		writeSubmitButton(&b, state.Button)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FieldError renders the inline error element that sits next to a field.
// An empty message renders the empty placeholder, which hides itself and
// keeps listening for input on its field.
func FieldError(field internal.Field, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeFieldError(&b, field, message)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SuccessMessage renders the success box. With a message it becomes visible,
// scheduled to dismiss itself after hideAfter; without one it renders the
// hidden placeholder the out-of-band swap targets.
func SuccessMessage(message string, hideAfter time.Duration, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="success-message" class="success-box" role="status"`)
		if oob {
			b.WriteString(` hx-swap-oob="outerHTML"`)
		}
		if message == "" {
			b.WriteString(` hidden></div>`)
		} else {
			if hideAfter > 0 {
				fmt.Fprintf(&b, ` hx-get="/contact/success/dismiss" hx-trigger="load delay:%dms" hx-swap="outerHTML"`, hideAfter.Milliseconds())
			}
			b.WriteString(`>` + templ.EscapeString(message) + `</div>`)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeErrorSummary(b *strings.Builder, messages []string) {
	b.WriteString(`<div id="error-message" class="error-box" role="alert"`)
	if len(messages) == 0 {
		b.WriteString(` hidden><ul id="error-list"></ul></div>`)
		return
	}
	b.WriteString(`><ul id="error-list">`)
	for _, msg := range messages {
		b.WriteString(`<li>` + templ.EscapeString(msg) + `</li>`)
	}
	b.WriteString(`</ul></div>`)
}

func writeFieldGroup(b *strings.Builder, spec fieldSpec, values internal.FormValues, errMsg string) {
	name := string(spec.field)
	id := "contact-" + name
	value := fieldValue(values, spec.field)

	b.WriteString(`<div class="field-group">`)
	fmt.Fprintf(b, `<label for="%s">%s</label>`, id, templ.EscapeString(spec.label))

	validateAttrs := fmt.Sprintf(
		` hx-post="/contact/validate/%s" hx-trigger="blur" hx-target="#%s-error" hx-swap="outerHTML"`,
		name, name,
	)

	if spec.multiline {
		fmt.Fprintf(b, `<textarea id="%s" name="%s" rows="5" placeholder="%s"%s>%s</textarea>`,
			id, name, templ.EscapeString(spec.placeholder), validateAttrs, templ.EscapeString(value))
	} else {
		fmt.Fprintf(b, `<input type="%s" id="%s" name="%s" value="%s" placeholder="%s"%s>`,
			spec.inputType, id, name, templ.EscapeString(value), templ.EscapeString(spec.placeholder), validateAttrs)
	}

	writeFieldError(b, spec.field, errMsg)
	b.WriteString(`</div>`)
}

// writeFieldError emits the inline error element. It listens for input on
// its field so that typing clears the error state without re-validating.
func writeFieldError(b *strings.Builder, field internal.Field, message string) {
	name := string(field)
	fmt.Fprintf(b,
		`<div id="%s-error" class="field-error" hx-post="/contact/edited/%s" hx-trigger="input from:#contact-%s" hx-target="this" hx-swap="outerHTML">%s</div>`,
		name, name, name, templ.EscapeString(message))
}

func writeSubmitButton(b *strings.Builder, state internal.ButtonState) {
	b.WriteString(`<button type="submit" id="submit-btn" class="btn"`)
	if state.Disabled() {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>`)
	fmt.Fprintf(b, `<span id="btn-text" class="btn-label">%s</span>`, templ.EscapeString(state.Label()))
	fmt.Fprintf(b, `<span class="btn-loading">%s</span>`, templ.EscapeString(internal.LoadingLabel))
	b.WriteString(`</button>`)
}

func fieldValue(v internal.FormValues, f internal.Field) string {
	switch f {
	case internal.FieldName:
		return v.Name
	case internal.FieldEmail:
		return v.Email
	case internal.FieldSubject:
		return v.Subject
	case internal.FieldMessage:
		return v.Message
	}
	return ""
}

// pageStyles carries the form's presentation rules. Invalid-field styling is
// derived from the presence of inline error text, so swapping the small
// error element is enough to toggle the whole group's state. The loading
// label swap rides on the htmx-request class htmx puts on the form while a
// submit is in flight.
const pageStyles = `
.container { max-width: 560px; margin: 3rem auto; font-family: system-ui, sans-serif; }
.field-group { margin-bottom: 1rem; display: flex; flex-direction: column; gap: .25rem; }
.field-group label { font-weight: 600; }
.field-group input, .field-group textarea { padding: .5rem; border: 1px solid #cbd5e1; border-radius: 6px; font: inherit; }
.field-group:has(.field-error:not(:empty)) input,
.field-group:has(.field-error:not(:empty)) textarea { border-color: #dc2626; }
.field-error { color: #dc2626; font-size: .85rem; min-height: 1rem; }
.error-box { border: 1px solid #dc2626; background: #fef2f2; color: #991b1b; border-radius: 6px; padding: .75rem 1rem; margin-bottom: 1rem; animation: shake .4s ease-in-out; }
.error-box[hidden] { display: none; }
.error-box ul { margin: 0; padding-left: 1.25rem; }
.success-box { border: 1px solid #16a34a; background: #f0fdf4; color: #166534; border-radius: 6px; padding: .75rem 1rem; margin-bottom: 1rem; }
.success-box[hidden] { display: none; }
.btn { padding: .6rem 1.25rem; border: none; border-radius: 6px; background: #4f46e5; color: #fff; font: inherit; cursor: pointer; }
.btn[disabled] { opacity: .7; cursor: wait; }
.btn-loading { display: none; }
form.htmx-request .btn-label { display: none; }
form.htmx-request .btn-loading { display: inline; }
form.htmx-request .btn { opacity: .7; pointer-events: none; }
@keyframes shake {
  0%, 100% { transform: translateX(0); }
  25% { transform: translateX(-6px); }
  75% { transform: translateX(6px); }
}
`
