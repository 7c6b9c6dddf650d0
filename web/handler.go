// Package web is the HTMX surface of the contact form: a full page on GET
// and partial swaps for everything else. The browser talks to four
// endpoints (submit, per-field blur validation, per-field edit clearing,
// success dismissal); all user-visible state is rendered server-side.
package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/launchpadhq/contactform/internal"
	"github.com/launchpadhq/contactform/pkg/htmx"
	"github.com/launchpadhq/contactform/pkg/logger"
)

// Handler serves the contact form over HTTP with htmx-driven interaction:
// full page on GET, partial form swaps on submit, and small per-field swaps
// for blur validation and the typing transition.
//
// Each request builds a fresh form controller around a request-scoped
// presenter, so no mutable state is shared between requests.
type Handler struct {
	logger   *slog.Logger
	title    string
	formOpts []internal.Option
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the handler's logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithTitle sets the page title for the full-page render.
func WithTitle(title string) Option {
	return func(h *Handler) {
		if title != "" {
			h.title = title
		}
	}
}

// WithForm appends options passed to every per-request form controller,
// e.g. a custom validator, submitter, or success-message timing.
func WithForm(opts ...internal.Option) Option {
	return func(h *Handler) {
		h.formOpts = append(h.formOpts, opts...)
	}
}

// NewHandler creates a contact-form handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		logger: logger.NewNope(),
		title:  "Contact",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the handler's routes on the router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/contact", h.handleSubmit)
	r.Post("/contact/validate/{field}", h.handleFieldBlur)
	r.Post("/contact/edited/{field}", h.handleFieldInput)
	r.Get("/contact/success/dismiss", h.handleSuccessDismiss)
}

// Router returns a ready-to-serve router with the handler mounted at the
// root. Convenience for embedding the form as a standalone service.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

// newForm builds the per-request form controller around the given presenter.
func (h *Handler) newForm(p internal.Presenter) *internal.Form {
	opts := make([]internal.Option, 0, len(h.formOpts)+2)
	opts = append(opts, internal.WithLogger(h.logger))
	opts = append(opts, h.formOpts...)
	opts = append(opts, internal.WithPresenter(p))
	return internal.NewForm(opts...)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := Page(h.title, templ.Join(
		SuccessMessage("", 0, false),
		ContactForm(FormState{}),
	))
	h.render(w, r, http.StatusOK, page)
}

// handleSubmit runs one submit attempt and re-renders the form with the
// resulting state. Validation failures come back with the summary scrolled
// into view; success swaps in a reset form plus the out-of-band success
// message.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	values := internal.FormValues{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	p := newPresenter(values)
	form := h.newForm(p)

	// Submit errors surface through the presenter as summary messages;
	// validation errors are already folded into the render state.
	_, _, _ = form.Submit(r.Context(), values)

	state := p.FormState()

	var opts []htmx.RenderOption
	switch {
	case state.Success != "":
		opts = append(opts,
			htmx.WithOOB(SuccessMessage(state.Success, state.SuccessHideAfter, true)),
			htmx.WithReswap(htmx.SwapOuterHTML.Show("#success-message:top")),
		)
	case len(state.Summary) > 0:
		opts = append(opts, htmx.WithReswap(htmx.SwapOuterHTML.Show("top")))
	}

	if htmx.IsHTMX(r) {
		h.render(w, r, http.StatusOK, ContactForm(state), opts...)
		return
	}

	// Graceful degradation without htmx: re-render the whole page.
	page := Page(h.title, templ.Join(
		SuccessMessage(state.Success, state.SuccessHideAfter, false),
		ContactForm(state),
	))
	h.render(w, r, http.StatusOK, page)
}

// handleFieldBlur validates a single field and swaps its inline error.
func (h *Handler) handleFieldBlur(w http.ResponseWriter, r *http.Request) {
	field := internal.Field(chi.URLParam(r, "field"))
	if !isKnownField(field) {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	p := newPresenter(internal.FormValues{})
	form := h.newForm(p)

	message := ""
	if verr := form.FieldBlur(field, r.PostFormValue(string(field))); verr != nil {
		message = verr.Message
	}

	h.render(w, r, http.StatusOK, FieldError(field, message))
}

// handleFieldInput clears a field's error state while the user types.
// Nothing is re-validated; the error text is recomputed on the next blur
// or submit.
func (h *Handler) handleFieldInput(w http.ResponseWriter, r *http.Request) {
	field := internal.Field(chi.URLParam(r, "field"))
	if !isKnownField(field) {
		http.NotFound(w, r)
		return
	}

	p := newPresenter(internal.FormValues{})
	form := h.newForm(p)
	form.FieldInput(field)

	h.render(w, r, http.StatusOK, FieldError(field, ""))
}

func (h *Handler) handleSuccessDismiss(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, SuccessMessage("", 0, false))
}

// render writes a component response. HTMX response headers must be applied
// before the status line; out-of-band components only go to htmx requests.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, component templ.Component, opts ...htmx.RenderOption) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var cfg *htmx.Config
	if len(opts) > 0 {
		cfg = htmx.NewConfig(opts...)
	}

	if cfg != nil && htmx.IsHTMX(r) {
		cfg.ApplyHeaders(w)
	}

	w.WriteHeader(code)

	if err := component.Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "render failed", slog.Any("error", err))
		return
	}

	if cfg != nil && htmx.IsHTMX(r) {
		if err := cfg.RenderOOB(r.Context(), w); err != nil {
			h.logger.ErrorContext(r.Context(), "oob render failed", slog.Any("error", err))
		}
	}
}

func isKnownField(f internal.Field) bool {
	switch f {
	case internal.FieldName, internal.FieldEmail, internal.FieldSubject, internal.FieldMessage:
		return true
	}
	return false
}
