package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is the interface for out-of-band components.
// Compatible with templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds HTMX render configuration: response headers plus out-of-band
// components appended after the main response body.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	Triggers      []string
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets the HTMX response headers. Must run before the status
// line is written.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()

	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if len(c.Triggers) > 0 {
		h.Set(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	}
}

// RenderOOB renders all out-of-band components after the main body.
// Each component must carry its own id and hx-swap-oob attributes.
func (c *Config) RenderOOB(ctx context.Context, w io.Writer) error {
	if c == nil {
		return nil
	}
	for _, oob := range c.OOBComponents {
		if err := oob.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// WithOOB appends out-of-band components to render after the main component.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets the HX-Retarget header to change the target element.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets the HX-Reswap header to change the swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithTrigger sets the HX-Trigger header to fire client-side events.
// Multiple events are comma-joined.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}
