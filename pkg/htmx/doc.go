// Package htmx provides helpers for detecting HTMX requests and shaping
// HTMX responses.
//
// The web layer of the contact form uses it for two things: deciding between
// a partial and a full-page render (IsHTMX), and pushing state changes the
// request did not target via out-of-band swaps and response headers.
//
//	if htmx.IsHTMX(r) {
//		cfg := htmx.NewConfig(
//			htmx.WithReswap(htmx.SwapOuterHTML.Show("top")),
//			htmx.WithOOB(button, summary),
//		)
//		cfg.ApplyHeaders(w)
//		// render main component, then cfg.RenderOOB(...)
//	}
package htmx
