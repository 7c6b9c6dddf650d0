package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/launchpadhq/contactform/pkg/sanitizer"
)

// Renderer converts markdown templates with YAML frontmatter into HTML
// wrapped in a layout. Parsed templates and layouts are cached; rendering
// with fresh data stays cheap.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templateDir string
	layoutDir   string
	policy      *bluemonday.Policy

	mu            sync.RWMutex
	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
}

// cachedTemplate holds parsed template data for reuse.
type cachedTemplate struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// RendererConfig configures template and layout locations within the FS.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"

	// Policy overrides the sanitizer policy applied to the converted
	// markdown body. Nil uses sanitizer.SanitizeHTML.
	Policy *bluemonday.Policy
}

// NewRenderer creates a renderer reading templates from the given filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directory layout.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:            filesystem,
		md:            goldmark.New(),
		templateDir:   cfg.TemplateDir,
		layoutDir:     cfg.LayoutDir,
		policy:        cfg.Policy,
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
	}
}

// RenderResult contains the rendered HTML, the plain-text alternative, and
// the template's frontmatter metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render executes the named markdown template with data, converts it to
// HTML, sanitizes the body, and wraps it in the named layout. Template data
// is user-supplied, so markup that survives the markdown conversion (embedded
// images, unexpected attributes) is stripped before it reaches the email. The
// plain-text alternative is the processed markdown before HTML conversion.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var processed bytes.Buffer
	if err := cached.tmpl.Execute(&processed, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}

	var htmlContent bytes.Buffer
	if err := r.md.Convert(processed.Bytes(), &htmlContent); err != nil {
		return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}

	var body string
	if r.policy != nil {
		body = sanitizer.SanitizeHTMLCustom(htmlContent.String(), r.policy)
	} else {
		body = sanitizer.SanitizeHTML(htmlContent.String())
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var finalHTML bytes.Buffer
	err = layoutTmpl.Execute(&finalHTML, map[string]any{
		"Content":  template.HTML(body),
		"Metadata": cached.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	return &RenderResult{
		Metadata: cached.metadata,
		HTML:     finalHTML.String(),
		Text:     processed.String(),
	}, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templateCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template body: %v", ErrRenderFailed, err)
	}

	cached = &cachedTemplate{metadata: parsed.Metadata, tmpl: tmpl}
	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layoutCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layoutTmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}

	r.layoutCache[name] = layoutTmpl
	return layoutTmpl, nil
}
