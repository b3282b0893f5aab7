// Package browser glues documents to the scripting core. A Page owns one
// document and one interpreter with the document injected as the "document"
// global; a Browser runs the scripts of many pages, keeping failures isolated
// per page.
package browser

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/momiji-web/momiji/dom"
	"github.com/momiji-web/momiji/interp"
	"github.com/momiji-web/momiji/object"
	"github.com/momiji-web/momiji/parser"
)

// PageOption is a configuration function for a Page.
type PageOption func(*Page)

// WithLogger sets the logger used for the page's script lifecycle events.
// The default is a no-op logger.
func WithLogger(logger zerolog.Logger) PageOption {
	return func(p *Page) {
		p.logger = logger
	}
}

// WithGlobals injects additional host bindings beside "document". May be
// supplied multiple times.
func WithGlobals(globals map[string]object.Object) PageOption {
	return func(p *Page) {
		for name, value := range globals {
			p.globals[name] = value
		}
	}
}

// Page pairs a document with a persistent script environment. Scripts run
// synchronously and sequentially; a Page is not safe for concurrent use.
type Page struct {
	id      uuid.UUID
	doc     *dom.Document
	globals map[string]object.Object
	interp  *interp.Interpreter
	logger  zerolog.Logger
}

// NewPage returns a page over the given document. The document is exposed to
// scripts as the "document" global.
func NewPage(doc *dom.Document, opts ...PageOption) *Page {
	p := &Page{
		id:      uuid.Must(uuid.NewV4()),
		doc:     doc,
		globals: map[string]object.Object{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.globals["document"] = dom.NewDocumentObject(doc)
	p.interp = interp.New(interp.WithGlobals(p.globals))
	p.logger = p.logger.With().Str("page_id", p.id.String()).Logger()
	return p
}

// ID returns the page's unique identity, used for log correlation.
func (p *Page) ID() uuid.UUID { return p.id }

// Document returns the page's document.
func (p *Page) Document() *dom.Document { return p.doc }

// RunScript parses and executes one script source against the page's
// environment. Bindings persist across calls. A lexing, parsing, or runtime
// failure is returned to the caller; effects applied before a runtime
// failure stay applied to the document.
func (p *Page) RunScript(ctx context.Context, source string) error {
	program, err := parser.Parse(ctx, source)
	if err != nil {
		p.logger.Error().Err(err).Msg("script failed to parse")
		return err
	}
	if err := p.interp.Execute(ctx, program); err != nil {
		p.logger.Error().Err(err).Msg("script failed at runtime")
		return err
	}
	p.logger.Debug().Int("statements", len(program.Body)).Msg("script executed")
	return nil
}

// Eval parses and evaluates one script source, returning the value of its
// last top-level node. Used by the REPL.
func (p *Page) Eval(ctx context.Context, source string) (object.Object, error) {
	program, err := parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	value := object.Object(object.UndefinedValue)
	for _, node := range program.Body {
		value, err = p.interp.Eval(ctx, node)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Global resolves a name in the page's global environment.
func (p *Page) Global(name string) (object.Object, bool) {
	return p.interp.Global(name)
}

// ExecuteScripts gathers the text of the document's script elements and runs
// it once. A failure means no further script effects for this document; it
// is reported to the caller but the page and its document stay usable.
func (p *Page) ExecuteScripts(ctx context.Context) error {
	source := p.doc.ScriptContent()
	if source == "" {
		return nil
	}
	return p.RunScript(ctx, source)
}
