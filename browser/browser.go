package browser

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/momiji-web/momiji/dom"
)

// Option is a configuration function for a Browser.
type Option func(*Browser)

// WithBrowserLogger sets the logger shared by the browser and its pages.
func WithBrowserLogger(logger zerolog.Logger) Option {
	return func(b *Browser) {
		b.logger = logger
	}
}

// Browser owns a set of pages. Script failures are isolated per page: one
// page's broken script never stops the others from running.
type Browser struct {
	pages  []*Page
	logger zerolog.Logger
}

// New returns an empty browser.
func New(opts ...Option) *Browser {
	b := &Browser{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadPage creates a page over the document and adds it to the browser.
func (b *Browser) LoadPage(doc *dom.Document, opts ...PageOption) *Page {
	opts = append([]PageOption{WithLogger(b.logger)}, opts...)
	page := NewPage(doc, opts...)
	b.pages = append(b.pages, page)
	return page
}

// Pages returns the loaded pages in load order.
func (b *Browser) Pages() []*Page { return b.pages }

// ExecuteScripts runs the scripts of every loaded page. All pages run even
// when some fail; the failures come back aggregated.
func (b *Browser) ExecuteScripts(ctx context.Context) error {
	var errs *multierror.Error
	for _, page := range b.pages {
		if err := page.ExecuteScripts(ctx); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
