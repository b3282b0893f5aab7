package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/momiji-web/momiji/browser"
	"github.com/momiji-web/momiji/dom"
)

// runFiles executes each script file against its own page. A broken file
// never stops the others; failures are reported together at the end.
func runFiles(ctx context.Context, paths []string) error {
	logger := newLogger()
	b := browser.New(browser.WithBrowserLogger(logger))

	var errs *multierror.Error
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		page := b.LoadPage(dom.NewDocument())
		if err := page.RunScript(ctx, string(source)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return errs.ErrorOrNil()
}
