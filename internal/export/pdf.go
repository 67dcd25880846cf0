// Package export converts rendered resumes into print formats using a headless browser.
package export

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single PDF export, browser startup included
const DefaultTimeout = 30 * time.Second

// Options configures PDF export
type Options struct {
	// Timeout bounds the whole export; zero means DefaultTimeout
	Timeout time.Duration
	// ExecPath overrides the Chrome/Chromium binary; empty uses chromedp's lookup
	ExecPath string
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// PrintPDF loads html into a blank headless Chrome tab and prints it to PDF with
// backgrounds. Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html string, opts Options) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	if strings.TrimSpace(html) == "" {
		return nil, &ExportError{Message: "no HTML to export"}
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.timeout())
	defer cancel()

	logger.Debug().Dur("timeout", opts.timeout()).Msg("starting headless browser for PDF export")

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "browser printing failed", Cause: err}
	}

	logger.Debug().Int("bytes", len(pdf)).Msg("PDF exported")
	return pdf, nil
}
